// Package tray serves the system tray menu.
package tray

import (
	"fyne.io/systray"

	"github.com/osvajac0/akemito/resources"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	// OnRestore warps the cursor to the last saved position.
	OnRestore func()
	// OnTogglePause flips tracking on or off and reports the new paused state.
	OnTogglePause func() bool
	// OnQuit shuts the application down.
	OnQuit func()
}

// Run serves the tray menu and blocks until Quit is chosen or the tray loop
// is stopped. It must be called from the main goroutine on most platforms.
func Run(callbacks Callbacks) {
	systray.Run(func() { onReady(callbacks) }, nil)
}

// Quit stops the tray loop from outside, for signal-driven shutdown.
func Quit() {
	systray.Quit()
}

func onReady(callbacks Callbacks) {
	systray.SetIcon(resources.Icon)
	systray.SetTitle("Akemito")
	systray.SetTooltip("Akemito cursor saver (alt+z restores the cursor)")

	restore := systray.AddMenuItem("Restore position", "Warp the cursor to the last saved position")
	pause := systray.AddMenuItem("Pause tracking", "Stop watching the cursor")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Exit Akemito")

	go func() {
		for {
			select {
			case <-restore.ClickedCh:
				if callbacks.OnRestore != nil {
					callbacks.OnRestore()
				}
			case <-pause.ClickedCh:
				if callbacks.OnTogglePause == nil {
					continue
				}
				if callbacks.OnTogglePause() {
					pause.SetTitle("Resume tracking")
				} else {
					pause.SetTitle("Pause tracking")
				}
			case <-quit.ClickedCh:
				if callbacks.OnQuit != nil {
					callbacks.OnQuit()
				}
				systray.Quit()
				return
			}
		}
	}()
}
