// Akemito tracks the cursor, saves its position after it has been still for a
// second and then moves again, and warps it back on alt+z.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/osvajac0/akemito/internal/config"
	"github.com/osvajac0/akemito/internal/hotkey"
	"github.com/osvajac0/akemito/internal/listen"
	"github.com/osvajac0/akemito/internal/logging"
	"github.com/osvajac0/akemito/internal/platform"
	"github.com/osvajac0/akemito/internal/pointer"
	"github.com/osvajac0/akemito/internal/saver"
	"github.com/osvajac0/akemito/internal/tracking"
	"github.com/osvajac0/akemito/internal/tray"
)

const appName = "akemito"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(appName)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.SingleInstance {
		lock, err := platform.AcquireLock(appName)
		if err != nil {
			return err
		}
		defer lock.Release()
	}

	if pointer.DisplayCount() == 0 {
		return errors.New("no display found, a graphical session is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := tracking.New(logger)
	chord := hotkey.New(hotkey.RestoreKeys...)
	mover := pointer.NewMover(logger)
	restorer := saver.New(tracker, mover, logger)

	logger.Info("starting akemito cursor saver",
		zap.String("chord", strings.Join(hotkey.RestoreKeys, "+")),
		zap.Duration("still_threshold", tracking.StillThreshold))
	logger.Info("press alt+z to restore the cursor position, ctrl+c to exit")

	listenDone := make(chan struct{})
	go func() {
		defer close(listenDone)
		listen.Run(ctx, tracker, chord, restorer, logger)
	}()
	// Without hooks there is nothing left to do, so the hook loop ending on
	// its own shuts the whole process down.
	shutdownOnListenerExit(listenDone, stop)

	if cfg.Tray.Enabled {
		go func() {
			<-ctx.Done()
			tray.Quit()
		}()
		// Blocks until Quit is chosen from the menu or the context above
		// fires; must own the main goroutine on most platforms.
		tray.Run(tray.Callbacks{
			OnRestore: restorer.Restore,
			OnTogglePause: func() bool {
				if tracker.Paused() {
					tracker.Resume()
				} else {
					tracker.Pause()
				}
				return tracker.Paused()
			},
			OnQuit: stop,
		})
		stop()
	} else {
		<-ctx.Done()
	}

	<-listenDone
	logger.Info("exiting akemito cursor saver")
	return nil
}

func shutdownOnListenerExit(listenDone <-chan struct{}, stop context.CancelFunc) {
	go func() {
		<-listenDone
		stop()
	}()
}
