// Package resources embeds the bundled image assets.
package resources

import _ "embed"

// Icon is the tray icon in PNG form.
//
//go:embed icon.png
var Icon []byte
