// Package static exposes embedded assets for HTTP serving.
package static

import "embed"

// FS holds the stylesheet and any future static assets.
//
//go:embed *.css
var FS embed.FS
