// Package static embeds the activities web UI.
package static

import "embed"

//go:embed *.html *.css *.js
var FS embed.FS
