// Package static embeds the web service's stylesheet and page script.
package static

import "embed"

//go:embed *.css *.js
var Files embed.FS
