// Package static embeds the site's stylesheet and images.
package static

import "embed"

//go:embed css images
var Files embed.FS
