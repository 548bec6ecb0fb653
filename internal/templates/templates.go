// Package templates embeds the HTML pages so the binary does not
// depend on its working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
