// Package web holds the conversion page template and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates contains the HTML templates under templates/.
var Templates, _ = fs.Sub(files, "templates")

// Static contains the page assets served under /static/.
var Static, _ = fs.Sub(files, "static")
