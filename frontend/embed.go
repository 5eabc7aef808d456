package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

// FS embeds the static assets served under /static
//
//go:embed all:dist
var FS embed.FS

//go:embed templates/*.html
var templateFS embed.FS

// GetHTTPFS returns the embedded static filesystem for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "dist")
	if err != nil {
		return nil, err
	}

	if !hasAssets(sub) {
		return nil, &fs.PathError{Op: "stat", Path: "app.js", Err: fs.ErrNotExist}
	}

	return http.FS(sub), nil
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// hasAssets checks for app.js as a marker that assets are present
func hasAssets(fsys fs.FS) bool {
	if _, err := fs.Stat(fsys, "app.js"); err != nil {
		return false
	}
	return true
}
