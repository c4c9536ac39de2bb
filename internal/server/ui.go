package server

import (
	"io/fs"
	"net/http"
	"strings"
)

// uiFS holds the embedded status page. Set via SetUI before creating the
// server.
var uiFS fs.FS

// SetUI sets the embedded filesystem for serving the status page.
func SetUI(fsys fs.FS) {
	uiFS = fsys
}

// staticHandler serves the embedded status page, falling back to index.html
// for unknown paths.
func staticHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if uiFS == nil {
			http.NotFound(w, r)
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}

		f, err := uiFS.Open(path)
		if err != nil {
			path = "index.html"
		} else {
			f.Close()
		}

		http.ServeFileFS(w, r, uiFS, path)
	}
}
