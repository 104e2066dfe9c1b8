package server

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// webShell is the embedded single-page UI: the scheme browser and the chat
// panel, served from the binary so the server has no runtime file deps.
func webShell() (index []byte, assets http.Handler, err error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, nil, err
	}
	index, err = fs.ReadFile(sub, "index.html")
	if err != nil {
		return nil, nil, err
	}
	return index, http.FileServer(http.FS(sub)), nil
}

// serveIndex serves the shell page. The page itself is never cached so a
// redeploy takes effect on reload.
func serveIndex(index []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		_, _ = w.Write(index)
	}
}
