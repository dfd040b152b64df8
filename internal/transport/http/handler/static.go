package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPAHandler serves the single-page app: real files from the asset directory
// are served directly, any other GET falls back to index.html so client-side
// routing keeps working after a hard refresh.
type SPAHandler struct {
	staticDir string
	indexFile string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{staticDir: staticDir, indexFile: "index.html"}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	// Clean with a leading slash so ".." cannot escape the asset directory.
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.staticDir, h.indexFile))
}
