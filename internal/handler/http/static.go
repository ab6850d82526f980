package http

import (
	"net/http"
	"os"
	"path/filepath"
)

// root serves the frontend entry point when the static directory holds one,
// otherwise a JSON banner so a bare deployment still answers something
// useful.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.app.StaticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		http.ServeFile(w, r, index)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "FreightPay Investigator API is running",
	})
}
