package http

import "net/http"

type versionResponse struct {
	Version string `json:"version"`
}

// version handles GET /api/version.
func (h *Handler) version(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, versionResponse{Version: h.app.Version})
}
