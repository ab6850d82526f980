package http

import "net/http"

// health handles GET /api/health. It always answers 200; the body reports
// whether the OTM probe got through and with which status code.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := h.services.HealthService.Check(r.Context())

	h.writeJSON(w, http.StatusOK, resp)
}
