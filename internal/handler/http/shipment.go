package http

import (
	"net/http"

	"github.com/freightpay/investigator/internal/logger"
	"github.com/go-chi/chi/v5"
)

// shipmentDetail handles GET /api/shipment/{xid} with the detail field
// projection.
func (h *Handler) shipmentDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	xid := chi.URLParam(r, "xid")

	shipment, err := h.services.ShipmentService.Get(ctx, xid)
	if err != nil {
		log.Err(err).Str("xid", xid).Msg("shipment detail lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusOK, shipment)
}
