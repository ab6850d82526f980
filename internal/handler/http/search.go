package http

import (
	"net/http"

	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/models"
)

// search handles GET /api/search?q=<term>&type=<shipment|order>. The type
// parameter defaults to "shipment" when absent.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	term := r.URL.Query().Get("q")
	kindParam := r.URL.Query().Get("type")
	if kindParam == "" {
		kindParam = string(models.KindShipment)
	}

	kind, ok := models.ParseSearchKind(kindParam)
	if !ok {
		log.Warn().Str("type", kindParam).Msg("unknown search type requested")
		http.Error(w, "type must be 'order' or 'shipment'", http.StatusBadRequest)
		return
	}

	resp, err := h.services.SearchService.Search(ctx, term, kind)
	if err != nil {
		log.Err(err).Str("term", term).Str("type", kindParam).Msg("search failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
