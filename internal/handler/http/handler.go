package http

import (
	"encoding/json"
	"net/http"

	"github.com/freightpay/investigator/internal/config"
	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/internal/service"
)

type Handler struct {
	services *service.Services
	app      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		logger:   logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Err(err).Msg("error encoding json response")
	}
}
