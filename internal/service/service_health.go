package service

import (
	"context"

	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/internal/otm"
	"github.com/freightpay/investigator/models"
)

type healthService struct {
	otm otm.Client

	logger *logger.Logger
}

func NewHealthService(otmClient otm.Client, logger *logger.Logger) HealthService {
	return &healthService{otm: otmClient, logger: logger}
}

// Check probes OTM reachability. Any HTTP answer counts as "ok" (the probe
// verifies connectivity, not OTM's own health); only a transport-level
// failure degrades the status to "error".
func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	status, err := h.otm.Ping(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("otm health probe failed")
		return models.HealthResponse{Status: "error", Detail: err.Error()}
	}

	return models.HealthResponse{Status: "ok", OTMHTTPStatus: status}
}
