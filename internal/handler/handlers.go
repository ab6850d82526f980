package handler

import (
	"github.com/freightpay/investigator/internal/config"
	"github.com/freightpay/investigator/internal/handler/http"
	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, app config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, app, logger),
	}, nil
}
