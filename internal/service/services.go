package service

import (
	"github.com/freightpay/investigator/internal/config"
	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/internal/otm"
)

type Services struct {
	SearchService   SearchService
	ShipmentService ShipmentService
	HealthService   HealthService
}

func NewServices(otmClient otm.Client, cfg config.OTM, logger *logger.Logger) *Services {
	return &Services{
		SearchService:   NewSearchService(otmClient, cfg.Subdomain, logger),
		ShipmentService: NewShipmentService(otmClient),
		HealthService:   NewHealthService(otmClient, logger),
	}
}
