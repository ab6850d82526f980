package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/freightpay/investigator/internal/otm"
	"github.com/freightpay/investigator/models"
)

type shipmentService struct {
	otm otm.Client
}

func NewShipmentService(otmClient otm.Client) ShipmentService {
	return &shipmentService{otm: otmClient}
}

// Get fetches one shipment by XID. The XID is trimmed before use; an empty
// XID is rejected without an upstream call.
func (s *shipmentService) Get(ctx context.Context, xid string) (models.Shipment, error) {
	xid = strings.TrimSpace(xid)
	if xid == "" {
		return models.Shipment{}, ErrEmptyShipmentXid
	}

	shipment, err := s.otm.GetShipment(ctx, xid)
	if err != nil {
		return models.Shipment{}, fmt.Errorf("get shipment: %w", err)
	}

	return shipment, nil
}
