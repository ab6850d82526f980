package service

import (
	"context"

	"github.com/freightpay/investigator/models"
)

// SearchService resolves a user-supplied term to a deduplicated set of
// shipments by fanning out the two saved queries bound to the search kind.
type SearchService interface {
	Search(ctx context.Context, term string, kind models.SearchKind) (models.SearchResponse, error)
}

// ShipmentService looks up a single shipment by XID with the detail field
// projection.
type ShipmentService interface {
	Get(ctx context.Context, xid string) (models.Shipment, error)
}

// HealthService probes the upstream OTM API.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}
