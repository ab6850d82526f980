package otm

import (
	"context"

	"github.com/freightpay/investigator/models"
)

// Client is the outbound OTM API surface consumed by the service layer.
// Implementations must be safe for concurrent use: the search service runs
// two ExecuteSavedQuery calls in flight at once.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/mock_otm.go -package=mock
type Client interface {
	// ExecuteSavedQuery runs one shipment saved query with term substituted
	// into its parameter slot and returns the parsed hits. A non-2xx
	// status, transport failure, or undecodable payload is returned as an
	// error; the caller decides how a failed execution degrades.
	ExecuteSavedQuery(ctx context.Context, queryName, term string) (models.QueryResult, error)

	// GetShipment fetches a single shipment by its XID (without the
	// subdomain qualifier) using the wider detail field projection.
	// Returns ErrShipmentNotFound if OTM answers 404.
	GetShipment(ctx context.Context, xid string) (models.Shipment, error)

	// Ping issues a minimal authenticated request against the shipments
	// resource and returns the HTTP status code OTM answered with. An
	// error means OTM was not reachable at the transport level.
	Ping(ctx context.Context) (int, error)
}
