package models

// SearchKind selects which pair of OTM saved queries a search runs against.
// The zero value is not a valid kind.
type SearchKind string

const (
	// KindShipment searches by shipment name or XID.
	KindShipment SearchKind = "shipment"

	// KindOrder searches by order / reference number, matched either
	// directly on the shipment or through linked order releases.
	KindOrder SearchKind = "order"
)

// ParseSearchKind maps the inbound `type` query parameter to a SearchKind.
// The second return value reports whether the input is a recognized kind.
func ParseSearchKind(s string) (SearchKind, bool) {
	switch SearchKind(s) {
	case KindShipment:
		return KindShipment, true
	case KindOrder:
		return KindOrder, true
	default:
		return "", false
	}
}

// QueryTemplate identifies one OTM saved query. Templates are built once at
// startup from the configured subdomain and never change afterwards.
type QueryTemplate struct {
	// Name is the fully qualified saved-query name, e.g. "KFNA.FP_ORD_DIRECT".
	Name string
}
