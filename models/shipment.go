package models

// ShipmentStatus is one FreightPay-relevant status attached to a shipment,
// reduced to its human-readable value and the date it last changed.
type ShipmentStatus struct {
	Value      string `json:"value"`
	UpdateDate string `json:"updateDate,omitempty"`
}

// Shipment is a single hit from the OTM system with the nested REST
// representation flattened: unit/value pairs are split into separate fields
// and linked entities are reduced to their XIDs.
//
// ShipmentXid is the stable unique identifier used for deduplication;
// a Shipment without it is considered malformed.
type Shipment struct {
	ShipmentXid    string `json:"shipmentXid"`
	ShipmentName   string `json:"shipmentName,omitempty"`
	TransportMode  string `json:"transportMode,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
	SourceLocation string `json:"sourceLocation,omitempty"`
	DestLocation   string `json:"destLocation,omitempty"`

	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	InsertDate string `json:"insertDate,omitempty"`
	UpdateDate string `json:"updateDate,omitempty"`

	TotalWeight     float64 `json:"totalWeight,omitempty"`
	WeightUnit      string  `json:"weightUnit,omitempty"`
	TotalVolume     float64 `json:"totalVolume,omitempty"`
	VolumeUnit      string  `json:"volumeUnit,omitempty"`
	TotalActualCost float64 `json:"totalActualCost,omitempty"`
	Currency        string  `json:"currency,omitempty"`

	// IsFreightPay reports whether the shipment participates in the
	// FreightPay flow: either flagged as shipment-as-work or carrying a
	// SEND_SHIPMENT_USB status.
	IsFreightPay bool   `json:"isFreightPay"`
	Perspective  string `json:"perspective,omitempty"`
	Attribute10  string `json:"attribute10,omitempty"`

	// Statuses is keyed by status type (e.g. "SENT_TO_USB") and contains
	// only the FreightPay status types; everything else is filtered out
	// during parsing.
	Statuses map[string]ShipmentStatus `json:"statuses,omitempty"`
}
