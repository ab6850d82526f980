package otm

import (
	"strings"

	"github.com/freightpay/investigator/models"
)

// fpStatusTypes are the only status types the investigator cares about;
// every other inline status is dropped during parsing.
var fpStatusTypes = map[string]struct{}{
	"BTF_SHIP_IND":      {},
	"BTF_RATE_IND":      {},
	"SEND_SHIPMENT_USB": {},
	"SENT_TO_USB":       {},
}

// Raw wire shapes of the OTM REST representation. Linked entities come as
// HATEOAS link lists, measures as unit/value objects, dates as {value}
// objects, and statuses as a nested items envelope.

type rawEnvelope struct {
	Items   []rawShipment `json:"items"`
	Count   int           `json:"count"`
	HasMore bool          `json:"hasMore"`
}

type rawLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type rawLinked struct {
	Links []rawLink `json:"links"`
}

type rawDate struct {
	Value string `json:"value"`
}

type rawMeasure struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type rawCost struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type rawStatusItem struct {
	StatusTypeGid  string   `json:"statusTypeGid"`
	StatusValueGid string   `json:"statusValueGid"`
	UpdateDate     *rawDate `json:"updateDate"`
	InsertDate     *rawDate `json:"insertDate"`
}

type rawStatuses struct {
	Items []rawStatusItem `json:"items"`
}

type rawShipment struct {
	ShipmentXid      string      `json:"shipmentXid"`
	ShipmentName     string      `json:"shipmentName"`
	TransportModeGid string      `json:"transportModeGid"`
	Servprov         rawLinked   `json:"servprov"`
	SourceLocation   rawLinked   `json:"sourceLocation"`
	DestLocation     rawLinked   `json:"destLocation"`
	StartTime        rawDate     `json:"startTime"`
	EndTime          rawDate     `json:"endTime"`
	InsertDate       rawDate     `json:"insertDate"`
	UpdateDate       rawDate     `json:"updateDate"`
	TotalWeight      rawMeasure  `json:"totalWeight"`
	TotalVolume      rawMeasure  `json:"totalVolume"`
	TotalActualCost  rawCost     `json:"totalActualCost"`
	ShipmentAsWork   bool        `json:"shipmentAsWork"`
	Perspective      string      `json:"perspective"`
	Attribute10      string      `json:"attribute10"`
	Statuses         rawStatuses `json:"statuses"`
}

// xidFromLinks resolves a linked entity to its XID: the last path segment of
// the canonical link, with a leading "DOMAIN." GID prefix stripped. Returns
// the empty string when no canonical link is present.
func xidFromLinks(links []rawLink) string {
	for _, link := range links {
		if link.Rel != "canonical" {
			continue
		}
		href := link.Href
		if idx := strings.LastIndex(href, "/"); idx >= 0 {
			last := href[idx+1:]
			if dot := strings.Index(last, "."); dot >= 0 {
				return last[dot+1:]
			}
			return last
		}
	}
	return ""
}

// statusValue reduces a status value GID to its human-readable part. OTM
// value GIDs come in several shapes:
//
//	"KFNA.SENT TO USB - YES"       → "YES"
//	"KFNA.BTF_SHIP_IND_COMPLETE"   → "COMPLETE" (type-name prefix)
//	"KFNA.SOMETHING_ELSE"          → "ELSE"     (last underscore segment)
func statusValue(statusTypeGid, statusValueGid string) string {
	val := statusValueGid
	if dot := strings.Index(val, "."); dot >= 0 {
		val = val[dot+1:]
	}
	if idx := strings.Index(val, " - "); idx >= 0 {
		return strings.TrimSpace(val[idx+3:])
	}

	typeName := statusTypeGid
	if dot := strings.Index(typeName, "."); dot >= 0 {
		typeName = typeName[dot+1:]
	}
	if strings.HasPrefix(strings.ToUpper(val), strings.ToUpper(typeName)+"_") {
		return strings.TrimSpace(val[len(typeName)+1:])
	}
	if idx := strings.LastIndex(val, "_"); idx >= 0 {
		return strings.TrimSpace(val[idx+1:])
	}
	return strings.TrimSpace(val)
}

// parseInlineStatuses filters the expanded status list down to the
// FreightPay status types, keyed by type name. The update date falls back to
// the insert date when OTM has never updated the status.
func parseInlineStatuses(raw rawStatuses) map[string]models.ShipmentStatus {
	result := make(map[string]models.ShipmentStatus)
	for _, item := range raw.Items {
		typeKey := item.StatusTypeGid
		if dot := strings.Index(typeKey, "."); dot >= 0 {
			typeKey = typeKey[dot+1:]
		}
		if _, ok := fpStatusTypes[typeKey]; !ok {
			continue
		}

		var updateDate string
		switch {
		case item.UpdateDate != nil && item.UpdateDate.Value != "":
			updateDate = item.UpdateDate.Value
		case item.InsertDate != nil:
			updateDate = item.InsertDate.Value
		}

		result[typeKey] = models.ShipmentStatus{
			Value:      statusValue(item.StatusTypeGid, item.StatusValueGid),
			UpdateDate: updateDate,
		}
	}
	return result
}

// parseShipment flattens one raw OTM shipment into the models type.
func parseShipment(raw rawShipment) models.Shipment {
	statuses := parseInlineStatuses(raw.Statuses)

	// FreightPay participation: shipment-as-work flag or an outbound USB
	// status present.
	_, sentToUSB := statuses["SEND_SHIPMENT_USB"]
	isFP := raw.ShipmentAsWork || sentToUSB

	return models.Shipment{
		ShipmentXid:    raw.ShipmentXid,
		ShipmentName:   raw.ShipmentName,
		TransportMode:  raw.TransportModeGid,
		Carrier:        xidFromLinks(raw.Servprov.Links),
		SourceLocation: xidFromLinks(raw.SourceLocation.Links),
		DestLocation:   xidFromLinks(raw.DestLocation.Links),

		StartTime:  raw.StartTime.Value,
		EndTime:    raw.EndTime.Value,
		InsertDate: raw.InsertDate.Value,
		UpdateDate: raw.UpdateDate.Value,

		TotalWeight:     raw.TotalWeight.Value,
		WeightUnit:      raw.TotalWeight.Unit,
		TotalVolume:     raw.TotalVolume.Value,
		VolumeUnit:      raw.TotalVolume.Unit,
		TotalActualCost: raw.TotalActualCost.Value,
		Currency:        raw.TotalActualCost.Currency,

		IsFreightPay: isFP,
		Perspective:  raw.Perspective,
		Attribute10:  raw.Attribute10,
		Statuses:     statuses,
	}
}
