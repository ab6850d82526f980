package service

import "github.com/freightpay/investigator/models"

// Saved-query codes defined in the OTM installation. Each search kind maps
// to exactly two: a direct match and a match through linked entities.
const (
	queryOrderDirect      = "FP_ORD_DIRECT"
	queryOrderIndirect    = "FP_ORD_INDIRECT"
	queryShipmentDirect   = "FP_SHP_NAME_DIRECT"
	queryShipmentIndirect = "FP_SHP_NAME_INDIRECT"
)

// queryCatalog binds each search kind to its two saved-query templates,
// qualified with the OTM subdomain. Built once at startup and read-only
// afterwards; template order is the merge order.
type queryCatalog map[models.SearchKind][]models.QueryTemplate

func newQueryCatalog(subdomain string) queryCatalog {
	qualify := func(code string) models.QueryTemplate {
		return models.QueryTemplate{Name: subdomain + "." + code}
	}

	return queryCatalog{
		models.KindOrder: {
			qualify(queryOrderDirect),
			qualify(queryOrderIndirect),
		},
		models.KindShipment: {
			qualify(queryShipmentDirect),
			qualify(queryShipmentIndirect),
		},
	}
}
