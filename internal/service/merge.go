package service

import "github.com/freightpay/investigator/models"

// mergeResults flattens the query results into a single shipment list,
// deduplicated by shipment XID. Results are scanned in slice order and each
// result's items in their upstream order, so the first occurrence of an XID
// wins regardless of which network call finished first.
//
// Shipments without an XID are malformed and dropped; they do not enter the
// seen set. Failed results carry no items and contribute nothing. The
// inputs are not mutated and the returned slice is freshly allocated.
func mergeResults(results []models.QueryResult) []models.Shipment {
	seen := make(map[string]struct{})
	merged := make([]models.Shipment, 0)

	for _, result := range results {
		for _, item := range result.Items {
			if item.ShipmentXid == "" {
				continue
			}
			if _, ok := seen[item.ShipmentXid]; ok {
				continue
			}
			seen[item.ShipmentXid] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}
