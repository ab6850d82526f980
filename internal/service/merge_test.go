package service

import (
	"testing"

	"github.com/freightpay/investigator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shipment(xid string) models.Shipment {
	return models.Shipment{ShipmentXid: xid, ShipmentName: "NAME-" + xid}
}

func result(name string, items ...models.Shipment) models.QueryResult {
	return models.QueryResult{Query: name, Count: len(items), Items: items}
}

func failedResult(name, errMsg string) models.QueryResult {
	return models.QueryResult{Query: name, Items: []models.Shipment{}, Err: errMsg}
}

func xids(items []models.Shipment) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ShipmentXid)
	}
	return out
}

func TestMergeResults_NoDuplicateXids(t *testing.T) {
	r1 := result("direct", shipment("1"), shipment("2"), shipment("3"))
	r2 := result("indirect", shipment("2"), shipment("3"), shipment("4"))

	merged := mergeResults([]models.QueryResult{r1, r2})

	seen := make(map[string]int)
	for _, item := range merged {
		seen[item.ShipmentXid]++
	}
	for xid, n := range seen {
		assert.Equal(t, 1, n, "xid %s appears %d times", xid, n)
	}
	assert.Len(t, merged, 4)
}

func TestMergeResults_FirstSeenWins(t *testing.T) {
	a := models.Shipment{ShipmentXid: "1", ShipmentName: "A"}
	b := models.Shipment{ShipmentXid: "2", ShipmentName: "B"}
	c := models.Shipment{ShipmentXid: "2", ShipmentName: "C"}
	d := models.Shipment{ShipmentXid: "3", ShipmentName: "D"}

	merged := mergeResults([]models.QueryResult{
		result("direct", a, b),
		result("indirect", c, d),
	})

	require.Equal(t, []string{"1", "2", "3"}, xids(merged))
	// B (first seen for xid 2) wins over C.
	assert.Equal(t, "B", merged[1].ShipmentName)
}

func TestMergeResults_EmptyInputs(t *testing.T) {
	merged := mergeResults([]models.QueryResult{result("direct"), result("indirect")})

	assert.Empty(t, merged)
	assert.NotNil(t, merged)
}

func TestMergeResults_MalformedRecordDropped(t *testing.T) {
	noXid := models.Shipment{ShipmentName: "NO-XID"}

	merged := mergeResults([]models.QueryResult{
		result("direct", shipment("1"), noXid, shipment("2")),
	})

	assert.Equal(t, []string{"1", "2"}, xids(merged))
}

func TestMergeResults_FailedResultContributesNothing(t *testing.T) {
	x := shipment("5")

	merged := mergeResults([]models.QueryResult{
		failedResult("direct", "http 500"),
		result("indirect", x),
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "5", merged[0].ShipmentXid)
}

func TestMergeResults_DoesNotMutateInputs(t *testing.T) {
	r1 := result("direct", shipment("1"), shipment("2"))
	r2 := result("indirect", shipment("2"))
	before := append([]models.Shipment(nil), r1.Items...)

	_ = mergeResults([]models.QueryResult{r1, r2})

	assert.Equal(t, before, r1.Items)
	assert.Len(t, r2.Items, 1)
}

func TestMergeResults_DuplicateWithinSingleResult(t *testing.T) {
	first := models.Shipment{ShipmentXid: "1", ShipmentName: "FIRST"}
	second := models.Shipment{ShipmentXid: "1", ShipmentName: "SECOND"}

	merged := mergeResults([]models.QueryResult{result("direct", first, second)})

	require.Len(t, merged, 1)
	assert.Equal(t, "FIRST", merged[0].ShipmentName)
}
