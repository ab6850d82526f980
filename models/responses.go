package models

// QueryResult is the outcome of executing one saved query. A failed
// execution (network error, non-2xx status, undecodable payload) is still a
// QueryResult: Err carries the failure description and Items is empty, so a
// partial upstream failure never aborts the surrounding search.
type QueryResult struct {
	// Query is the saved-query name this result came from.
	Query string `json:"query"`

	// Count is the hit count reported by OTM, falling back to len(Items)
	// when the envelope omits it.
	Count int `json:"count"`

	// HasMore mirrors the OTM paging flag; the proxy itself does not page.
	HasMore bool `json:"hasMore"`

	Items []Shipment `json:"items"`

	// Err is empty on success.
	Err string `json:"error,omitempty"`
}

// QuerySummary is the per-query metadata echoed back in a SearchResponse so
// the frontend can show which saved query produced what.
type QuerySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// SearchResponse is the merged, deduplicated answer to one search request.
type SearchResponse struct {
	SearchType  SearchKind     `json:"searchType"`
	SearchValue string         `json:"searchValue"`
	TotalCount  int            `json:"totalCount"`
	Queries     []QuerySummary `json:"queries"`
	Errors      []string       `json:"errors"`

	// Items contains at most one shipment per XID; the first occurrence
	// across the two query results (in template order) wins.
	Items []Shipment `json:"items"`
}

// HealthResponse reports the outcome of probing the OTM API.
type HealthResponse struct {
	// Status is "ok" when the probe got any HTTP answer, "error" otherwise.
	Status string `json:"status"`

	// OTMHTTPStatus is the status code the probe received, 0 on transport
	// failure.
	OTMHTTPStatus int `json:"otmHttpStatus,omitempty"`

	Detail string `json:"detail,omitempty"`
}
