package service

import "errors"

var (
	// ErrEmptySearchTerm rejects a search whose term is empty after
	// trimming. No upstream call is made.
	ErrEmptySearchTerm = errors.New("empty search term")
	// ErrUnknownSearchKind rejects a search type that is neither
	// "shipment" nor "order". No upstream call is made.
	ErrUnknownSearchKind = errors.New("unknown search kind")
	// ErrEmptyShipmentXid rejects a detail lookup without an XID.
	ErrEmptyShipmentXid = errors.New("empty shipment xid")
	// ErrUpstreamUnavailable means both saved-query executions failed, so
	// there is nothing to merge.
	ErrUpstreamUnavailable = errors.New("otm unavailable")
)
