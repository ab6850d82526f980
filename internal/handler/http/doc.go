// Package http contains the inbound HTTP surface of the investigator
// service: the chi route tree, the search/shipment/health endpoints, the
// static frontend, and the request middleware chain (panic recovery, trace
// IDs, CORS, access logging).
package http
