// Package otm is the outbound adapter for the Oracle Transportation
// Management REST API.
//
// It executes shipment saved queries, fetches single shipments, and probes
// API reachability over authenticated HTTP, and flattens OTM's nested
// resource representation (unit/value objects, linked entities, inline
// statuses) into the models types the rest of the service works with.
//
// The adapter owns connectivity concerns only: base URL, basic-auth
// credentials, timeouts, TLS settings, and HTTP error mapping. It performs
// no retries and keeps no state between calls.
package otm
