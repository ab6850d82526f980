package otm

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/freightpay/investigator/internal/config"
	"github.com/freightpay/investigator/internal/logger"
	"github.com/freightpay/investigator/models"
	"github.com/go-resty/resty/v2"
)

// restAPIPath is the versioned root of the OTM logistics REST API, relative
// to the configured base URL.
const restAPIPath = "/logisticsRestApi/resources-int/v2"

// Field projections requested from OTM. The search projection keeps saved
// query responses small; the detail projection adds audit dates and the
// shipment-as-work flag.
const (
	searchFields = "shipmentXid,shipmentName,transportModeGid," +
		"servprov.servprovXid," +
		"sourceLocation.locationXid," +
		"destLocation.locationXid," +
		"startTime,endTime," +
		"totalWeight,totalVolume,totalActualCost," +
		"attribute10," +
		"statuses"

	detailFields = "shipmentXid,shipmentName,transportModeGid," +
		"servprov.servprovXid," +
		"sourceLocation.locationXid," +
		"destLocation.locationXid," +
		"startTime,endTime," +
		"totalWeight,totalVolume,totalActualCost," +
		"shipmentAsWork," +
		"attribute1,attribute2,attribute5,attribute10," +
		"insertDate,updateDate," +
		"statuses"
)

type httpClient struct {
	client    *resty.Client
	domain    string
	subdomain string

	logger *logger.Logger
}

// NewHTTPClient constructs the HTTP/REST implementation of [Client].
// It normalises and validates the base URL from cfg.BaseURL, attaches the
// basic-auth credentials and request timeout, and optionally disables TLS
// verification for installations with self-signed certificates.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPClient(cfg config.OTM, log *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid otm base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL + restAPIPath).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetTimeout(cfg.RequestTimeout)

	if cfg.InsecureSkipVerify {
		cli.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &httpClient{
		client:    cli,
		domain:    cfg.Domain,
		subdomain: cfg.Subdomain,
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ExecuteSavedQuery implements [Client]. It GETs the saved-query custom
// action for queryName with term as the parameter value, using the search
// field projection with statuses expanded inline. The decoded items are
// parsed into [models.Shipment] values; Count falls back to the item count
// when the envelope omits it.
func (h *httpClient) ExecuteSavedQuery(ctx context.Context, queryName, term string) (models.QueryResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"fields":         searchFields,
			"expand":         "statuses",
			"parameterValue": term,
		}).
		Get(fmt.Sprintf("/custom-actions/savedQueries/shipments/%s/%s", h.domain, queryName))
	if err != nil {
		return models.QueryResult{}, fmt.Errorf("saved query %s request: %w", queryName, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QueryResult{}, fmt.Errorf("saved query %s: %w", queryName, err)
	}

	var envelope rawEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.QueryResult{}, fmt.Errorf("decode saved query %s response: %w", queryName, err)
	}

	items := make([]models.Shipment, 0, len(envelope.Items))
	for _, raw := range envelope.Items {
		items = append(items, parseShipment(raw))
	}

	count := envelope.Count
	if count == 0 {
		count = len(items)
	}

	return models.QueryResult{
		Query:   queryName,
		Count:   count,
		HasMore: envelope.HasMore,
		Items:   items,
	}, nil
}

// GetShipment implements [Client]. It GETs a single shipment resource using
// the subdomain-qualified GID and the detail field projection. Returns
// [ErrShipmentNotFound] (wrapped) on HTTP 404.
func (h *httpClient) GetShipment(ctx context.Context, xid string) (models.Shipment, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"fields": detailFields,
			"expand": "statuses",
		}).
		Get(fmt.Sprintf("/shipments/%s/%s.%s", h.domain, h.subdomain, xid))
	if err != nil {
		return models.Shipment{}, fmt.Errorf("shipment %s request: %w", xid, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Shipment{}, fmt.Errorf("shipment %s: %w", xid, err)
	}

	var raw rawShipment
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return models.Shipment{}, fmt.Errorf("decode shipment %s response: %w", xid, err)
	}

	return parseShipment(raw), nil
}

// Ping implements [Client]. It issues the cheapest authenticated request the
// API supports (a single-item shipment listing) and reports the status code.
// Any 2xx-5xx answer means OTM is reachable; only transport-level failures
// return an error.
func (h *httpClient) Ping(ctx context.Context) (int, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		Get("/shipments")
	if err != nil {
		return 0, fmt.Errorf("otm ping request: %w", err)
	}

	return resp.StatusCode(), nil
}
