package otm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnauthorized means OTM rejected the configured credentials.
	ErrUnauthorized = errors.New("otm rejected credentials")
	// ErrShipmentNotFound means no shipment exists for the requested XID.
	ErrShipmentNotFound = errors.New("shipment not found")
)

// maxErrorBodyLen bounds how much of an OTM error body is carried into an
// error message. OTM failure pages can be tens of kilobytes of HTML.
const maxErrorBodyLen = 200

// mapHTTPError converts a non-2xx resty response into an error. 2xx
// responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrShipmentNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
