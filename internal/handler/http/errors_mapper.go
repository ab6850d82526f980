package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/freightpay/investigator/internal/otm"
	"github.com/freightpay/investigator/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrEmptySearchTerm:   http.StatusBadRequest,
	service.ErrUnknownSearchKind: http.StatusBadRequest,
	service.ErrEmptyShipmentXid:  http.StatusBadRequest,

	service.ErrUpstreamUnavailable: http.StatusBadGateway,
	otm.ErrUnauthorized:            http.StatusBadGateway,
	otm.ErrShipmentNotFound:        http.StatusNotFound,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
