package service

import (
	"context"
	"testing"

	"github.com/freightpay/investigator/internal/mock"
	"github.com/freightpay/investigator/internal/otm"
	"github.com/freightpay/investigator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestShipmentGet_EmptyXid_NoUpstreamCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewShipmentService(mock.NewMockClient(ctrl))

	_, err := svc.Get(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrEmptyShipmentXid)
}

func TestShipmentGet_TrimsXid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTM := mock.NewMockClient(ctrl)
	mockOTM.EXPECT().GetShipment(gomock.Any(), "SHP-001").
		Return(models.Shipment{ShipmentXid: "SHP-001"}, nil)

	svc := NewShipmentService(mockOTM)

	shipment, err := svc.Get(context.Background(), " SHP-001 ")

	require.NoError(t, err)
	assert.Equal(t, "SHP-001", shipment.ShipmentXid)
}

func TestShipmentGet_NotFoundPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTM := mock.NewMockClient(ctrl)
	mockOTM.EXPECT().GetShipment(gomock.Any(), "SHP-404").
		Return(models.Shipment{}, otm.ErrShipmentNotFound)

	svc := NewShipmentService(mockOTM)

	_, err := svc.Get(context.Background(), "SHP-404")

	assert.ErrorIs(t, err, otm.ErrShipmentNotFound)
}
