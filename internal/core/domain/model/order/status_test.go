package order_test

import (
	"errors"
	"testing"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalOrderError(t *testing.T) {
	err := &order.TerminalOrderError{OrderID: "42", Status: "closed"}

	assert.Equal(t, "order is already in a terminal status: order 42 is closed", err.Error())
	require.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
	assert.False(t, errors.Is(err, order.ErrOrderNotCancelable))
}

func TestNotCancelableError(t *testing.T) {
	err := &order.NotCancelableError{OrderID: "42", Axis: status.AxisShipment, Code: "delivered"}

	assert.Equal(t, `order cannot be canceled: order 42 has shipment status "delivered"`, err.Error())
	require.ErrorIs(t, err, order.ErrOrderNotCancelable)
}

func TestRegistrySatisfiesStatusPolicy(t *testing.T) {
	var _ order.StatusPolicy = (*status.Registry)(nil)
}
