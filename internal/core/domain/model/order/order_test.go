package order_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, extra ...status.Contribution) *status.Registry {
	t.Helper()
	registry, err := status.LoadRegistry(append([]status.Contribution{status.DefaultContribution()}, extra...))
	require.NoError(t, err)
	return registry
}

func newOrder(t *testing.T, registry *status.Registry) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), false, registry)
	require.NoError(t, err)
	return o
}

func snapshot(o *order.Order) [3]string {
	return [3]string{o.PaymentStatus(), o.ShipmentStatus(), o.Status()}
}

func TestNewOrder(t *testing.T) {
	registry := newRegistry(t)

	t.Run("should start in default statuses", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, true, registry)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "pending", o.PaymentStatus())
		assert.Equal(t, "pending", o.ShipmentStatus())
		assert.Equal(t, "new", o.Status())
		assert.True(t, o.NoShippingRequired())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, false, registry)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail when defaults do not resolve", func(t *testing.T) {
		core := status.DefaultContribution()
		core.Rules = nil
		empty, err := status.LoadRegistry([]status.Contribution{core})
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), false, empty)

		require.ErrorIs(t, err, status.ErrNoMatchingRule)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore stored codes", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(id, "paid", "shipped", "processing", false)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, [3]string{"paid", "shipped", "processing"}, snapshot(o))
	})

	t.Run("should report every missing field", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.UUID{}, "", " ", "", false)

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "payment status")
		assert.Contains(t, err.Error(), "shipment status")
		assert.Contains(t, err.Error(), "order status")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	registry := newRegistry(t)
	id := kernel.NewUUID()

	o1, _ := order.NewOrder(id, false, registry)
	o2, _ := order.RestoreOrder(id, "paid", "shipped", "processing", true)
	o3 := newOrder(t, registry)

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_EndToEndWalkthrough(t *testing.T) {
	registry := newRegistry(t)
	o := newOrder(t, registry)

	require.NoError(t, o.ChangeShipmentStatus("shipped", registry))
	assert.Equal(t, [3]string{"pending", "shipped", "processing"}, snapshot(o))

	require.NoError(t, o.ChangePaymentStatus("paid", registry))
	assert.Equal(t, [3]string{"paid", "shipped", "processing"}, snapshot(o))

	require.NoError(t, o.ChangeShipmentStatus("delivered", registry))
	assert.Equal(t, [3]string{"paid", "delivered", "completed"}, snapshot(o))
}

func TestOrder_ChangeRejectsUnknownCode(t *testing.T) {
	registry := newRegistry(t)
	o := newOrder(t, registry)
	before := snapshot(o)

	err := o.ChangeShipmentStatus("lost", registry)
	require.ErrorIs(t, err, status.ErrUnknownStatusCode)

	err = o.ChangePaymentStatus("shipped_twice", registry)
	require.ErrorIs(t, err, status.ErrUnknownStatusCode)

	assert.Equal(t, before, snapshot(o))
}

func TestOrder_ChangeWithoutMatchingRuleLeavesOrderUntouched(t *testing.T) {
	registry := newRegistry(t, status.Contribution{
		PaymentStatuses: map[string]status.StatusConfig{
			"authorized": {Name: "Authorized", Badge: "attention"},
		},
	})
	o := newOrder(t, registry)
	before := snapshot(o)

	err := o.ChangePaymentStatus("authorized", registry)

	var noRule *status.NoMatchingRuleError
	require.ErrorAs(t, err, &noRule)
	assert.Equal(t, "authorized", noRule.Payment)
	assert.Equal(t, "pending", noRule.Shipment)
	assert.Equal(t, before, snapshot(o))
}

func TestOrder_TerminalIsImmutable(t *testing.T) {
	registry := newRegistry(t)

	testCases := []struct {
		name   string
		mutate func(o *order.Order) error
	}{
		{"shipment change", func(o *order.Order) error { return o.ChangeShipmentStatus("delivered", registry) }},
		{"payment change", func(o *order.Order) error { return o.ChangePaymentStatus("paid", registry) }},
		{"unknown code", func(o *order.Order) error { return o.ChangeShipmentStatus("lost", registry) }},
		{"cancel", func(o *order.Order) error { return o.Cancel(registry) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newOrder(t, registry)
			require.NoError(t, o.Cancel(registry))
			require.True(t, o.IsTerminal(registry))
			before := snapshot(o)

			err := tc.mutate(o)

			require.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
			var terminal *order.TerminalOrderError
			require.ErrorAs(t, err, &terminal)
			assert.Equal(t, "canceled", terminal.Status)
			assert.Equal(t, before, snapshot(o))
		})
	}
}

func TestOrder_ClosedIsImmutable(t *testing.T) {
	registry := newRegistry(t)
	o := newOrder(t, registry)

	require.NoError(t, o.ChangePaymentStatus("refunded", registry))
	require.Equal(t, "closed", o.Status())

	err := o.ChangePaymentStatus("paid", registry)
	require.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
	assert.Equal(t, "refunded", o.PaymentStatus())
}

func TestOrder_Cancel(t *testing.T) {
	registry := newRegistry(t)

	t.Run("should cancel both axes", func(t *testing.T) {
		o := newOrder(t, registry)

		require.NoError(t, o.Cancel(registry))

		assert.Equal(t, [3]string{"canceled", "canceled", "canceled"}, snapshot(o))
	})

	t.Run("should allow paid and processing orders", func(t *testing.T) {
		o := newOrder(t, registry)
		require.NoError(t, o.ChangePaymentStatus("paid", registry))
		require.NoError(t, o.ChangeShipmentStatus("processing", registry))

		require.NoError(t, o.Cancel(registry))
		assert.Equal(t, "canceled", o.Status())
	})

	t.Run("should refuse shipped orders", func(t *testing.T) {
		o := newOrder(t, registry)
		require.NoError(t, o.ChangeShipmentStatus("shipped", registry))
		before := snapshot(o)

		err := o.Cancel(registry)

		require.ErrorIs(t, err, order.ErrOrderNotCancelable)
		var notCancelable *order.NotCancelableError
		require.ErrorAs(t, err, &notCancelable)
		assert.Equal(t, status.AxisShipment, notCancelable.Axis)
		assert.Equal(t, "shipped", notCancelable.Code)
		assert.Equal(t, before, snapshot(o))
	})

	t.Run("should refuse refunded payments before the shipment check", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "refunded", "shipped", "processing", false)
		require.NoError(t, err)

		err = o.Cancel(registry)

		var notCancelable *order.NotCancelableError
		require.ErrorAs(t, err, &notCancelable)
		assert.Equal(t, status.AxisPayment, notCancelable.Axis)
	})
}

func TestOrder_EnsureAwaitingShipment(t *testing.T) {
	registry := newRegistry(t)

	t.Run("should allow pending and processing shipments", func(t *testing.T) {
		o := newOrder(t, registry)
		require.NoError(t, o.EnsureAwaitingShipment(registry))

		require.NoError(t, o.ChangeShipmentStatus(status.ShipmentProcessing, registry))
		require.NoError(t, o.EnsureAwaitingShipment(registry))
	})

	for _, code := range []string{status.ShipmentShipped, status.ShipmentDelivered} {
		t.Run("should refuse "+code+" shipments", func(t *testing.T) {
			o := newOrder(t, registry)
			require.NoError(t, o.ChangePaymentStatus(status.PaymentPaid, registry))
			require.NoError(t, o.ChangeShipmentStatus(code, registry))

			err := o.EnsureAwaitingShipment(registry)

			require.ErrorIs(t, err, order.ErrShipmentAlreadyDispatched)
			var dispatched *order.ShipmentDispatchedError
			require.ErrorAs(t, err, &dispatched)
			assert.Equal(t, code, dispatched.ShipmentStatus)
		})
	}

	t.Run("should refuse terminal orders first", func(t *testing.T) {
		o := newOrder(t, registry)
		require.NoError(t, o.Cancel(registry))

		require.ErrorIs(t, o.EnsureAwaitingShipment(registry), order.ErrOrderAlreadyTerminal)
	})
}
