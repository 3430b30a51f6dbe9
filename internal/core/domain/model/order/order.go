package order

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root carrying the payment, shipment and composite status of
// one customer order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - status is the resolver output for (paymentStatus, shipmentStatus)
//   - A terminal status is never left
//   - Can only be created through NewOrder or RestoreOrder
//
// Status fields are private and only change through ChangePaymentStatus,
// ChangeShipmentStatus and Cancel.
type Order struct {
	// id is the unique identifier, also exposed publicly as the order uuid
	id kernel.UUID

	paymentStatus  string
	shipmentStatus string

	// status is the composite order status
	status string

	// noShippingRequired marks orders fulfilled without a physical shipment
	noShippingRequired bool

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the default payment and shipment statuses and
// resolves its composite status.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - noShippingRequired: true for orders that need no physical delivery
//   - policy: the status registry
//
// Returns:
//   - *Order: The created order
//   - error: Validation error, or status.ErrNoMatchingRule when the rule table
//     does not cover the default pair
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), false, registry)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // "new"
func NewOrder(id kernel.UUID, noShippingRequired bool, policy StatusPolicy) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	payment := policy.DefaultCode(status.AxisPayment)
	shipment := policy.DefaultCode(status.AxisShipment)

	resolved, err := policy.Resolve(payment, shipment)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		paymentStatus:      payment,
		shipmentStatus:     shipment,
		status:             resolved,
		noShippingRequired: noShippingRequired,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order loaded from storage. Codes are taken as stored;
// they are only checked for presence.
func RestoreOrder(
	id kernel.UUID,
	paymentStatus string,
	shipmentStatus string,
	orderStatus string,
	noShippingRequired bool,
) (*Order, error) {
	var problems []error
	problems = append(problems, id.Validate())
	if strings.TrimSpace(paymentStatus) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("payment status"))
	}
	if strings.TrimSpace(shipmentStatus) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("shipment status"))
	}
	if strings.TrimSpace(orderStatus) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("order status"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		paymentStatus:      paymentStatus,
		shipmentStatus:     shipmentStatus,
		status:             orderStatus,
		noShippingRequired: noShippingRequired,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

func (o *Order) ShipmentStatus() string {
	return o.shipmentStatus
}

// Status returns the composite order status.
func (o *Order) Status() string {
	return o.status
}

func (o *Order) NoShippingRequired() bool {
	return o.noShippingRequired
}

// ChangePaymentStatus moves the payment signal to code and re-resolves the composite status.
//
// The checks run in this order:
//   - the order must not be terminal (ErrOrderAlreadyTerminal)
//   - code must exist in the payment vocabulary (status.ErrUnknownStatusCode)
//   - the new pair must resolve (status.ErrNoMatchingRule)
//
// On any error the order is left exactly as it was.
func (o *Order) ChangePaymentStatus(code string, policy StatusPolicy) error {
	if err := o.change(status.AxisPayment, code, code, o.shipmentStatus, policy); err != nil {
		return err
	}
	o.paymentStatus = code
	return nil
}

// ChangeShipmentStatus is the shipment counterpart of ChangePaymentStatus.
func (o *Order) ChangeShipmentStatus(code string, policy StatusPolicy) error {
	if err := o.change(status.AxisShipment, code, o.paymentStatus, code, policy); err != nil {
		return err
	}
	o.shipmentStatus = code
	return nil
}

// change runs the guard and resolves (payment, shipment); it only writes the composite status.
func (o *Order) change(axis status.Axis, code, payment, shipment string, policy StatusPolicy) error {
	if err := o.EnsureNotTerminal(policy); err != nil {
		return err
	}
	if err := policy.ValidateCode(axis, code); err != nil {
		return err
	}

	resolved, err := policy.Resolve(payment, shipment)
	if err != nil {
		return err
	}

	o.status = resolved
	return nil
}

// Cancel moves both signals to canceled when both current statuses are cancelable.
//
// Example:
//
//	if err := o.Cancel(registry); errors.Is(err, order.ErrOrderNotCancelable) {
//	    // the order already shipped or the payment was captured for good
//	}
func (o *Order) Cancel(policy StatusPolicy) error {
	if err := o.EnsureNotTerminal(policy); err != nil {
		return err
	}
	if !policy.IsCancelable(status.AxisPayment, o.paymentStatus) {
		return &NotCancelableError{OrderID: o.id.String(), Axis: status.AxisPayment, Code: o.paymentStatus}
	}
	if !policy.IsCancelable(status.AxisShipment, o.shipmentStatus) {
		return &NotCancelableError{OrderID: o.id.String(), Axis: status.AxisShipment, Code: o.shipmentStatus}
	}
	if err := errors.Join(
		policy.ValidateCode(status.AxisPayment, status.PaymentCanceled),
		policy.ValidateCode(status.AxisShipment, status.ShipmentCanceled),
	); err != nil {
		return err
	}

	resolved, err := policy.Resolve(status.PaymentCanceled, status.ShipmentCanceled)
	if err != nil {
		return err
	}

	o.paymentStatus = status.PaymentCanceled
	o.shipmentStatus = status.ShipmentCanceled
	o.status = resolved
	return nil
}

// EnsureNotTerminal returns a TerminalOrderError when the composite status is terminal.
func (o *Order) EnsureNotTerminal(policy StatusPolicy) error {
	if policy.IsTerminal(o.status) {
		return &TerminalOrderError{OrderID: o.id.String(), Status: o.status}
	}
	return nil
}

// EnsureAwaitingShipment rejects terminal orders and orders already shipped or delivered.
func (o *Order) EnsureAwaitingShipment(policy StatusPolicy) error {
	if err := o.EnsureNotTerminal(policy); err != nil {
		return err
	}
	switch o.shipmentStatus {
	case status.ShipmentShipped, status.ShipmentDelivered:
		return &ShipmentDispatchedError{OrderID: o.id.String(), ShipmentStatus: o.shipmentStatus}
	}
	return nil
}

// IsTerminal reports whether the order can no longer change.
func (o *Order) IsTerminal(policy StatusPolicy) bool {
	return policy.IsTerminal(o.status)
}
