package status

import "fmt"

// Axis names one of the three status vocabularies.
type Axis string

const (
	AxisPayment  Axis = "payment"
	AxisShipment Axis = "shipment"
	AxisOrder    Axis = "order"
)

// Wildcard matches any code on one axis of a rule.
const Wildcard = "*"

// Codes of the compiled-in vocabulary that built-in behavior relies on.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentCanceled = "canceled"
	PaymentRefunded = "refunded"

	ShipmentPending    = "pending"
	ShipmentProcessing = "processing"
	ShipmentShipped    = "shipped"
	ShipmentDelivered  = "delivered"
	ShipmentCanceled   = "canceled"

	OrderNew        = "new"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCanceled   = "canceled"
	OrderClosed     = "closed"
)

// Validate rejects anything but the three known axes.
func (a Axis) Validate() error {
	switch a {
	case AxisPayment, AxisShipment, AxisOrder:
		return nil
	default:
		return fmt.Errorf("unknown status axis %q", string(a))
	}
}

func (a Axis) String() string {
	return string(a)
}
