package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/status"
)

// StatusPolicy is the part of status.Registry the Order aggregate depends on.
type StatusPolicy interface {
	DefaultCode(axis status.Axis) string
	ValidateCode(axis status.Axis, code string) error
	Resolve(payment, shipment string) (string, error)
	IsTerminal(orderStatus string) bool
	IsCancelable(axis status.Axis, code string) bool
}

var (
	// ErrOrderAlreadyTerminal is returned for any mutation of a canceled or closed order.
	ErrOrderAlreadyTerminal = errors.New("order is already in a terminal status")

	// ErrOrderNotCancelable is returned when the payment or shipment status forbids cancelation.
	ErrOrderNotCancelable = errors.New("order cannot be canceled")

	// ErrShipmentAlreadyDispatched is returned when a shipment is recorded for an
	// order whose goods already left the warehouse.
	ErrShipmentAlreadyDispatched = errors.New("order shipment is already dispatched")
)

// TerminalOrderError carries the order and its terminal status.
type TerminalOrderError struct {
	OrderID string
	Status  string
}

func (e *TerminalOrderError) Error() string {
	return fmt.Sprintf("%s: order %s is %s", ErrOrderAlreadyTerminal, e.OrderID, e.Status)
}

func (e *TerminalOrderError) Unwrap() error {
	return ErrOrderAlreadyTerminal
}

// NotCancelableError names the axis whose current status blocks cancelation.
type NotCancelableError struct {
	OrderID string
	Axis    status.Axis
	Code    string
}

func (e *NotCancelableError) Error() string {
	return fmt.Sprintf("%s: order %s has %s status %q", ErrOrderNotCancelable, e.OrderID, e.Axis, e.Code)
}

func (e *NotCancelableError) Unwrap() error {
	return ErrOrderNotCancelable
}

// ShipmentDispatchedError names the shipment status that blocks a new shipment.
type ShipmentDispatchedError struct {
	OrderID        string
	ShipmentStatus string
}

func (e *ShipmentDispatchedError) Error() string {
	return fmt.Sprintf("%s: order %s has shipment status %q", ErrShipmentAlreadyDispatched, e.OrderID, e.ShipmentStatus)
}

func (e *ShipmentDispatchedError) Unwrap() error {
	return ErrShipmentAlreadyDispatched
}
