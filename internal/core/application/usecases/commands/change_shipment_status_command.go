package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand asks to move an order's shipment status.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

func NewChangeShipmentStatusCommand(orderID kernel.UUID, code string) (ChangeShipmentStatusCommand, error) {
	code = strings.TrimSpace(code)
	if err := errors.Join(orderID.Validate(), requireCode("shipment status", code)); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return ChangeShipmentStatusCommand{
		orderID: orderID,
		code:    code,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

func (c ChangeShipmentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeShipmentStatusCommand) Code() string {
	return c.code
}
