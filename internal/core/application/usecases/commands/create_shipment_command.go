package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand hands (part of) an order to a carrier.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	carrier        string
	trackingNumber string
	itemCount      int

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	orderID kernel.UUID,
	carrier string,
	trackingNumber string,
	itemCount int,
) (CreateShipmentCommand, error) {
	carrier = strings.TrimSpace(carrier)
	trackingNumber = strings.TrimSpace(trackingNumber)

	var problems []error
	problems = append(problems, orderID.Validate())
	if carrier == "" {
		problems = append(problems, errs.NewValueIsRequiredError("carrier"))
	}
	if itemCount <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("item count"))
	}
	if err := errors.Join(problems...); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		orderID:        orderID,
		carrier:        carrier,
		trackingNumber: trackingNumber,
		itemCount:      itemCount,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateShipmentCommand) Carrier() string {
	return c.carrier
}

func (c CreateShipmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c CreateShipmentCommand) ItemCount() int {
	return c.itemCount
}
