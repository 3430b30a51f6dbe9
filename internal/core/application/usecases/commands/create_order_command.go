package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order in the default payment and shipment statuses.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	// o.ShipmentStatus() == "delivered": digital orders are fulfilled by a hook
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	noShippingRequired bool

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, noShippingRequired bool) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:            orderID,
		noShippingRequired: noShippingRequired,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) NoShippingRequired() bool {
	return c.noShippingRequired
}
