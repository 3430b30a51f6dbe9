package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// CreateOrderCommandHandler stores a new order and runs the OrderCreated hooks in
// the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	changer    *StatusChanger
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, changer *StatusChanger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
	}
}

// Handle returns the order as it stands after the hooks ran.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inUnitOfWork(ctx, h.uowFactory, func(repos ports.Repositories) (*order.Order, error) {
		return h.changer.CreateOrder(ctx, repos, cmd.OrderID(), cmd.NoShippingRequired())
	})
}
