package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and runs the OrderCanceled hooks.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	changer    *StatusChanger
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, changer *StatusChanger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inUnitOfWork(ctx, h.uowFactory, func(repos ports.Repositories) (*order.Order, error) {
		return h.changer.CancelOrder(ctx, repos, cmd.OrderID())
	})
}
