package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// ChangePaymentStatusCommandHandler applies a payment status change.
//
// Example:
//
//	cmd, _ := NewChangePaymentStatusCommand(orderID, "paid")
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyTerminal):
//	    // canceled and closed orders never change
//	case errors.Is(err, status.ErrUnknownStatusCode):
//	    // "paid" is not in the payment vocabulary
//	}
type ChangePaymentStatusCommandHandler struct {
	uowFactory UoWFactory
	changer    *StatusChanger
}

func NewChangePaymentStatusCommandHandler(uowFactory UoWFactory, changer *StatusChanger) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
	}
}

func (h *ChangePaymentStatusCommandHandler) Handle(ctx context.Context, cmd ChangePaymentStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inUnitOfWork(ctx, h.uowFactory, func(repos ports.Repositories) (*order.Order, error) {
		return h.changer.ChangePaymentStatus(ctx, repos, cmd.OrderID(), cmd.Code())
	})
}
