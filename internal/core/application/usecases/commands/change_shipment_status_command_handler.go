package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// ChangeShipmentStatusCommandHandler applies a shipment status change.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	changer    *StatusChanger
}

func NewChangeShipmentStatusCommandHandler(uowFactory UoWFactory, changer *StatusChanger) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
	}
}

func (h *ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inUnitOfWork(ctx, h.uowFactory, func(repos ports.Repositories) (*order.Order, error) {
		return h.changer.ChangeShipmentStatus(ctx, repos, cmd.OrderID(), cmd.Code())
	})
}
