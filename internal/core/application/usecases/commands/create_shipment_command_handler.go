package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// CreateShipmentCommandHandler stores a shipment and marks the order shipped.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	changer    *StatusChanger
}

func NewCreateShipmentCommandHandler(uowFactory UoWFactory, changer *StatusChanger) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
	}
}

func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inUnitOfWork(ctx, h.uowFactory, func(repos ports.Repositories) (*order.Order, error) {
		return h.changer.CreateShipment(ctx, repos, cmd.OrderID(), cmd.Carrier(), cmd.TrackingNumber(), cmd.ItemCount())
	})
}
