package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler lists orders that can still change.
type GetOpenOrdersQueryHandler struct {
	db       *gorm.DB
	registry *status.Registry
}

func NewGetOpenOrdersQueryHandler(db *gorm.DB, registry *status.Registry) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db, registry: registry}
}

func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			payment_status,
			shipment_status,
			status
		FROM orders
		WHERE status NOT IN ?
		ORDER BY created_at, id
		LIMIT ?
	`, terminalCodes(h.registry), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                                   uuid.UUID
			paymentCode, shipmentCode, orderCode string
		)
		if err = rows.Scan(&id, &paymentCode, &shipmentCode, &orderCode); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orders = append(orders, GetOpenOrdersQueryResponse{
			ID:             orderID,
			PaymentStatus:  viewOf(h.registry, status.AxisPayment, paymentCode),
			ShipmentStatus: viewOf(h.registry, status.AxisShipment, shipmentCode),
			Status:         viewOf(h.registry, status.AxisOrder, orderCode),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
