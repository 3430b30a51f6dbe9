package queries

import (
	"context"
	"database/sql"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its shipments.
type GetOrderQueryHandler struct {
	db       *gorm.DB
	registry *status.Registry
}

func NewGetOrderQueryHandler(db *gorm.DB, registry *status.Registry) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, registry: registry}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		resp                                 GetOrderQueryResponse
		paymentCode, shipmentCode, orderCode string
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			payment_status,
			shipment_status,
			status,
			no_shipping_required,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	err := row.Scan(&paymentCode, &shipmentCode, &orderCode, &resp.NoShippingRequired, &resp.CreatedAt, &resp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return nil, err
	}

	resp.ID = query.OrderID()
	resp.PaymentStatus = viewOf(h.registry, status.AxisPayment, paymentCode)
	resp.ShipmentStatus = viewOf(h.registry, status.AxisShipment, shipmentCode)
	resp.Status = viewOf(h.registry, status.AxisOrder, orderCode)
	resp.Terminal = h.registry.IsTerminal(orderCode)

	resp.Shipments, err = h.shipments(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetOrderQueryHandler) shipments(ctx context.Context, orderID kernel.UUID) ([]ShipmentResponse, error) {
	shipments := make([]ShipmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier,
			tracking_number,
			item_count,
			created_at
		FROM shipments
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s ShipmentResponse
		var id uuid.UUID
		var carrier, trackingNumber sql.NullString

		if err = rows.Scan(&id, &carrier, &trackingNumber, &s.ItemCount, &s.CreatedAt); err != nil {
			return nil, err
		}

		s.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		s.Carrier = carrier.String
		s.TrackingNumber = trackingNumber.String
		if c, ok := h.registry.Carrier(s.Carrier); ok {
			s.CarrierName = c.Name()
			s.TrackingLink = c.TrackingLink(s.TrackingNumber)
		}
		shipments = append(shipments, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
