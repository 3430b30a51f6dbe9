package shipment

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned for a Shipment not built by NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is a physical (or virtual, zero-item) consignment of an order.
type Shipment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	carrier        string
	trackingNumber string
	itemCount      int
	createdAt      time.Time

	isConstructed bool
}

// NewShipment creates a shipment for orderID. carrier and trackingNumber may be empty.
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	carrier string,
	trackingNumber string,
	itemCount int,
	createdAt time.Time,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if itemCount < 0 {
		return nil, errs.NewValueIsInvalidError("item count")
	}
	if trackingNumber != "" && carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}

	return &Shipment{
		id:             id,
		orderID:        orderID,
		carrier:        carrier,
		trackingNumber: trackingNumber,
		itemCount:      itemCount,
		createdAt:      createdAt.UTC(),
		isConstructed:  true,
	}, nil
}

// NewVirtualShipment creates the zero-item shipment used to fulfil orders
// that need no physical delivery.
func NewVirtualShipment(id kernel.UUID, orderID kernel.UUID, createdAt time.Time) (*Shipment, error) {
	return NewShipment(id, orderID, "", "", 0, createdAt)
}

// RestoreShipment rebuilds a shipment loaded from storage.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	carrier string,
	trackingNumber string,
	itemCount int,
	createdAt time.Time,
) (*Shipment, error) {
	return NewShipment(id, orderID, carrier, trackingNumber, itemCount, createdAt)
}

// Validate reports whether the shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

func (s *Shipment) Carrier() string {
	return s.carrier
}

func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

func (s *Shipment) ItemCount() int {
	return s.itemCount
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// IsVirtual reports whether the shipment carries no items.
func (s *Shipment) IsVirtual() bool {
	return s.itemCount == 0
}
