package hooks_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Enqueue(ctx context.Context, msg *notification.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]*notification.Message, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*notification.Message), args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, msg *notification.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockShipmentStatusChanger struct{ mock.Mock }

func (m *MockShipmentStatusChanger) ChangeShipmentStatus(
	ctx context.Context,
	repos ports.Repositories,
	orderID kernel.UUID,
	code string,
) (*order.Order, error) {
	args := m.Called(ctx, repos, orderID, code)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type stubRepositories struct {
	shipments ports.ShipmentRepository
	outbox    ports.OutboxRepository
}

func (r stubRepositories) OrderRepository() ports.OrderRepository { return nil }
func (r stubRepositories) ShipmentRepository() ports.ShipmentRepository { return r.shipments }
func (r stubRepositories) OutboxRepository() ports.OutboxRepository { return r.outbox }

func newLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func restoreOrder(t *testing.T, noShippingRequired bool) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), "pending", "pending", "new", noShippingRequired)
	require.NoError(t, err)
	return o
}
