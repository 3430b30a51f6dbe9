package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"testing"

	"shop/internal/core/application/hooks"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/status"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/metrics"

	"github.com/stretchr/testify/require"
)

var errNoTransaction = errors.New("no active transaction")

type orderRow struct {
	payment            string
	shipment           string
	status             string
	noShippingRequired bool
}

// memoryStore is committed state; a unit of work mutates a copy until Commit.
type memoryStore struct {
	orders    map[kernel.UUID]orderRow
	shipments []*shipment.Shipment
	outbox    []*notification.Message
	locked    []kernel.UUID
}

func newMemoryStore() *memoryStore {
	return &memoryStore{orders: make(map[kernel.UUID]orderRow)}
}

func (s *memoryStore) clone() *memoryStore {
	return &memoryStore{
		orders:    maps.Clone(s.orders),
		shipments: slices.Clone(s.shipments),
		outbox:    slices.Clone(s.outbox),
		locked:    slices.Clone(s.locked),
	}
}

type memoryUoW struct {
	store *memoryStore
	work  *memoryStore
}

func (u *memoryUoW) Begin(context.Context) error {
	if u.work == nil {
		u.work = u.store.clone()
	}
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if u.work == nil {
		return errNoTransaction
	}
	*u.store = *u.work
	u.work = nil
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if u.work == nil {
		return errNoTransaction
	}
	u.work = nil
	return nil
}

func (u *memoryUoW) current() *memoryStore {
	if u.work != nil {
		return u.work
	}
	return u.store
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository { return memoryOrders{u} }
func (u *memoryUoW) ShipmentRepository() ports.ShipmentRepository { return memoryShipments{u} }
func (u *memoryUoW) OutboxRepository() ports.OutboxRepository { return memoryOutbox{u} }

type memoryFactory struct {
	store *memoryStore
}

func (f memoryFactory) Create() commands.UoW {
	return &memoryUoW{store: f.store}
}

type memoryOrders struct{ uow *memoryUoW }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	s := r.uow.current()
	if _, ok := s.orders[o.ID()]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	s.orders[o.ID()] = rowOf(o)
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	s := r.uow.current()
	if _, ok := s.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	s.orders[o.ID()] = rowOf(o)
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	row, ok := r.uow.current().orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(id, row.payment, row.shipment, row.status, row.noShippingRequired)
}

func (r memoryOrders) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	s := r.uow.current()
	s.locked = append(s.locked, id)
	return r.Get(ctx, id)
}

func rowOf(o *order.Order) orderRow {
	return orderRow{
		payment:            o.PaymentStatus(),
		shipment:           o.ShipmentStatus(),
		status:             o.Status(),
		noShippingRequired: o.NoShippingRequired(),
	}
}

type memoryShipments struct{ uow *memoryUoW }

func (r memoryShipments) Add(_ context.Context, s *shipment.Shipment) error {
	store := r.uow.current()
	store.shipments = append(store.shipments, s)
	return nil
}

func (r memoryShipments) ListByOrder(_ context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error) {
	var out []*shipment.Shipment
	for _, s := range r.uow.current().shipments {
		if s.OrderID().IsEqual(orderID) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memoryOutbox struct{ uow *memoryUoW }

func (r memoryOutbox) Enqueue(_ context.Context, m *notification.Message) error {
	store := r.uow.current()
	store.outbox = append(store.outbox, m)
	return nil
}

func (r memoryOutbox) FetchPending(_ context.Context, limit int) ([]*notification.Message, error) {
	var out []*notification.Message
	for _, m := range r.uow.current().outbox {
		if !m.IsSent() && len(out) < limit {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r memoryOutbox) MarkSent(context.Context, *notification.Message) error {
	return nil
}

// harness wires the real registry, hook bus and built-in hooks over the memory store.
type harness struct {
	store    *memoryStore
	factory  memoryFactory
	registry *status.Registry
	bus      *hooks.Bus
	changer  *commands.StatusChanger
}

func newHarness(t *testing.T, extra ...status.Contribution) *harness {
	t.Helper()

	registry, err := status.LoadRegistry(append([]status.Contribution{status.DefaultContribution()}, extra...))
	require.NoError(t, err)

	bus := hooks.NewBus(discardLogger())
	changer := commands.NewStatusChanger(registry, bus, noOpMetrics())
	hooks.RegisterBuiltins(bus, changer)

	store := newMemoryStore()
	return &harness{
		store:    store,
		factory:  memoryFactory{store: store},
		registry: registry,
		bus:      bus,
		changer:  changer,
	}
}

func (h *harness) createOrder(t *testing.T, noShippingRequired bool) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), noShippingRequired)
	require.NoError(t, err)

	handler := commands.NewCreateOrderCommandHandler(h.factory, h.changer)
	o, err := handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (h *harness) changePayment(t *testing.T, id kernel.UUID, code string) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewChangePaymentStatusCommand(id, code)
	require.NoError(t, err)

	handler := commands.NewChangePaymentStatusCommandHandler(h.factory, h.changer)
	return handler.Handle(t.Context(), cmd)
}

func (h *harness) changeShipment(t *testing.T, id kernel.UUID, code string) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewChangeShipmentStatusCommand(id, code)
	require.NoError(t, err)

	handler := commands.NewChangeShipmentStatusCommandHandler(h.factory, h.changer)
	return handler.Handle(t.Context(), cmd)
}

func (h *harness) cancel(t *testing.T, id kernel.UUID) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)

	handler := commands.NewCancelOrderCommandHandler(h.factory, h.changer)
	return handler.Handle(t.Context(), cmd)
}

func (h *harness) row(id kernel.UUID) orderRow {
	return h.store.orders[id]
}

func (h *harness) topics() []string {
	out := make([]string, 0, len(h.store.outbox))
	for _, m := range h.store.outbox {
		out = append(out, m.Topic())
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noOpMetrics() metrics.BusinessMetrics {
	return metrics.NewNoOpBusinessMetrics()
}
