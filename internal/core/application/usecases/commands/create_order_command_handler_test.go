package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockedHandler(t *testing.T, factory commands.UoWFactory, publisher commands.EventPublisher) commands.CreateOrderCommandHandler {
	t.Helper()
	registry, err := status.LoadRegistry([]status.Contribution{status.DefaultContribution()})
	require.NoError(t, err)
	return commands.NewCreateOrderCommandHandler(factory, commands.NewStatusChanger(registry, publisher, noOpMetrics()))
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, false)
	stored, err := order.RestoreOrder(id, "pending", "pending", "new", false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("Publish", ctx, uow, mock.AnythingOfType("events.OrderCreated")).Return(nil).Once(),
		repo.On("Get", ctx, id).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newMockedHandler(t, factory, publisher)
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "new", o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	factory := new(MockUoWFactory)
	h := newMockedHandler(t, factory, new(MockEventPublisher))

	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), false)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := newMockedHandler(t, factory, new(MockEventPublisher))
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", ctx)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), false)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockEventPublisher)

	h := newMockedHandler(t, factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_HookError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), true)
	hookErr := errors.New("hook failed")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("Publish", ctx, uow, mock.AnythingOfType("events.OrderCreated")).Return(hookErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newMockedHandler(t, factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, hookErr)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, false)
	stored, err := order.RestoreOrder(id, "pending", "pending", "new", false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("Publish", ctx, uow, mock.AnythingOfType("events.OrderCreated")).Return(nil).Once(),
		repo.On("Get", ctx, id).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newMockedHandler(t, factory, publisher)
	o, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
	assert.Nil(t, o)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
