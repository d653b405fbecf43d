package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, number string, status order.Status) *order.Order {
	t.Helper()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:         kernel.NewUUID(),
		Number:     orderNumber(t, number),
		CustomerID: kernel.NewUUID(),
		Status:     status,
		CreatedAt:  created,
		UpdatedAt:  created,
	})
	require.NoError(t, err)
	return o
}

func TestTransitionOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, "AB12CD34EF", order.Pending)
	cmd, err := commands.NewTransitionOrderStatusCommand("AB12CD34EF", "CONFIRMED")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", ctx, cmd.Number()).Return(target, nil).Once(),
		repo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionOrderStatusCommandHandler(factory, discardLogger)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	assert.Equal(t, order.Confirmed, updated.Status())
	assert.True(t, updated.UpdatedAt().After(updated.CreatedAt()))
	events := updated.PendingEvents()
	require.Len(t, events, 1)
	assert.Equal(t, order.Pending, events[0].From)
	assert.Equal(t, order.Confirmed, events[0].To)
}

func TestTransitionOrderStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, "AB12CD34EF", order.Preparing)
	before := target.UpdatedAt()
	cmd, err := commands.NewTransitionOrderStatusCommand("AB12CD34EF", "PREPARING")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", ctx, cmd.Number()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewTransitionOrderStatusCommandHandler(factory, discardLogger)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, order.Preparing, updated.Status())
	assert.Equal(t, before, updated.UpdatedAt())
	assert.Empty(t, updated.PendingEvents())
}

func TestTransitionOrderStatusCommandHandler_Handle_FromTerminalStatusIsAllowed(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, "AB12CD34EF", order.Completed)
	cmd, err := commands.NewTransitionOrderStatusCommand("AB12CD34EF", "PENDING")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByNumber", ctx, cmd.Number()).Return(target, nil).Once()
	repo.On("Update", ctx, target).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, discardLogger)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, updated.Status())
}

func TestTransitionOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderStatusCommand("MISSING", "CONFIRMED")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByNumber", ctx, cmd.Number()).
		Return(nil, errs.NewObjectNotFoundError("order number", "MISSING")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, discardLogger)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewTransitionOrderStatusCommandHandler(factory, discardLogger)

	_, err := h.Handle(t.Context(), commands.TransitionOrderStatusCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, "AB12CD34EF", order.Pending)
	cmd, err := commands.NewTransitionOrderStatusCommand("AB12CD34EF", "CANCELLED")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByNumber", ctx, cmd.Number()).Return(target, nil).Once()
	repo.On("Update", ctx, target).Return(errors.New("update error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, discardLogger)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
