package commands_test

import (
	"testing"
	"time"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/services"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddLineItemHandler(t *testing.T, factory *MockOrderUoWFactory, stock int) commands.AddLineItemCommandHandler {
	t.Helper()
	engine, err := services.NewPricingEngine(testCatalog(t, 1000, stock))
	require.NoError(t, err)
	return commands.NewAddLineItemCommandHandler(factory, engine)
}

func TestAddLineItemCommandHandler_Handle_LocksAndResums(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	draft, err := order.NewDraftOrder(kernel.NewUUID(), buyerID, time.Now())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, draft.ID()).Return(draft, nil).Once(),
		repo.On("AppendLineItem", ctx, draft, mock.AnythingOfType("order.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewAddLineItemCommand(draft.ID(), buyerID, 1, 3)
	require.NoError(t, err)

	updated, err := newAddLineItemHandler(t, factory, 5).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.Total().IsEqual(money(t, 3000)))
	items := updated.LineItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Polera", items[0].ProductName())
	assert.Equal(t, map[string]any{"talla": "M"}, items[0].Attributes())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestAddLineItemCommandHandler_Handle_CompletedOrderRejected(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	completed := completedOrder(t, buyerID)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, completed.ID()).Return(completed, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewAddLineItemCommand(completed.ID(), buyerID, 1, 1)
	require.NoError(t, err)

	_, err = newAddLineItemHandler(t, factory, 5).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.True(t, completed.Total().IsEqual(money(t, 2500)))
	repo.AssertNotCalled(t, "AppendLineItem", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddLineItemCommandHandler_Handle_OtherBuyersOrderIsNotFound(t *testing.T) {
	ctx := t.Context()
	draft, err := order.NewDraftOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, draft.ID()).Return(draft, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewAddLineItemCommand(draft.ID(), kernel.NewUUID(), 1, 1)
	require.NoError(t, err)

	_, err = newAddLineItemHandler(t, factory, 5).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddLineItemCommandHandler_Handle_StockCheckedBeforeLocking(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	cmd, err := commands.NewAddLineItemCommand(kernel.NewUUID(), kernel.NewUUID(), 1, 6)
	require.NoError(t, err)

	_, err = newAddLineItemHandler(t, factory, 5).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStockConflict)
	factory.AssertNotCalled(t, "Create")
}

func TestNewAddLineItemCommand_Validation(t *testing.T) {
	_, err := commands.NewAddLineItemCommand(kernel.UUID{}, kernel.NewUUID(), 0, 0)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
