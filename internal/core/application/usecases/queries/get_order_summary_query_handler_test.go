package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoshop/internal/core/application/logic"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/car"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/order"
	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SummaryUserRepo struct{ mock.Mock }

func (m *SummaryUserRepo) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *SummaryUserRepo) ListAll(ctx context.Context, offset, limit int) ([]*user.User, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*user.User), args.Error(1)
}

type SummaryCarRepo struct{ mock.Mock }

func (m *SummaryCarRepo) Add(ctx context.Context, c *car.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *SummaryCarRepo) Get(ctx context.Context, id int64) (*car.Car, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*car.Car), args.Error(1)
}

func (m *SummaryCarRepo) ListByUser(ctx context.Context, userID int64) ([]*car.Car, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*car.Car), args.Error(1)
}

type SummaryOrderRepo struct{ mock.Mock }

func (m *SummaryOrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *SummaryOrderRepo) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *SummaryOrderRepo) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *SummaryOrderRepo) ExistsByNumber(ctx context.Context, number kernel.OrderNumber) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *SummaryOrderRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type SummaryOrderItemRepo struct{ mock.Mock }

func (m *SummaryOrderItemRepo) Add(ctx context.Context, item *order.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *SummaryOrderItemRepo) Get(ctx context.Context, id int64) (*order.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Item), args.Error(1)
}

func (m *SummaryOrderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Item), args.Error(1)
}

type SummaryScope struct {
	mock.Mock

	users      *SummaryUserRepo
	cars       *SummaryCarRepo
	orders     *SummaryOrderRepo
	orderItems *SummaryOrderItemRepo
}

func NewSummaryScope() *SummaryScope {
	return &SummaryScope{
		users:      new(SummaryUserRepo),
		cars:       new(SummaryCarRepo),
		orders:     new(SummaryOrderRepo),
		orderItems: new(SummaryOrderItemRepo),
	}
}

func (m *SummaryScope) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *SummaryScope) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *SummaryScope) UserRepository() ports.UserRepository { return m.users }

func (m *SummaryScope) CarRepository() ports.CarRepository { return m.cars }

func (m *SummaryScope) OrderRepository() ports.OrderRepository { return m.orders }

func (m *SummaryScope) OrderItemRepository() ports.OrderItemRepository { return m.orderItems }

type SummaryScopeFactory struct{ mock.Mock }

func (m *SummaryScopeFactory) Create(ctx context.Context) (queries.SummaryScope, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(queries.SummaryScope), args.Error(1)
}

var _ queries.SummaryScope = &SummaryScope{}

func TestGetOrderSummaryQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderSummaryQuery(42)
	require.NoError(t, err)

	number := kernel.NewOrderNumber(time.Now())
	testOrder, err := order.RestoreOrder(
		42, 1, number, time.Now().UTC(), order.Pending, decimal.NewFromInt(150), false)
	require.NoError(t, err)
	testUser, err := user.RestoreUser(1, "user@example.com")
	require.NoError(t, err)
	testCar, err := car.RestoreCar(10, 1, "Thunder")
	require.NoError(t, err)
	laptop, err := order.RestoreItem(1, 42, "Laptop", 1, decimal.RequireFromString("100.00"), false)
	require.NoError(t, err)
	mouse, err := order.RestoreItem(2, 42, "Mouse", 2, decimal.RequireFromString("25.00"), false)
	require.NoError(t, err)

	scope := NewSummaryScope()
	factory := new(SummaryScopeFactory)

	factory.On("Create", ctx).Return(scope, nil).Once()
	scope.orders.On("Get", ctx, int64(42)).Return(testOrder, nil).Once()
	scope.users.On("Get", ctx, int64(1)).Return(testUser, nil).Once()
	scope.orderItems.On("ListByOrder", ctx, int64(42)).
		Return([]*order.Item{laptop, mouse}, nil).Once()
	scope.cars.On("ListByUser", ctx, int64(1)).Return([]*car.Car{testCar}, nil).Once()
	scope.On("Rollback", ctx).Return(nil).Once()

	handler := queries.NewGetOrderSummaryQueryHandler(factory, logic.NewProvider())
	summary, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.OrderID)
	assert.Equal(t, number.String(), summary.OrderNumber)
	assert.Equal(t, "user@example.com", summary.UserEmail)
	assert.Equal(t, 1, summary.UserCarCount)
	assert.Equal(t, "Pending", summary.Status)
	assert.Equal(t, 2, summary.ItemCount)
	factory.AssertExpectations(t)
	scope.AssertExpectations(t)
}

func TestGetOrderSummaryQueryHandler_Handle_OrderNotFoundRollsBack(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderSummaryQuery(42)
	require.NoError(t, err)

	scope := NewSummaryScope()
	factory := new(SummaryScopeFactory)

	factory.On("Create", ctx).Return(scope, nil).Once()
	scope.orders.On("Get", ctx, int64(42)).
		Return(nil, errs.NewObjectNotFoundError("orderID", int64(42))).Once()
	scope.On("Rollback", ctx).Return(nil).Once()

	handler := queries.NewGetOrderSummaryQueryHandler(factory, logic.NewProvider())
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	scope.AssertExpectations(t)
}

func TestGetOrderSummaryQueryHandler_Handle_CreateScopeError(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderSummaryQuery(42)
	require.NoError(t, err)

	factory := new(SummaryScopeFactory)
	factory.On("Create", ctx).Return(nil, errors.New("begin error")).Once()

	handler := queries.NewGetOrderSummaryQueryHandler(factory, logic.NewProvider())
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin error")
}

func TestGetOrderSummaryQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(SummaryScopeFactory)

	handler := queries.NewGetOrderSummaryQueryHandler(factory, logic.NewProvider())
	_, err := handler.Handle(ctx, queries.GetOrderSummaryQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewGetOrderSummaryQuery constructor")
	factory.AssertNotCalled(t, "Create")
}
