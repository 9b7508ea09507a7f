package commands_test

import (
	"context"
	"testing"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/car"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/order"
	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UserRepo struct{ mock.Mock }

func (m *UserRepo) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepo) ListAll(ctx context.Context, offset, limit int) ([]*user.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type CarRepo struct{ mock.Mock }

func (m *CarRepo) Add(ctx context.Context, c *car.Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CarRepo) Get(ctx context.Context, id int64) (*car.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*car.Car), args.Error(1)
}

func (m *CarRepo) ListByUser(ctx context.Context, userID int64) ([]*car.Car, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*car.Car), args.Error(1)
}

type OrderRepo struct{ mock.Mock }

func (m *OrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepo) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *OrderRepo) ExistsByNumber(ctx context.Context, number kernel.OrderNumber) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type OrderItemRepo struct{ mock.Mock }

func (m *OrderItemRepo) Add(ctx context.Context, item *order.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *OrderItemRepo) Get(ctx context.Context, id int64) (*order.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Item), args.Error(1)
}

func (m *OrderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Item), args.Error(1)
}

// UnitOfWork mocks the full scope; the repository accessors return the
// embedded repo mocks directly instead of going through Called, so tests
// only set expectations on the calls that matter.
type UnitOfWork struct {
	mock.Mock

	users      *UserRepo
	cars       *CarRepo
	orders     *OrderRepo
	orderItems *OrderItemRepo
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		users:      new(UserRepo),
		cars:       new(CarRepo),
		orders:     new(OrderRepo),
		orderItems: new(OrderItemRepo),
	}
}

func (m *UnitOfWork) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UnitOfWork) UserRepository() ports.UserRepository { return m.users }

func (m *UnitOfWork) CarRepository() ports.CarRepository { return m.cars }

func (m *UnitOfWork) OrderRepository() ports.OrderRepository { return m.orders }

func (m *UnitOfWork) OrderItemRepository() ports.OrderItemRepository { return m.orderItems }

func (m *UnitOfWork) assertExpectations(t *testing.T) {
	t.Helper()

	m.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.cars.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.orderItems.AssertExpectations(t)
}

type CarUoWFactory struct{ mock.Mock }

func (m *CarUoWFactory) Create(ctx context.Context) (commands.CarUoW, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(commands.CarUoW), args.Error(1)
}

type OrderUoWFactory struct{ mock.Mock }

func (m *OrderUoWFactory) Create(ctx context.Context) (commands.OrderUoW, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(commands.OrderUoW), args.Error(1)
}

var (
	_ commands.CarUoW   = &UnitOfWork{}
	_ commands.OrderUoW = &UnitOfWork{}
)

func restoreTestUser(t *testing.T, id int64) *user.User {
	t.Helper()

	u, err := user.RestoreUser(id, "user@example.com")
	require.NoError(t, err)
	return u
}

func restoreTestCar(t *testing.T, id, userID int64, nameplate string) *car.Car {
	t.Helper()

	c, err := car.RestoreCar(id, userID, nameplate)
	require.NoError(t, err)
	return c
}
