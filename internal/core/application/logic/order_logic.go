package logic

import (
	"context"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/order"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemInput is one requested order line, as plain values.
type ItemInput struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderSummary is the composite projection returned by GetOrderSummary.
// It spans the order, its owning user and the user's garage size.
type OrderSummary struct {
	OrderID      int64
	OrderNumber  string
	UserEmail    string
	UserCarCount int
	TotalAmount  decimal.Decimal
	Status       string
	ItemCount    int
}

// OrderScope is the slice of the unit of work OrderLogic needs.
// ports.UnitOfWork satisfies it. Flush is part of the contract because order
// creation needs the generated order identifier before writing line items.
type OrderScope interface {
	Flush(ctx context.Context) error
	UserRepository() ports.UserRepository
	OrderRepository() ports.OrderRepository
	OrderItemRepository() ports.OrderItemRepository
}

// OrderLogic enforces the order invariants: orders belong to existing users,
// carry at least one valid line, a unique order number and an exact decimal
// total, and only their owner may cancel them while they are still
// cancellable.
type OrderLogic interface {
	// CreateOrderWithValidation creates an order with its line items inside
	// the current scope. The scope is flushed mid-operation so the items can
	// reference the generated order identifier; nothing is committed here.
	CreateOrderWithValidation(ctx context.Context, userID int64, items []ItemInput) (*order.Order, error)

	// CancelOrder transitions the user's order to Cancelled. Fails with a
	// conflict when the order belongs to someone else or its status does
	// not allow cancellation.
	CancelOrder(ctx context.Context, orderID, userID int64) error

	// GetOrderSummary loads the order with its owning user and line items
	// and projects them, together with the owner's car count, into one
	// read model.
	GetOrderSummary(ctx context.Context, orderID int64) (*OrderSummary, error)
}

var _ OrderLogic = &orderLogic{}

type orderLogic struct {
	scope OrderScope
	cars  CarLogic
}

// NewOrderLogic creates an OrderLogic bound to the given scope.
// The CarLogic is passed in by the caller rather than constructed here, so
// the dependency between the two units stays visible at the call site.
func NewOrderLogic(scope OrderScope, cars CarLogic) OrderLogic {
	return &orderLogic{scope: scope, cars: cars}
}

func (l *orderLogic) CreateOrderWithValidation(ctx context.Context, userID int64, items []ItemInput) (*order.Order, error) {
	if _, err := l.scope.UserRepository().Get(ctx, userID); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("product %q has quantity %d, expected greater than 0", item.Product, item.Quantity))
		}
		if !item.UnitPrice.IsPositive() {
			return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
				fmt.Errorf("product %q has unit price %s, expected greater than 0", item.Product, item.UnitPrice))
		}
	}

	number := kernel.NewOrderNumber(time.Now())
	exists, err := l.scope.OrderRepository().ExistsByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictErrorWithCause("orderNumber",
			fmt.Errorf("order number %s already exists", number))
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	aggregate, err := order.NewOrder(userID, number, time.Now().UTC(), total)
	if err != nil {
		return nil, err
	}
	if err := l.scope.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	// The items reference the order by identifier, which the database
	// generates on insert. Flushing here makes it available.
	if err := l.scope.Flush(ctx); err != nil {
		return nil, err
	}

	for _, input := range items {
		line, err := order.NewItem(aggregate.ID(), input.Product, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		if err := l.scope.OrderItemRepository().Add(ctx, line); err != nil {
			return nil, err
		}
	}

	return aggregate, nil
}

func (l *orderLogic) CancelOrder(ctx context.Context, orderID, userID int64) error {
	if _, err := l.scope.UserRepository().Get(ctx, userID); err != nil {
		return err
	}

	aggregate, err := l.scope.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if !aggregate.BelongsTo(userID) {
		return errs.NewConflictErrorWithCause("userId",
			fmt.Errorf("order %d does not belong to user %d", orderID, userID))
	}

	return aggregate.Cancel()
}

func (l *orderLogic) GetOrderSummary(ctx context.Context, orderID int64) (*OrderSummary, error) {
	aggregate, err := l.scope.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	owner, err := l.scope.UserRepository().Get(ctx, aggregate.UserID())
	if err != nil {
		return nil, err
	}

	lines, err := l.scope.OrderItemRepository().ListByOrder(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	carCount, err := l.cars.GetUserCarCount(ctx, aggregate.UserID())
	if err != nil {
		return nil, err
	}

	return &OrderSummary{
		OrderID:      aggregate.ID(),
		OrderNumber:  aggregate.Number().String(),
		UserEmail:    owner.Email(),
		UserCarCount: carCount,
		TotalAmount:  aggregate.TotalAmount(),
		Status:       aggregate.Status().String(),
		ItemCount:    len(lines),
	}, nil
}
