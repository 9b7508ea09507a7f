package commands

import (
	"context"

	"autoshop/internal/core/application/logic"

	"github.com/shopspring/decimal"
)

// CreateOrderResult describes the order that was created.
type CreateOrderResult struct {
	OrderID     int64
	OrderNumber string
	Status      string
	TotalAmount decimal.Decimal
	ItemCount   int
}

// CreateOrderCommandHandler handles order creation. It owns the scope for
// the whole multi-write operation: the order insert, the mid-operation flush
// that yields the order identifier, and the line item inserts all commit or
// roll back together.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	logicProvider *logic.Provider
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logicProvider *logic.Provider) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		logicProvider: logicProvider,
	}
}

// Handle processes the command and returns a description of the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow, err := h.uowFactory.Create(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carLogic := h.logicProvider.CarLogic(uow)
	orderLogic := h.logicProvider.OrderLogic(uow, carLogic)
	aggregate, err := orderLogic.CreateOrderWithValidation(ctx, cmd.UserID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &CreateOrderResult{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.Number().String(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		ItemCount:   len(cmd.Items()),
	}, nil
}
