package commands

import (
	"context"

	"autoshop/internal/core/application/logic"
)

// CancelOrderCommandHandler handles order cancellation. The status transition
// happens in memory inside OrderLogic; committing the scope is what persists
// it, through the scope's change tracking.
type CancelOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	logicProvider *logic.Provider
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, logicProvider *logic.Provider) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:    uowFactory,
		logicProvider: logicProvider,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow, err := h.uowFactory.Create(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carLogic := h.logicProvider.CarLogic(uow)
	orderLogic := h.logicProvider.OrderLogic(uow, carLogic)
	if err = orderLogic.CancelOrder(ctx, cmd.OrderID(), cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
