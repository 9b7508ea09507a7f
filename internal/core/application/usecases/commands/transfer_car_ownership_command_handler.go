package commands

import (
	"context"

	"autoshop/internal/core/application/logic"
)

// TransferCarOwnershipCommandHandler handles ownership transfers. The actual
// owner check and the in-memory reassignment live in CarLogic; the handler
// owns the scope, so the reassignment reaches storage on its commit.
type TransferCarOwnershipCommandHandler struct {
	uowFactory    CarUoWFactory
	logicProvider *logic.Provider
}

// NewTransferCarOwnershipCommandHandler creates a handler for ownership
// transfer operations.
func NewTransferCarOwnershipCommandHandler(
	uowFactory CarUoWFactory,
	logicProvider *logic.Provider,
) TransferCarOwnershipCommandHandler {
	return TransferCarOwnershipCommandHandler{
		uowFactory:    uowFactory,
		logicProvider: logicProvider,
	}
}

// Handle processes the transfer command.
func (h *TransferCarOwnershipCommandHandler) Handle(ctx context.Context, cmd TransferCarOwnershipCommand) error {
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
	if err = carLogic.TransferCarOwnership(ctx, cmd.CarID(), cmd.FromUserID(), cmd.ToUserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
