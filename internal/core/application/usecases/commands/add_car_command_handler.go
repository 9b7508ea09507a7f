package commands

import (
	"context"

	"autoshop/internal/core/application/logic"
)

// AddCarCommandHandler handles car registration. It owns the scope for the
// operation and delegates the garage invariants to CarLogic.
type AddCarCommandHandler struct {
	uowFactory    CarUoWFactory
	logicProvider *logic.Provider
}

// NewAddCarCommandHandler creates a handler for car registration operations.
func NewAddCarCommandHandler(uowFactory CarUoWFactory, logicProvider *logic.Provider) AddCarCommandHandler {
	return AddCarCommandHandler{
		uowFactory:    uowFactory,
		logicProvider: logicProvider,
	}
}

// Handle processes the command and returns the new car's identifier.
// The scope commits only when the whole operation succeeded; the deferred
// rollback covers every other exit path.
func (h *AddCarCommandHandler) Handle(ctx context.Context, cmd AddCarCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow, err := h.uowFactory.Create(ctx)
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carLogic := h.logicProvider.CarLogic(uow)
	aggregate, err := carLogic.AddCarWithValidation(ctx, cmd.UserID(), cmd.Nameplate())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
