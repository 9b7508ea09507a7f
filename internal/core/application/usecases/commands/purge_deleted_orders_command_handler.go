package commands

import (
	"context"
	"time"
)

// PurgeDeletedOrdersCommandHandler handles the periodic hard-delete of
// soft-deleted orders. Line items disappear with their orders through the
// cascade on the items' foreign key.
type PurgeDeletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeletedOrdersCommandHandler creates a handler for purge operations.
func NewPurgeDeletedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeDeletedOrdersCommandHandler {
	return PurgeDeletedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns how many orders were removed.
func (h *PurgeDeletedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeDeletedOrdersCommand) (int64, error) {
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

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	purged, err := uow.OrderRepository().PurgeDeleted(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
