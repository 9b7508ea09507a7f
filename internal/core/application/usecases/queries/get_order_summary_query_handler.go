package queries

import (
	"context"

	"autoshop/internal/core/application/logic"
	"autoshop/internal/core/ports"
)

// Summary scope interfaces. The summary is computed by the order logic, so
// unlike the raw SQL queries it needs a scope with repositories; it never
// commits, the deferred rollback ends the read-only transaction.
type (
	// SummaryScope is the slice of the unit of work the summary needs.
	SummaryScope interface {
		Flush(ctx context.Context) error
		Rollback(ctx context.Context) error
		UserRepository() ports.UserRepository
		CarRepository() ports.CarRepository
		OrderRepository() ports.OrderRepository
		OrderItemRepository() ports.OrderItemRepository
	}

	// SummaryScopeFactory creates scopes for summary queries.
	SummaryScopeFactory interface {
		Create(ctx context.Context) (SummaryScope, error)
	}
)

// GetOrderSummaryQueryHandler computes the order summary through OrderLogic,
// composing it with a CarLogic over the same scope for the owner's car count.
type GetOrderSummaryQueryHandler struct {
	scopeFactory  SummaryScopeFactory
	logicProvider *logic.Provider
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(
	scopeFactory SummaryScopeFactory,
	logicProvider *logic.Provider,
) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{
		scopeFactory:  scopeFactory,
		logicProvider: logicProvider,
	}
}

// Handle executes the query and returns the summary projection.
func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context, query GetOrderSummaryQuery) (*logic.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := h.scopeFactory.Create(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = scope.Rollback(ctx)
	}()

	carLogic := h.logicProvider.CarLogic(scope)
	orderLogic := h.logicProvider.OrderLogic(scope, carLogic)

	return orderLogic.GetOrderSummary(ctx, query.OrderID())
}
