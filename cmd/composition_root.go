package cmd

import (
	"context"

	"autoshop/internal/adapters/out/postgres"
	"autoshop/internal/core/application/logic"
	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	logicProvider *logic.Provider
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		logicProvider: logic.NewProvider(),
	}
}

func (c *CompositionRoot) CreateAddCarCommandHandler() commands.AddCarCommandHandler {
	var f commands.CarUoWFactory = FuncCarUoWFactory(func(ctx context.Context) (commands.CarUoW, error) {
		return c.uowFactory.Create(ctx)
	})
	return commands.NewAddCarCommandHandler(f, c.logicProvider)
}

func (c *CompositionRoot) CreateTransferCarOwnershipCommandHandler() commands.TransferCarOwnershipCommandHandler {
	var f commands.CarUoWFactory = FuncCarUoWFactory(func(ctx context.Context) (commands.CarUoW, error) {
		return c.uowFactory.Create(ctx)
	})
	return commands.NewTransferCarOwnershipCommandHandler(f, c.logicProvider)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func(ctx context.Context) (commands.OrderUoW, error) {
		return c.uowFactory.Create(ctx)
	})
	return commands.NewCreateOrderCommandHandler(f, c.logicProvider)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func(ctx context.Context) (commands.OrderUoW, error) {
		return c.uowFactory.Create(ctx)
	})
	return commands.NewCancelOrderCommandHandler(f, c.logicProvider)
}

func (c *CompositionRoot) CreatePurgeDeletedOrdersCommandHandler() commands.PurgeDeletedOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func(ctx context.Context) (commands.OrderUoW, error) {
		return c.uowFactory.Create(ctx)
	})
	return commands.NewPurgeDeletedOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	var f queries.SummaryScopeFactory = FuncSummaryScopeFactory(func(ctx context.Context) (queries.SummaryScope, error) {
		return c.uowFactory.Create(ctx)
	})
	return queries.NewGetOrderSummaryQueryHandler(f, c.logicProvider)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserCarsQueryHandler() queries.GetUserCarsQueryHandler {
	return queries.NewGetUserCarsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllUsersQueryHandler() queries.GetAllUsersQueryHandler {
	return queries.NewGetAllUsersQueryHandler(c.gormDB)
}

type FuncCarUoWFactory func(ctx context.Context) (commands.CarUoW, error)

func (f FuncCarUoWFactory) Create(ctx context.Context) (commands.CarUoW, error) {
	return f(ctx)
}

type FuncOrderUoWFactory func(ctx context.Context) (commands.OrderUoW, error)

func (f FuncOrderUoWFactory) Create(ctx context.Context) (commands.OrderUoW, error) {
	return f(ctx)
}

type FuncSummaryScopeFactory func(ctx context.Context) (queries.SummaryScope, error)

func (f FuncSummaryScopeFactory) Create(ctx context.Context) (queries.SummaryScope, error) {
	return f(ctx)
}
