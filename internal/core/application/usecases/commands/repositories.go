// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, scope management and
// delegation to the business logic units.
package commands

import (
	"context"

	"autoshop/internal/core/ports"
)

// Unit of work interfaces provide transaction scope management for command
// handlers. Each handler depends only on the slice of the scope it needs.
type (
	// ScopeManager handles the transaction scope lifecycle. The scope is
	// already begun when the factory hands it out; Flush pushes pending
	// mutations without committing, and exactly one of Commit/Rollback is
	// effective per scope.
	ScopeManager interface {
		Flush(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoProvider provides access to the user repository within a scope.
	UserRepoProvider interface {
		UserRepository() ports.UserRepository
	}

	// CarRepoProvider provides access to the car repository within a scope.
	CarRepoProvider interface {
		CarRepository() ports.CarRepository
	}

	// OrderRepoProvider provides access to the order repository within a scope.
	OrderRepoProvider interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderItemRepoProvider provides access to the order item repository
	// within a scope.
	OrderItemRepoProvider interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	// CarUoW manages scopes for garage operations.
	CarUoW interface {
		ScopeManager
		UserRepoProvider
		CarRepoProvider
	}

	// CarUoWFactory creates scopes for garage operations.
	CarUoWFactory interface {
		Create(ctx context.Context) (CarUoW, error)
	}

	// OrderUoW manages scopes for order operations. It exposes the car
	// repository too: order handlers build a CarLogic over the same scope
	// and hand it to OrderLogic explicitly.
	OrderUoW interface {
		ScopeManager
		UserRepoProvider
		CarRepoProvider
		OrderRepoProvider
		OrderItemRepoProvider
	}

	// OrderUoWFactory creates scopes for order operations.
	OrderUoWFactory interface {
		Create(ctx context.Context) (OrderUoW, error)
	}
)
