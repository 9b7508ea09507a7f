package commands

import (
	"errors"
	"fmt"

	"autoshop/internal/core/application/logic"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to create a new order with its
// line items. Per-item validation (positive quantity and price) is the order
// logic's job; the command checks the request shape only.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID int64
	items  []logic.ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order for the given
// user. The item list must not be empty and every product needs a name.
func NewCreateOrderCommand(userID int64, items []logic.ItemInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []logic.ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []logic.ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, item := range items {
		if item.Product == "" {
			return fmt.Errorf("item %d: product name is required", i)
		}
	}

	c.items = items
	return nil
}
