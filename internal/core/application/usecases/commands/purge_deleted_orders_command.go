package commands

import (
	"errors"
	"time"

	"autoshop/internal/pkg/guard"
)

var (
	ErrPurgeDeletedOrdersCommandIsNotConstructed = errors.New(
		"PurgeDeletedOrdersCommand must be created via NewPurgeDeletedOrdersCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeDeletedOrdersCommand represents a storage maintenance request:
// physically remove orders that were soft-deleted longer ago than the
// retention window.
type PurgeDeletedOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeDeletedOrdersCommand creates a purge command with the given
// retention window.
func NewPurgeDeletedOrdersCommand(retention time.Duration) (PurgeDeletedOrdersCommand, error) {
	cmd := PurgeDeletedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeDeletedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeDeletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedOrdersCommandIsNotConstructed)
}

// Retention returns how long soft-deleted orders are kept before purging.
func (c PurgeDeletedOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeDeletedOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}
