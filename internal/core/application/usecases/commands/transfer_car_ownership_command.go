package commands

import (
	"errors"

	"autoshop/internal/pkg/guard"
)

var (
	ErrTransferCarOwnershipCommandIsNotConstructed = errors.New(
		"TransferCarOwnershipCommand must be created via NewTransferCarOwnershipCommand constructor",
	)
	ErrCarIDIsInvalid      = errors.New("car id must be greater than 0")
	ErrFromUserIDIsInvalid = errors.New("from user id must be greater than 0")
	ErrToUserIDIsInvalid   = errors.New("to user id must be greater than 0")
)

// TransferCarOwnershipCommand represents a request to move a car from its
// current owner to another user.
type TransferCarOwnershipCommand struct { //nolint:recvcheck //using for validation
	carID      int64
	fromUserID int64
	toUserID   int64

	guard guard.ConstructorGuard
}

// NewTransferCarOwnershipCommand creates a command to transfer a car between
// users. All identifiers must be positive.
func NewTransferCarOwnershipCommand(carID, fromUserID, toUserID int64) (TransferCarOwnershipCommand, error) {
	cmd := TransferCarOwnershipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarID(carID),
		cmd.setFromUserID(fromUserID),
		cmd.setToUserID(toUserID),
	); err != nil {
		return TransferCarOwnershipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferCarOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrTransferCarOwnershipCommandIsNotConstructed)
}

// CarID returns the identifier of the car being transferred.
func (c TransferCarOwnershipCommand) CarID() int64 {
	return c.carID
}

// FromUserID returns the identifier of the expected current owner.
func (c TransferCarOwnershipCommand) FromUserID() int64 {
	return c.fromUserID
}

// ToUserID returns the identifier of the new owner.
func (c TransferCarOwnershipCommand) ToUserID() int64 {
	return c.toUserID
}

func (c *TransferCarOwnershipCommand) setCarID(carID int64) error {
	if carID <= 0 {
		return ErrCarIDIsInvalid
	}

	c.carID = carID
	return nil
}

func (c *TransferCarOwnershipCommand) setFromUserID(fromUserID int64) error {
	if fromUserID <= 0 {
		return ErrFromUserIDIsInvalid
	}

	c.fromUserID = fromUserID
	return nil
}

func (c *TransferCarOwnershipCommand) setToUserID(toUserID int64) error {
	if toUserID <= 0 {
		return ErrToUserIDIsInvalid
	}

	c.toUserID = toUserID
	return nil
}
