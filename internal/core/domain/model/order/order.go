package order

import (
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order. It is created in Pending status with a
// unique order number and a total amount precomputed from its line items.
//
// Order follows these invariants:
//   - Must reference an existing user
//   - Must carry a valid order number
//   - Total amount is an exact decimal, strictly positive
//   - Status transitions follow the rules encoded in Status
//   - The identifier is assigned by storage on insert
//
// The soft-delete flag is carried for persistence round-trips; no operation
// in this core sets it.
type Order struct {
	id          int64
	userID      int64
	number      kernel.OrderNumber
	orderDate   time.Time
	status      Status
	totalAmount decimal.Decimal
	deleted     bool

	isConstructed bool
}

// NewOrder creates an Order in Pending status. The identifier stays zero
// until the repository persists the order; the transaction scope's flush is
// what makes the generated identifier available mid-operation.
func NewOrder(userID int64, number kernel.OrderNumber, orderDate time.Time, totalAmount decimal.Decimal) (*Order, error) {
	o := &Order{
		status:        Pending,
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setNumber(number),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence, including its status
// and soft-delete flag.
func RestoreOrder(
	id, userID int64,
	number kernel.OrderNumber,
	orderDate time.Time,
	status Status,
	totalAmount decimal.Decimal,
	deleted bool,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(userID, number, orderDate, totalAmount)
	if err != nil {
		return nil, err
	}
	if err = o.AssignID(id); err != nil {
		return nil, err
	}

	o.status = status
	o.deleted = deleted
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier, or 0 if the order has not been persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() int64 {
	return o.userID
}

// Number returns the order's unique order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the exact decimal sum of the order's line totals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// IsDeleted reports whether the order is soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// BelongsTo reports whether the order is owned by the given user.
func (o *Order) BelongsTo(userID int64) bool {
	return o.userID == userID
}

// Cancel transitions the order to Cancelled. Allowed only from Pending or
// Confirmed; any other status yields a conflict error and leaves the order
// unchanged. The mutation is in-memory; it reaches storage when the
// enclosing transaction scope flushes or commits.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignID records the storage-generated identifier after insert.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("order already has identifier %d", o.id))
	}

	o.id = id
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a positive identifier", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if !totalAmount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s is not greater than 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}
