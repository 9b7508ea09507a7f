package order

import (
	"errors"
	"fmt"

	"autoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a single order line: a product with a quantity, its unit price and
// the derived line total. Items reference their order by identifier, which is
// why order creation flushes the scope before line items are written.
type Item struct {
	id         int64
	orderID    int64
	product    string
	quantity   int
	unitPrice  decimal.Decimal
	totalPrice decimal.Decimal
	deleted    bool

	isConstructed bool
}

// NewItem creates an order line for the given order identifier.
// Quantity and unit price must be strictly positive; the total price is
// computed here, exactly, as quantity × unit price.
func NewItem(orderID int64, product string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	it := &Item{isConstructed: true}

	if err := errors.Join(
		it.setOrderID(orderID),
		it.setProduct(product),
		it.setQuantity(quantity),
		it.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	it.totalPrice = it.unitPrice.Mul(decimal.NewFromInt(int64(it.quantity)))
	return it, nil
}

// RestoreItem rehydrates an Item from persistence.
func RestoreItem(id, orderID int64, product string, quantity int, unitPrice decimal.Decimal, deleted bool) (*Item, error) {
	it, err := NewItem(orderID, product, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	if err = it.AssignID(id); err != nil {
		return nil, err
	}

	it.deleted = deleted
	return it, nil
}

// Validate ensures the Item instance was properly constructed.
func (it *Item) Validate() error {
	if it == nil || !it.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier, or 0 if the item has not been persisted yet.
func (it *Item) ID() int64 {
	return it.id
}

// OrderID returns the identifier of the owning order.
func (it *Item) OrderID() int64 {
	return it.orderID
}

// Product returns the product name.
func (it *Item) Product() string {
	return it.product
}

// Quantity returns the ordered quantity.
func (it *Item) Quantity() int {
	return it.quantity
}

// UnitPrice returns the price of a single unit.
func (it *Item) UnitPrice() decimal.Decimal {
	return it.unitPrice
}

// TotalPrice returns quantity × unit price, computed with exact decimal arithmetic.
func (it *Item) TotalPrice() decimal.Decimal {
	return it.totalPrice
}

// IsDeleted reports whether the item is soft-deleted.
func (it *Item) IsDeleted() bool {
	return it.deleted
}

// AssignID records the storage-generated identifier after insert.
func (it *Item) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderItemId",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if it.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderItemId",
			fmt.Errorf("item already has identifier %d", it.id))
	}

	it.id = id
	return nil
}

func (it *Item) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive identifier", orderID))
	}
	it.orderID = orderID
	return nil
}

func (it *Item) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	it.product = product
	return nil
}

func (it *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	it.quantity = quantity
	return nil
}

func (it *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	it.unitPrice = unitPrice
	return nil
}
