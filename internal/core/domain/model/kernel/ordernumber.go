package kernel

import (
	"fmt"
	"strings"
	"time"

	"autoshop/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	orderNumberPrefix    = "ORD"
	orderNumberDateLen   = 8
	orderNumberSuffixLen = 8
)

// ErrOrderNumberIsNotConstructed indicates an OrderNumber was not created through
// NewOrderNumber or OrderNumberFromString. Zero-value order numbers are invalid.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is a value object representing the human-readable unique number
// of an order. Its shape is fixed: the "ORD" prefix, the creation date as
// yyyymmdd, and a random 8-character uppercase hexadecimal suffix, joined with
// dashes (for example "ORD-20260831-3F2A9B1C").
//
// OrderNumber is immutable. Uniqueness is probabilistic at generation time;
// the storage layer carries a unique index as the authoritative backstop, and
// the order logic checks for collisions before inserting. A collision is a
// conflict failure, never retried here.
type OrderNumber struct {
	value string
}

// NewOrderNumber generates a fresh order number for the given moment in time.
// The suffix is drawn from a random UUID, uppercased, so two generations at
// the same instant still differ with overwhelming probability.
func NewOrderNumber(at time.Time) OrderNumber {
	suffix := strings.ToUpper(uuid.New().String()[:orderNumberSuffixLen])
	return OrderNumber{
		value: fmt.Sprintf("%s-%s-%s", orderNumberPrefix, at.UTC().Format("20060102"), suffix),
	}
}

// OrderNumberFromString parses and validates an order number previously
// produced by NewOrderNumber, typically when rehydrating from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 ||
		parts[0] != orderNumberPrefix ||
		len(parts[1]) != orderNumberDateLen ||
		len(parts[2]) != orderNumberSuffixLen {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match the ORD-yyyymmdd-XXXXXXXX shape", s))
	}

	if _, err := time.Parse("20060102", parts[1]); err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}

	return OrderNumber{value: s}, nil
}

// String returns the textual representation, e.g. "ORD-20260831-3F2A9B1C".
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks the order number was properly constructed.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
