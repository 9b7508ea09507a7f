package orderrepo

import (
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO maps the Order aggregate to the database table. The order number
// carries the unique index that backstops the logic-level uniqueness check,
// and the soft-delete flag stays in the row when an order is logically removed.
type OrderDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      int64           `gorm:"not null;index"`
	OrderNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	OrderDate   time.Time       `gorm:"not null"`
	Status      string          `gorm:"type:varchar(20);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Deleted     bool            `gorm:"not null;default:false"`
}

// TableName overrides the table name used by GORM.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID(),
		UserID:      aggregate.UserID(),
		OrderNumber: aggregate.Number().String(),
		OrderDate:   aggregate.OrderDate(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		Deleted:     aggregate.IsDeleted(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		number,
		dto.OrderDate,
		status,
		dto.TotalAmount,
		dto.Deleted,
	)
}
