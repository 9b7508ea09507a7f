package orderitemrepo

import (
	"autoshop/internal/adapters/out/postgres/orderrepo"
	"autoshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderItemDTO maps the order Item to the database table. The order
// association carries the cascade so purging an order removes its lines.
type OrderItemDTO struct {
	ID          int64               `gorm:"primaryKey;autoIncrement"`
	OrderID     int64               `gorm:"not null;index"`
	Order       *orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ProductName string              `gorm:"type:varchar(255);not null"`
	Quantity    int                 `gorm:"not null"`
	UnitPrice   decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	TotalPrice  decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	Deleted     bool                `gorm:"not null;default:false"`
}

// TableName overrides the table name used by GORM.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:          item.ID(),
		OrderID:     item.OrderID(),
		ProductName: item.Product(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice(),
		TotalPrice:  item.TotalPrice(),
		Deleted:     item.IsDeleted(),
	}
}

func toDomain(dto OrderItemDTO) (*order.Item, error) {
	return order.RestoreItem(
		dto.ID,
		dto.OrderID,
		dto.ProductName,
		dto.Quantity,
		dto.UnitPrice,
		dto.Deleted,
	)
}
