// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database row for an order. The item lines are
// stored as a serialized JSON array in a jsonb column; monetary amounts use
// a numeric column scanned through shopspring decimals.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	CreatedAt    time.Time       `gorm:"index"`
	MobileNumber string          `gorm:"type:varchar(32);index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status       int
	Items        string `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// toDomain converts a database row to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items, err := order.ParseItems(dto.Items)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CreatedAt,
		dto.MobileNumber,
		dto.TotalAmount,
		order.Status(dto.Status),
		items,
	)
}
