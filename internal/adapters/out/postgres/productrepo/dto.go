// Package productrepo provides data transfer objects and mapping functions
// for product persistence, including the kitchen-prep variant rows that hang
// off a product.
package productrepo

import (
	"storefront/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database row for a product. The four parallel
// price/packing slot pairs are flat columns, matching the catalog schema the
// storefront and kitchen services share.
type ProductDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ItemName      string `gorm:"type:varchar(255);not null"`
	Category      string `gorm:"type:varchar(128);index"`
	Description   string
	ImageSrc      string
	Price01       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Packing01     string          `gorm:"type:varchar(128)"`
	Price02       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Packing02     string          `gorm:"type:varchar(128)"`
	Price03       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Packing03     string          `gorm:"type:varchar(128)"`
	Price04       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Packing04     string          `gorm:"type:varchar(128)"`
	ShelfLifeDays int
	LeadTimeDays  int
	IsEnabled     bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// KitchenVariantDTO represents a kitchen-prep variant row that references a
// product. The admin backend never edits these directly; they are removed
// together with their product on delete.
type KitchenVariantDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64 `gorm:"index;not null"`
	Packing   string
	PrepNotes string
}

// TableName specifies the database table name for kitchen-prep variants.
func (KitchenVariantDTO) TableName() string {
	return "kitchen_variants"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	slots := aggregate.Slots()

	return ProductDTO{
		ID:            aggregate.ID(),
		ItemName:      aggregate.ItemName(),
		Category:      aggregate.Category(),
		Description:   aggregate.Description(),
		ImageSrc:      aggregate.ImageSrc(),
		Price01:       slots[0].Price,
		Packing01:     slots[0].Packing,
		Price02:       slots[1].Price,
		Packing02:     slots[1].Packing,
		Price03:       slots[2].Price,
		Packing03:     slots[2].Packing,
		Price04:       slots[3].Price,
		Packing04:     slots[3].Packing,
		ShelfLifeDays: aggregate.ShelfLifeDays(),
		LeadTimeDays:  aggregate.LeadTimeDays(),
		IsEnabled:     aggregate.IsEnabled(),
	}
}

// toDomain converts a database row to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	slots := [product.SlotCount]product.Slot{
		{Price: dto.Price01, Packing: dto.Packing01},
		{Price: dto.Price02, Packing: dto.Packing02},
		{Price: dto.Price03, Packing: dto.Packing03},
		{Price: dto.Price04, Packing: dto.Packing04},
	}

	return product.RestoreProduct(
		dto.ID,
		dto.ItemName,
		dto.Category,
		dto.Description,
		dto.ImageSrc,
		slots,
		dto.ShelfLifeDays,
		dto.LeadTimeDays,
		dto.IsEnabled,
	)
}
