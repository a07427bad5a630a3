package productrepo

import (
	"context"
	"errors"
	"strconv"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product to the database and returns its generated identity.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Update saves an existing product to the database. Select("*") forces
// zero-valued columns (cleared prices, disabled flag) to be written too.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a product by its identity.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a product and its dependent kitchen-prep variant rows.
// The caller is expected to run this within a unit-of-work transaction so
// both deletes land or neither does.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&KitchenVariantDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProductDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", strconv.FormatInt(id, 10))
	}

	return nil
}

// SetAllEnabled sets every product's enabled flag and returns the number of
// rows affected.
func (r *GormProductRepository) SetAllEnabled(ctx context.Context, enabled bool) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("1 = 1").
		Update("is_enabled", enabled)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
