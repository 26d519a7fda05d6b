package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/catalogpatch/app/catalogerr"
	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
	"github.com/shashiranjanraj/catalogpatch/pkg/validate"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db     *gorm.DB
	events *event.Dispatcher
}

func NewProductRepository(db *gorm.DB, events *event.Dispatcher) *ProductRepository {
	return &ProductRepository{db: db, events: events}
}

// IDBySKU returns the product ID for sku, or 0 when no product has it.
func (r *ProductRepository) IDBySKU(ctx context.Context, sku string) (uint, error) {
	const op = "ProductRepository.IDBySKU"

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("sku = ?", sku).
		Limit(1).
		Pluck("entity_id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

// GetBySKU loads a product with its stock item.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	const op = "ProductRepository.GetBySKU"

	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("StockItem").
		Where("sku = ?", sku).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: product %q: %w", op, sku, catalogerr.ErrNoSuchEntity)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &product, nil
}

// Save creates or updates p together with its stock item and returns the
// persisted product.
//
// Enum fields outside their range fail with *catalogerr.InputError, rule
// violations with *catalogerr.ValidationError and database failures with
// *catalogerr.SaveError.
func (r *ProductRepository) Save(ctx context.Context, p *models.Product) (*models.Product, error) {
	const op = "ProductRepository.Save"

	if err := r.validate(p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created := p.ID == 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}

		if p.StockItem == nil {
			return nil
		}

		p.StockItem.ProductID = p.ID
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"use_config_manage_stock", "is_qty_decimal", "is_in_stock"}),
		}).Create(p.StockItem).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &catalogerr.SaveError{Entity: "product", Err: err})
	}

	logger.WithCtx(ctx).Info("product saved", "sku", p.SKU, "id", p.ID, "created", created)
	r.events.Fire(ctx, event.ProductSaved, event.ProductPayload{ID: p.ID, SKU: p.SKU, Created: created})

	return p, nil
}

func (r *ProductRepository) validate(p *models.Product) error {
	if !p.Visibility.IsValid() {
		return &catalogerr.InputError{Field: "visibility", Reason: fmt.Sprint(p.Visibility)}
	}
	if !p.Status.IsValid() {
		return &catalogerr.InputError{Field: "status", Reason: fmt.Sprint(p.Status)}
	}

	if errs := validate.Struct(p); validate.HasErrors(errs) {
		return &catalogerr.ValidationError{Entity: "product", Fields: errs}
	}
	return nil
}
