package repositories

import (
	"context"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/catalogpatch/app/catalogerr"
	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/collection"
	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
)

// CategoryLinkManagement maintains the category assignments of products.
type CategoryLinkManagement struct {
	db         *gorm.DB
	products   *ProductRepository
	categories *CategoryRepository
	events     *event.Dispatcher
}

func NewCategoryLinkManagement(
	db *gorm.DB,
	products *ProductRepository,
	categories *CategoryRepository,
	events *event.Dispatcher,
) *CategoryLinkManagement {
	return &CategoryLinkManagement{
		db:         db,
		products:   products,
		categories: categories,
		events:     events,
	}
}

// AssignProductToCategories makes categoryIDs the exact category set of the
// product identified by sku. Links outside the set are removed, existing
// ones are kept and missing ones are inserted. An empty set clears every
// link of the product.
func (m *CategoryLinkManagement) AssignProductToCategories(ctx context.Context, sku string, categoryIDs []uint) error {
	const op = "CategoryLinkManagement.AssignProductToCategories"

	productID, err := m.products.IDBySKU(ctx, sku)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if productID == 0 {
		return fmt.Errorf("%s: %w", op, &catalogerr.InputError{Field: "sku", Reason: sku, Err: catalogerr.ErrNoSuchEntity})
	}

	ids := collection.Unique(categoryIDs)
	slices.Sort(ids)

	found, err := m.categories.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(found) != len(ids) {
		known := collection.Set(found)
		missing := collection.Filter(ids, func(id uint) bool { return !known[id] })
		return fmt.Errorf("%s: %w", op, &catalogerr.InputError{Field: "category_ids", Reason: fmt.Sprint(missing), Err: catalogerr.ErrNoSuchEntity})
	}

	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Where("product_id = ?", productID)
		if len(ids) > 0 {
			stale = stale.Where("category_id NOT IN ?", ids)
		}
		if err := stale.Delete(&models.CategoryProduct{}).Error; err != nil {
			return err
		}

		if len(ids) == 0 {
			return nil
		}

		links := collection.Map(ids, func(id uint) models.CategoryProduct {
			return models.CategoryProduct{CategoryID: id, ProductID: productID}
		})
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).Create(&links).Error
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, &catalogerr.SaveError{Entity: "category links", Err: err})
	}

	logger.WithCtx(ctx).Info("category links assigned", "sku", sku, "category_ids", ids)
	m.events.Fire(ctx, event.CategoryLinksAssigned, event.CategoryLinksPayload{SKU: sku, CategoryIDs: ids})

	return nil
}

// CategoryIDs returns the categories sku is linked to, ascending.
func (m *CategoryLinkManagement) CategoryIDs(ctx context.Context, sku string) ([]uint, error) {
	const op = "CategoryLinkManagement.CategoryIDs"

	var ids []uint
	err := m.db.WithContext(ctx).
		Model(&models.CategoryProduct{}).
		Joins("JOIN catalog_product_entity p ON p.entity_id = catalog_category_product.product_id").
		Where("p.sku = ?", sku).
		Order("catalog_category_product.category_id").
		Pluck("catalog_category_product.category_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}
