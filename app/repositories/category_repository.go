package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/collection"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// IDsByNames returns the IDs of categories whose name equals one of names,
// ascending. Matching is case-sensitive on every driver, including MySQL
// whose default collation is not.
func (r *CategoryRepository) IDsByNames(ctx context.Context, names []string) ([]uint, error) {
	const op = "CategoryRepository.IDsByNames"

	if len(names) == 0 {
		return []uint{}, nil
	}

	var categories []models.Category
	err := r.db.WithContext(ctx).
		Select("entity_id", "name").
		Where("name IN ?", names).
		Order("entity_id").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wanted := collection.Set(names)
	exact := collection.Filter(categories, func(c models.Category) bool { return wanted[c.Name] })

	return collection.Map(exact, func(c models.Category) uint { return c.ID }), nil
}

// ExistingIDs returns the subset of ids that belong to a category.
func (r *CategoryRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	const op = "CategoryRepository.ExistingIDs"

	if len(ids) == 0 {
		return []uint{}, nil
	}

	var found []uint
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("entity_id IN ?", ids).
		Order("entity_id").
		Pluck("entity_id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return found, nil
}
