package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/catalogerr"
	"github.com/shashiranjanraj/catalogpatch/app/models"
)

type AttributeSetRepository struct {
	db *gorm.DB
}

func NewAttributeSetRepository(db *gorm.DB) *AttributeSetRepository {
	return &AttributeSetRepository{db: db}
}

// DefaultAttributeSetID returns the default attribute set of entityType.
func (r *AttributeSetRepository) DefaultAttributeSetID(ctx context.Context, entityType string) (uint, error) {
	const op = "AttributeSetRepository.DefaultAttributeSetID"

	var set models.AttributeSet
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND is_default = ?", entityType, true).
		Order("attribute_set_id").
		First(&set).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%s: default set for %q: %w", op, entityType, catalogerr.ErrNoSuchEntity)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return set.ID, nil
}
