package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/models"
)

// DefaultSourceName is the display name of the "default" source.
const DefaultSourceName = "Default Source"

type SourceRepository struct {
	db *gorm.DB
}

func NewSourceRepository(db *gorm.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// EnsureSource returns the source with code, creating it enabled and named
// name when it does not exist. An existing source is returned untouched.
func (r *SourceRepository) EnsureSource(ctx context.Context, code, name string) (*models.Source, error) {
	const op = "SourceRepository.EnsureSource"

	source := models.Source{SourceCode: code}
	err := r.db.WithContext(ctx).
		Where(&source).
		Attrs(models.Source{Name: name, Enabled: true}).
		FirstOrCreate(&source).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &source, nil
}

// EnsureDefaultSource is EnsureSource for the "default" source.
func (r *SourceRepository) EnsureDefaultSource(ctx context.Context) (*models.Source, error) {
	return r.EnsureSource(ctx, models.DefaultSourceCode, DefaultSourceName)
}
