package patches

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/models"
)

// AddDefaultAttributeSet makes sure products have a default attribute set.
type AddDefaultAttributeSet struct {
	db *gorm.DB
}

func NewAddDefaultAttributeSet(db *gorm.DB) *AddDefaultAttributeSet {
	return &AddDefaultAttributeSet{db: db}
}

func (p *AddDefaultAttributeSet) Apply(ctx context.Context) error {
	set := models.AttributeSet{EntityType: models.EntityTypeProduct, IsDefault: true}
	return p.db.WithContext(ctx).
		Where(&set).
		Attrs(models.AttributeSet{Name: "Default"}).
		FirstOrCreate(&set).Error
}

func (p *AddDefaultAttributeSet) Dependencies() []string {
	return []string{NameCreateCatalogTables}
}

func (p *AddDefaultAttributeSet) Aliases() []string { return []string{} }
