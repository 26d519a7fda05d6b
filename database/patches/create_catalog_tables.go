package patches

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/collection"
)

// CreateCatalogTables creates the catalog and inventory tables.
type CreateCatalogTables struct {
	db *gorm.DB
}

func NewCreateCatalogTables(db *gorm.DB) *CreateCatalogTables {
	return &CreateCatalogTables{db: db}
}

func (p *CreateCatalogTables) Apply(ctx context.Context) error {
	return p.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// Revert drops the tables in reverse creation order.
func (p *CreateCatalogTables) Revert(ctx context.Context) error {
	return p.db.WithContext(ctx).Migrator().DropTable(collection.Reverse(models.All())...)
}

func (p *CreateCatalogTables) Dependencies() []string { return []string{} }

func (p *CreateCatalogTables) Aliases() []string { return []string{} }
