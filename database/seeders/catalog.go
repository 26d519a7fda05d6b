package seeders

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/app/repositories"
)

func init() {
	Register("inventory_sources", SeedInventorySources)
	Register("categories", SeedCategories)
}

// DemoCategories are the storefront categories of a fresh installation.
var DemoCategories = []string{"Men", "Women", "Kids"}

// SeedInventorySources creates the default inventory source.
func SeedInventorySources(ctx context.Context, db *gorm.DB) error {
	_, err := repositories.NewSourceRepository(db).EnsureDefaultSource(ctx)
	return err
}

// SeedCategories creates DemoCategories, skipping names that already exist.
func SeedCategories(ctx context.Context, db *gorm.DB) error {
	for _, name := range DemoCategories {
		category := models.Category{Name: name}
		if err := db.WithContext(ctx).Where(&category).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
