// Package testkit holds shared fixtures for package tests that need a real
// catalog database.
package testkit

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/database"
)

var dbSeq atomic.Int64

// DB opens a private in-memory SQLite database with every catalog table
// created. It is closed when the test ends.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	db := EmptyDB(t)
	require.NoError(t, db.AutoMigrate(models.All()...), "auto-migrate catalog tables")
	return db
}

// EmptyDB opens a private in-memory SQLite database without any tables.
func EmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testkit_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err, "open sqlite")

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Categories inserts categories with fixed IDs.
func Categories(t *testing.T, db *gorm.DB, byID map[uint]string) {
	t.Helper()

	for id, name := range byID {
		require.NoError(t, db.Create(&models.Category{ID: id, Name: name}).Error)
	}
}

// DefaultSource inserts the "default" inventory source.
func DefaultSource(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.Source{
		SourceCode: models.DefaultSourceCode,
		Name:       "Default Source",
		Enabled:    true,
	}).Error)
}

// DefaultAttributeSet inserts the default product attribute set and returns
// its ID.
func DefaultAttributeSet(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	set := models.AttributeSet{EntityType: models.EntityTypeProduct, Name: "Default", IsDefault: true}
	require.NoError(t, db.Create(&set).Error)
	return set.ID
}

// Product inserts a minimal valid product.
func Product(t *testing.T, db *gorm.DB, sku string) models.Product {
	t.Helper()

	p := models.Product{
		SKU:            sku,
		TypeID:         models.TypeSimple,
		AttributeSetID: 1,
		Name:           sku,
		Price:          decimal.NewFromInt(1),
		URLKey:         sku,
		Visibility:     models.VisibilityBoth,
		Status:         models.StatusEnabled,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// Count returns the number of rows of model.
func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
