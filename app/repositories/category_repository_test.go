package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/testkit"
)

func TestCategoryRepository_IDsByNames(t *testing.T) {
	ctx := context.Background()
	db := testkit.DB(t)
	testkit.Categories(t, db, map[uint]string{10: "Men", 11: "Women", 12: "Kids", 13: "men"})
	repo := NewCategoryRepository(db)

	ids, err := repo.IDsByNames(ctx, []string{"Women", "Men"})
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, ids)

	ids, err = repo.IDsByNames(ctx, []string{"Outlet"})
	require.NoError(t, err)
	assert.Equal(t, []uint{}, ids)

	ids, err = repo.IDsByNames(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{}, ids)
}

func TestCategoryRepository_ExistingIDs(t *testing.T) {
	db := testkit.DB(t)
	testkit.Categories(t, db, map[uint]string{10: "Men", 11: "Women"})

	ids, err := NewCategoryRepository(db).ExistingIDs(context.Background(), []uint{11, 99, 10})
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, ids)
}

func TestAttributeSetRepository_DefaultAttributeSetID(t *testing.T) {
	ctx := context.Background()
	db := testkit.DB(t)
	repo := NewAttributeSetRepository(db)

	_, err := repo.DefaultAttributeSetID(ctx, models.EntityTypeProduct)
	require.Error(t, err)

	require.NoError(t, db.Create(&models.AttributeSet{EntityType: models.EntityTypeProduct, Name: "Bags"}).Error)
	want := testkit.DefaultAttributeSet(t, db)

	got, err := repo.DefaultAttributeSetID(ctx, models.EntityTypeProduct)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
