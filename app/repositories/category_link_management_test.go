package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalogpatch/app/catalogerr"
	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/event"
	"github.com/shashiranjanraj/catalogpatch/pkg/testkit"
)

func newLinks(db *gorm.DB, events *event.Dispatcher) *CategoryLinkManagement {
	return NewCategoryLinkManagement(db, NewProductRepository(db, events), NewCategoryRepository(db), events)
}

func TestAssignProductToCategories_ReplacesLinkSet(t *testing.T) {
	ctx := context.Background()
	db := testkit.DB(t)
	testkit.Categories(t, db, map[uint]string{10: "Men", 11: "Women", 12: "Kids"})
	testkit.Product(t, db, "sample-product")

	events := event.New()
	var fired []event.CategoryLinksPayload
	events.Listen(event.CategoryLinksAssigned, func(_ context.Context, payload any) {
		fired = append(fired, payload.(event.CategoryLinksPayload))
	})
	links := newLinks(db, events)

	require.NoError(t, links.AssignProductToCategories(ctx, "sample-product", []uint{12, 10, 12}))
	ids, err := links.CategoryIDs(ctx, "sample-product")
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 12}, ids)

	require.NoError(t, links.AssignProductToCategories(ctx, "sample-product", []uint{11, 10}))
	ids, err = links.CategoryIDs(ctx, "sample-product")
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, ids)

	require.Len(t, fired, 2)
	assert.Equal(t, []uint{10, 11}, fired[1].CategoryIDs)
}

func TestAssignProductToCategories_EmptyClearsLinks(t *testing.T) {
	ctx := context.Background()
	db := testkit.DB(t)
	testkit.Categories(t, db, map[uint]string{10: "Men"})
	testkit.Product(t, db, "sample-product")
	links := newLinks(db, nil)

	require.NoError(t, links.AssignProductToCategories(ctx, "sample-product", []uint{10}))
	require.NoError(t, links.AssignProductToCategories(ctx, "sample-product", []uint{}))

	ids, err := links.CategoryIDs(ctx, "sample-product")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, testkit.Count(t, db, &models.CategoryProduct{}))
}

func TestAssignProductToCategories_UnknownProduct(t *testing.T) {
	err := newLinks(testkit.DB(t), nil).
		AssignProductToCategories(context.Background(), "ghost", nil)

	var inputErr *catalogerr.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "sku", inputErr.Field)
	assert.ErrorIs(t, err, catalogerr.ErrNoSuchEntity)
}

func TestAssignProductToCategories_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	db := testkit.DB(t)
	testkit.Categories(t, db, map[uint]string{10: "Men"})
	testkit.Product(t, db, "sample-product")

	err := newLinks(db, nil).AssignProductToCategories(ctx, "sample-product", []uint{10, 77})

	var inputErr *catalogerr.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "category_ids", inputErr.Field)
	assert.Equal(t, "[77]", inputErr.Reason)
	assert.Zero(t, testkit.Count(t, db, &models.CategoryProduct{}))
}
