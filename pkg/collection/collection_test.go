package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/catalogpatch/pkg/collection"
)

type item struct {
	SKU string
	Qty int
}

func TestMapFilter(t *testing.T) {
	items := []item{{"a", 1}, {"b", 0}, {"c", 5}}

	skus := collection.Map(items, func(i item) string { return i.SKU })
	assert.Equal(t, []string{"a", "b", "c"}, skus)

	inStock := collection.Filter(items, func(i item) bool { return i.Qty > 0 })
	assert.Equal(t, []item{{"a", 1}, {"c", 5}}, inStock)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []uint{11, 10, 12}, collection.Unique([]uint{11, 10, 11, 12, 10}))
	assert.Empty(t, collection.Unique([]uint(nil)))
}

func TestSetKeyByReverse(t *testing.T) {
	set := collection.Set([]string{"default", "eu"})
	assert.True(t, set["default"])
	assert.False(t, set["us"])

	byKey := collection.KeyBy([]item{{"a", 1}, {"a", 2}}, func(i item) string { return i.SKU })
	assert.Equal(t, 2, byKey["a"].Qty)

	assert.Equal(t, []int{3, 2, 1}, collection.Reverse([]int{1, 2, 3}))
}
