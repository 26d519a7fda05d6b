package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/catalogpatch/app/models"
	"github.com/shashiranjanraj/catalogpatch/pkg/testkit"
)

func TestSourceRepository_EnsureDefaultSource(t *testing.T) {
	ctx := context.Background()
	db := testkit.DB(t)
	repo := NewSourceRepository(db)

	created, err := repo.EnsureDefaultSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSourceCode, created.SourceCode)
	assert.Equal(t, DefaultSourceName, created.Name)
	assert.True(t, created.Enabled)

	again, err := repo.EnsureDefaultSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.SourceCode, again.SourceCode)
	assert.Equal(t, int64(1), testkit.Count(t, db, &models.Source{}))
}

func TestSourceRepository_EnsureSourceKeepsDisabledSource(t *testing.T) {
	ctx := context.Background()
	db := testkit.DB(t)
	require.NoError(t, db.Create(&models.Source{SourceCode: "eu", Name: "EU", Enabled: false}).Error)

	got, err := NewSourceRepository(db).EnsureSource(ctx, "eu", "Europe")
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Equal(t, "EU", got.Name)

	var stored models.Source
	require.NoError(t, db.First(&stored, "source_code = ?", "eu").Error)
	assert.False(t, stored.Enabled)
}
