package appstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaCode_NotSet(t *testing.T) {
	_, err := New().AreaCode()

	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.ErrorIs(t, err, ErrAreaNotSet)
}

func TestSetAreaCode(t *testing.T) {
	s := New()
	require.NoError(t, s.SetAreaCode(AreaFrontend))

	area, err := s.AreaCode()
	require.NoError(t, err)
	assert.Equal(t, AreaFrontend, area)

	assert.ErrorIs(t, s.SetAreaCode(AreaAdminhtml), ErrAreaAlreadySet)
	assert.ErrorIs(t, New().SetAreaCode("backstage"), ErrUnknownArea)
}

func TestEmulateAreaCode_SetsAndRestores(t *testing.T) {
	s := New()
	require.NoError(t, s.SetAreaCode(AreaFrontend))

	var inside, fromCtx string
	err := s.EmulateAreaCode(context.Background(), AreaAdminhtml, func(ctx context.Context) error {
		inside, _ = s.AreaCode()
		fromCtx, _ = FromContext(ctx)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, AreaAdminhtml, inside)
	assert.Equal(t, AreaAdminhtml, fromCtx)

	after, err := s.AreaCode()
	require.NoError(t, err)
	assert.Equal(t, AreaFrontend, after)
}

func TestEmulateAreaCode_RestoresOnError(t *testing.T) {
	s := New()
	boom := errors.New("could not save")

	err := s.EmulateAreaCode(context.Background(), AreaAdminhtml, func(context.Context) error {
		return boom
	})

	assert.Same(t, boom, err)
	_, err = s.AreaCode()
	assert.ErrorIs(t, err, ErrAreaNotSet)
}

func TestEmulateAreaCode_RestoresOnPanic(t *testing.T) {
	s := New()

	assert.Panics(t, func() {
		_ = s.EmulateAreaCode(context.Background(), AreaAdminhtml, func(context.Context) error {
			panic("boom")
		})
	})

	_, err := s.AreaCode()
	assert.ErrorIs(t, err, ErrAreaNotSet)
}

func TestEmulateAreaCode_UnknownArea(t *testing.T) {
	called := false
	err := New().EmulateAreaCode(context.Background(), "backstage", func(context.Context) error {
		called = true
		return nil
	})

	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "backstage", stateErr.Area)
	assert.False(t, called)
}

func TestFromContext_Missing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
