package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
)

func TestGenerationStore_FindActive_None(t *testing.T) {
	store := NewGormGenerationStore(setupDB(t))
	seedGeneration(t, store, "Gen 1", baseTime, false)

	active, err := store.FindActive(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, active)
}

func TestGenerationStore_FindActive_PrefersMostRecent(t *testing.T) {
	store := NewGormGenerationStore(setupDB(t))
	seedGeneration(t, store, "Gen 1", baseTime, true)
	newer := seedGeneration(t, store, "Gen 2", baseTime.AddDate(0, 3, 0), true)

	active, err := store.FindActive(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, newer.ID, active.ID)
}

func TestGenerationStore_Activate(t *testing.T) {
	ctx := context.Background()
	store := NewGormGenerationStore(setupDB(t))
	first := seedGeneration(t, store, "Gen 1", baseTime, true)
	second := seedGeneration(t, store, "Gen 2", baseTime.AddDate(0, 3, 0), false)

	require.NoError(t, store.Activate(ctx, second.ID))

	active, err := store.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	old, err := store.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.IsActive)

	assert.ErrorIs(t, store.Activate(ctx, 999), errcodes.ErrNoRecordFound)
}

func TestGenerationStore_FindByID_Missing(t *testing.T) {
	store := NewGormGenerationStore(setupDB(t))

	g, err := store.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, g)
}

func TestGenerationStore_FindAll(t *testing.T) {
	store := NewGormGenerationStore(setupDB(t))
	seedGeneration(t, store, "Gen 1", baseTime, false)
	seedGeneration(t, store, "Gen 2", baseTime.AddDate(0, 3, 0), true)

	all, err := store.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Gen 2", all[0].Name)
}

func TestGenerationStore_CancelledContext(t *testing.T) {
	store := NewGormGenerationStore(setupDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.FindActive(ctx)
	assert.ErrorIs(t, err, errcodes.ErrContextCancelled)
}
