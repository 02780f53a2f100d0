package listings

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
	"github.com/poiesic/adboard/storage/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	repo, _, _, err := file.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	store, err := NewStore(repo, opts...)
	require.NoError(t, err)
	return store
}

func TestNewStore_RequiresRepository(t *testing.T) {
	_, err := NewStore(nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}

func TestCreate_StampsDefaults(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(func() time.Time { return fixed }))

	ctx := context.Background()

	// Hostile input: caller supplies values the store must override
	stale := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := store.Create(ctx, &core.Listing{
		Id:        "forged",
		ShortText: "Bike",
		OwnerId:   "1",
		CreatedAt: stale,
		UpdatedAt: &stale,
		IsDeleted: true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, core.ID("forged"), created.Id)
	assert.Equal(t, fixed, created.CreatedAt)
	assert.Nil(t, created.UpdatedAt)
	assert.False(t, created.IsDeleted)
}

func TestCreate_Validation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, &core.Listing{OwnerId: "1"})
	assert.ErrorIs(t, err, core.ErrInvalidListing)

	_, err = store.Create(ctx, &core.Listing{ShortText: "Bike"})
	assert.ErrorIs(t, err, core.ErrInvalidListing)
}

func TestUpdate_PreservesCreatedAtAndStampsUpdatedAt(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	current := created
	store := newTestStore(t, WithClock(func() time.Time { return current }))

	ctx := context.Background()

	first, err := store.Create(ctx, &core.Listing{ShortText: "Bike", OwnerId: "1"})
	require.NoError(t, err)

	current = updated
	second, err := store.Update(ctx, first.Id, &core.Listing{
		ShortText: "Bike, barely used",
		OwnerId:   "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bike, barely used", second.ShortText)
	assert.Equal(t, created, second.CreatedAt)
	require.NotNil(t, second.UpdatedAt)
	assert.Equal(t, updated, *second.UpdatedAt)
}

func TestUpdate_Missing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "999", &core.Listing{ShortText: "Bike", OwnerId: "1"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSearch_UnionAndDedupe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bike, err := store.Create(ctx, &core.Listing{
		ShortText:   "Red bike",
		Description: "Fast road bike",
		OwnerId:     "1",
		Tags:        []string{"sport"},
	})
	require.NoError(t, err)

	_, err = store.Create(ctx, &core.Listing{
		ShortText:   "Garden table",
		Description: "Solid oak",
		OwnerId:     "2",
		Tags:        []string{"furniture"},
	})
	require.NoError(t, err)

	// The bike matches text, description, tags, and owner; it must still
	// appear exactly once.
	results, err := store.Search(ctx, &core.SearchCriteria{
		Text:        "bike",
		Description: "bike",
		Tags:        []string{"sport"},
		OwnerId:     "1",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bike.Id, results[0].Id)

	// Disjoint criteria union both listings
	results, err = store.Search(ctx, &core.SearchCriteria{
		Text:     "bike",
		OwnerIds: []core.ID{"2"},
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_EmptyCriteria(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, &core.Listing{ShortText: "Bike", OwnerId: "1"})
	require.NoError(t, err)

	results, err := store.Search(ctx, &core.SearchCriteria{})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = store.Search(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSoftDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, &core.Listing{ShortText: "Old sofa", OwnerId: "3"})
	require.NoError(t, err)

	ok, err := store.SoftDelete(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.Get(ctx, created.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Still visible in the owner's history
	history, err := store.GetAllByOwner(ctx, "3")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].IsDeleted)

	// Missing ids are a false flag, not an error
	ok, err = store.SoftDelete(ctx, "999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHardDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, &core.Listing{ShortText: "Broken chair", OwnerId: "4"})
	require.NoError(t, err)

	ok, err := store.HardDelete(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, ok)

	history, err := store.GetAllByOwner(ctx, "4")
	require.NoError(t, err)
	assert.Empty(t, history)

	ok, err = store.HardDelete(ctx, created.Id)
	require.NoError(t, err)
	assert.False(t, ok)
}
