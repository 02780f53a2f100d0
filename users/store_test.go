package users

import (
	"context"
	"testing"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
	"github.com/poiesic/adboard/storage/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	_, repo, _, err := file.NewMemoryRepositories()
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

func TestCreate_HashesCredential(t *testing.T) {
	store := newTestStore(t, WithHashRounds(1))
	ctx := context.Background()

	created, err := store.Create(ctx, &core.User{Login: "ann", Name: "Ann"}, "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, created.Salt)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotContains(t, created.PasswordHash, "secret")

	// The stored record carries the derived material, not the plaintext
	stored, err := store.GetByLogin(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, created.PasswordHash, stored.PasswordHash)
	assert.Equal(t, created.Salt, stored.Salt)
}

func TestCreate_RejectsEmptyPassword(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, &core.User{Login: "bob"}, "")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = store.Create(ctx, &core.User{Login: "bob"}, "   ")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestCreate_RejectsTakenLogin(t *testing.T) {
	store := newTestStore(t, WithHashRounds(1))
	ctx := context.Background()

	_, err := store.Create(ctx, &core.User{Login: "ann"}, "secret")
	require.NoError(t, err)

	_, err = store.Create(ctx, &core.User{Login: "ann"}, "other")
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestVerifyCredential(t *testing.T) {
	store := newTestStore(t, WithHashRounds(1))
	ctx := context.Background()

	_, err := store.Create(ctx, &core.User{Login: "ann"}, "secret")
	require.NoError(t, err)

	ok, err := store.VerifyCredential(ctx, "ann", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.VerifyCredential(ctx, "ann", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	// Unknown logins fail closed without error
	ok, err = store.VerifyCredential(ctx, "nobody", "secret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate_KeepsCredentialMaterial(t *testing.T) {
	store := newTestStore(t, WithHashRounds(1))
	ctx := context.Background()

	created, err := store.Create(ctx, &core.User{Login: "carol", Name: "Carol"}, "secret")
	require.NoError(t, err)

	// Hostile input: the update must not overwrite stored hash/salt
	updated, err := store.Update(ctx, created.Id, &core.User{
		Login:        "carol",
		Name:         "Caroline",
		PasswordHash: "forged",
		Salt:         "forged",
	})
	require.NoError(t, err)

	assert.Equal(t, "Caroline", updated.Name)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
	assert.Equal(t, created.Salt, updated.Salt)

	// The credential still verifies after the profile change
	ok, err := store.VerifyCredential(ctx, "carol", "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdate_RejectsTakenLogin(t *testing.T) {
	store := newTestStore(t, WithHashRounds(1))
	ctx := context.Background()

	_, err := store.Create(ctx, &core.User{Login: "dave"}, "secret")
	require.NoError(t, err)
	second, err := store.Create(ctx, &core.User{Login: "erin"}, "secret")
	require.NoError(t, err)

	_, err = store.Update(ctx, second.Id, &core.User{Login: "dave"})
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestGetLogin(t *testing.T) {
	store := newTestStore(t, WithHashRounds(1))
	ctx := context.Background()

	created, err := store.Create(ctx, &core.User{Login: "frank", Name: "Frank"}, "secret")
	require.NoError(t, err)

	login, err := store.GetLogin(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "frank", login)

	_, err = store.GetLogin(ctx, "999")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t, WithHashRounds(1))
	ctx := context.Background()

	created, err := store.Create(ctx, &core.User{Login: "grace"}, "secret")
	require.NoError(t, err)

	ok, err := store.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.False(t, ok)
}
