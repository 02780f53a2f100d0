package badger

import (
	"context"
	"testing"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

func newTestUser(login string) *core.User {
	return &core.User{
		Login: login,
		Name:  "Test " + login,
		Email: login + "@example.com",
	}
}

func TestUserBasics(t *testing.T) {
	listings, users, chats, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chats.Close(); users.Close(); listings.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := users.Add(ctx, newTestUser("alice"))
	if err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}
	if added.Id == "" {
		t.Fatal("Expected non-empty ID")
	}

	retrieved, err := users.Get(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if retrieved.Login != "alice" {
		t.Fatalf("Expected login 'alice', got '%s'", retrieved.Login)
	}
}

func TestUserLoginIndex(t *testing.T) {
	listings, users, chats, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chats.Close(); users.Close(); listings.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := users.Add(ctx, newTestUser("bob"))
	if err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}

	byLogin, err := users.GetByLogin(ctx, "bob")
	if err != nil {
		t.Fatalf("Failed to get by login: %v", err)
	}
	if byLogin.Id != added.Id {
		t.Fatalf("Expected id %s, got %s", added.Id, byLogin.Id)
	}

	if _, err := users.GetByLogin(ctx, "nobody"); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestUserDuplicateLogin(t *testing.T) {
	listings, users, chats, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chats.Close(); users.Close(); listings.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := users.Add(ctx, newTestUser("carol")); err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}

	_, err = users.Add(ctx, newTestUser("carol"))
	if err != storage.ErrDuplicateKey {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestUserUpdateMovesLoginIndex(t *testing.T) {
	listings, users, chats, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chats.Close(); users.Close(); listings.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := users.Add(ctx, newTestUser("dave"))
	if err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}

	added.Login = "david"
	if _, err := users.Update(ctx, added.Id, added); err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}

	if _, err := users.GetByLogin(ctx, "dave"); err != storage.ErrNotFound {
		t.Fatalf("Expected old login to be gone, got %v", err)
	}

	byNew, err := users.GetByLogin(ctx, "david")
	if err != nil {
		t.Fatalf("Failed to get by new login: %v", err)
	}
	if byNew.Id != added.Id {
		t.Fatalf("Expected id %s, got %s", added.Id, byNew.Id)
	}
}

func TestUserUpdateRejectsTakenLogin(t *testing.T) {
	listings, users, chats, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chats.Close(); users.Close(); listings.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := users.Add(ctx, newTestUser("erin")); err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}
	second, err := users.Add(ctx, newTestUser("frank"))
	if err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}

	second.Login = "erin"
	if _, err := users.Update(ctx, second.Id, second); err != storage.ErrDuplicateKey {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestUserDelete(t *testing.T) {
	listings, users, chats, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chats.Close(); users.Close(); listings.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := users.Add(ctx, newTestUser("grace"))
	if err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}

	if err := users.Delete(ctx, added.Id); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	if _, err := users.Get(ctx, added.Id); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	// The login is free again once its owner is gone
	if _, err := users.Add(ctx, newTestUser("grace")); err != nil {
		t.Fatalf("Failed to reuse freed login: %v", err)
	}
}

func TestUserGetByEmail(t *testing.T) {
	listings, users, chats, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { chats.Close(); users.Close(); listings.Close(); backend.Close() }()

	ctx := context.Background()

	heidi := newTestUser("heidi")
	heidi.Email = "heidi@corp.example.com"
	ivan := newTestUser("ivan")
	ivan.Email = "ivan@home.example.org"

	for _, u := range []*core.User{heidi, ivan} {
		if _, err := users.Add(ctx, u); err != nil {
			t.Fatalf("Failed to add user: %v", err)
		}
	}

	matches, err := users.GetByEmail(ctx, "CORP")
	if err != nil {
		t.Fatalf("Failed to get by email: %v", err)
	}
	if len(matches) != 1 || matches[0].Login != "heidi" {
		t.Fatalf("Expected heidi only, got %d results", len(matches))
	}
}
