package file

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

func newTestListing(owner core.ID, shortText string) *core.Listing {
	return &core.Listing{
		ShortText:   shortText,
		Description: "A longer description of " + shortText,
		OwnerId:     owner,
		Tags:        []string{"test"},
		CreatedAt:   time.Now().UTC(),
	}
}

func TestListingBasics(t *testing.T) {
	listings, _, _, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer listings.Close()

	ctx := context.Background()

	added, err := listings.Add(ctx, newTestListing("1", "Mountain bike"))
	if err != nil {
		t.Fatalf("Failed to add listing: %v", err)
	}
	if added.Id != "1" {
		t.Fatalf("Expected sequential id '1', got '%s'", added.Id)
	}

	second, err := listings.Add(ctx, newTestListing("1", "City bike"))
	if err != nil {
		t.Fatalf("Failed to add listing: %v", err)
	}
	if second.Id != "2" {
		t.Fatalf("Expected sequential id '2', got '%s'", second.Id)
	}

	retrieved, err := listings.Get(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get listing: %v", err)
	}
	if retrieved.ShortText != "Mountain bike" {
		t.Fatalf("Expected 'Mountain bike', got '%s'", retrieved.ShortText)
	}
}

func TestListingPersistence(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	backend, err := OpenBackend(dir, FileNames{})
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	listings, err := NewListingRepository(backend)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	added, err := listings.Add(ctx, newTestListing("1", "Persistent sofa"))
	if err != nil {
		t.Fatalf("Failed to add listing: %v", err)
	}
	listings.Close()

	// Reopen against the same directory
	backend2, err := OpenBackend(dir, FileNames{})
	if err != nil {
		t.Fatalf("Failed to reopen backend: %v", err)
	}
	listings2, err := NewListingRepository(backend2)
	if err != nil {
		t.Fatalf("Failed to recreate repository: %v", err)
	}
	defer listings2.Close()

	retrieved, err := listings2.Get(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get listing after reopen: %v", err)
	}
	if retrieved.ShortText != "Persistent sofa" {
		t.Fatalf("Expected 'Persistent sofa', got '%s'", retrieved.ShortText)
	}
}

func TestListingSoftDelete(t *testing.T) {
	listings, _, _, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer listings.Close()

	ctx := context.Background()

	added, err := listings.Add(ctx, newTestListing("3", "Old sofa"))
	if err != nil {
		t.Fatalf("Failed to add listing: %v", err)
	}
	if _, err := listings.Add(ctx, newTestListing("3", "New sofa")); err != nil {
		t.Fatalf("Failed to add listing: %v", err)
	}

	if err := listings.MarkDeleted(ctx, added.Id); err != nil {
		t.Fatalf("Failed to mark deleted: %v", err)
	}

	if _, err := listings.Get(ctx, added.Id); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound after soft delete, got %v", err)
	}

	visible, err := listings.GetByOwner(ctx, "3")
	if err != nil {
		t.Fatalf("Failed to get by owner: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("Expected 1 visible listing, got %d", len(visible))
	}

	history, err := listings.GetAllByOwner(ctx, "3")
	if err != nil {
		t.Fatalf("Failed to get all by owner: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 listings in history, got %d", len(history))
	}
}

func TestListingHardDelete(t *testing.T) {
	listings, _, _, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer listings.Close()

	ctx := context.Background()

	added, err := listings.Add(ctx, newTestListing("4", "Broken chair"))
	if err != nil {
		t.Fatalf("Failed to add listing: %v", err)
	}

	if err := listings.Delete(ctx, added.Id); err != nil {
		t.Fatalf("Failed to delete listing: %v", err)
	}

	history, err := listings.GetAllByOwner(ctx, "4")
	if err != nil {
		t.Fatalf("Failed to get all by owner: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("Expected 0 listings after hard delete, got %d", len(history))
	}

	if err := listings.Delete(ctx, added.Id); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListingQueries(t *testing.T) {
	listings, _, _, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer listings.Close()

	ctx := context.Background()

	first := newTestListing("1", "Red racing bike")
	first.Description = "Lightweight carbon frame"
	first.Tags = []string{"sport", "bike"}
	second := newTestListing("2", "Garden table")
	second.Description = "Solid oak, seats six"
	second.Tags = []string{"furniture"}

	for _, l := range []*core.Listing{first, second} {
		if _, err := listings.Add(ctx, l); err != nil {
			t.Fatalf("Failed to add listing: %v", err)
		}
	}

	byText, err := listings.GetByText(ctx, "bike")
	if err != nil {
		t.Fatalf("Failed to get by text: %v", err)
	}
	if len(byText) != 1 {
		t.Fatalf("Expected 1 listing by text, got %d", len(byText))
	}

	byDesc, err := listings.GetByDescription(ctx, "carbon")
	if err != nil {
		t.Fatalf("Failed to get by description: %v", err)
	}
	if len(byDesc) != 1 {
		t.Fatalf("Expected 1 listing by description, got %d", len(byDesc))
	}

	byTags, err := listings.GetByTags(ctx, []string{"sport", "bike"})
	if err != nil {
		t.Fatalf("Failed to get by tags: %v", err)
	}
	if len(byTags) != 1 {
		t.Fatalf("Expected 1 listing by tags, got %d", len(byTags))
	}

	byOwners, err := listings.GetByOwners(ctx, []core.ID{"1", "2"})
	if err != nil {
		t.Fatalf("Failed to get by owners: %v", err)
	}
	if len(byOwners) != 2 {
		t.Fatalf("Expected 2 listings by owners, got %d", len(byOwners))
	}
}

func TestListingCloneIsolation(t *testing.T) {
	listings, _, _, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer listings.Close()

	ctx := context.Background()

	added, err := listings.Add(ctx, newTestListing("1", "Original"))
	if err != nil {
		t.Fatalf("Failed to add listing: %v", err)
	}

	// Mutating the returned copy must not leak into storage
	added.ShortText = "Mutated"
	added.Tags[0] = "mutated"

	retrieved, err := listings.Get(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get listing: %v", err)
	}
	if retrieved.ShortText != "Original" {
		t.Fatalf("Stored short text was mutated: %s", retrieved.ShortText)
	}
	if retrieved.Tags[0] != "test" {
		t.Fatalf("Stored tags were mutated: %v", retrieved.Tags)
	}
}
