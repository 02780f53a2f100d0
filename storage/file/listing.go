package file

import (
	"context"
	"sync"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// ListingRepository implements storage.ListingRepository on a JSON-array
// collection file. Every mutation rewrites the whole snapshot.
type ListingRepository struct {
	mu    sync.Mutex
	path  string
	items []*core.Listing

	backend *Backend
}

var _ storage.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository loads the listings collection from the backend's
// data directory.
func NewListingRepository(backend *Backend) (*ListingRepository, error) {
	path := backend.path(backend.files.Listings)
	return &ListingRepository{
		path:    path,
		items:   loadCollection[*core.Listing](path, backend.logger),
		backend: backend,
	}, nil
}

// Close is a no-op: the collection is rewritten on every mutation.
func (r *ListingRepository) Close() error {
	return nil
}

func (r *ListingRepository) dump() error {
	return dumpCollection(r.path, r.items, r.backend.logger)
}

// filter returns copies of the listings accepted by keep.
func (r *ListingRepository) filter(keep func(*core.Listing) bool) []*core.Listing {
	var result []*core.Listing
	for _, l := range r.items {
		if keep(l) {
			result = append(result, cloneListing(l))
		}
	}
	return result
}

// indexOf finds a listing's position by id, soft-deleted included.
func (r *ListingRepository) indexOf(id core.ID) int {
	for i, l := range r.items {
		if l.Id == id {
			return i
		}
	}
	return -1
}

// GetAll returns all listings that are not soft-deleted.
func (r *ListingRepository) GetAll(ctx context.Context) ([]*core.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(l *core.Listing) bool { return !l.IsDeleted }), nil
}

// Get retrieves a listing by id, excluding soft-deleted ones.
func (r *ListingRepository) Get(ctx context.Context, id core.ID) (*core.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx == -1 || r.items[idx].IsDeleted {
		return nil, storage.ErrNotFound
	}
	return cloneListing(r.items[idx]), nil
}

// GetByText returns listings whose ShortText matches any token of text.
func (r *ListingRepository) GetByText(ctx context.Context, text string) ([]*core.Listing, error) {
	m := storage.NewTokenMatcher(text)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(l *core.Listing) bool {
		return !l.IsDeleted && m.Match(l.ShortText)
	}), nil
}

// GetByDescription returns listings whose Description matches any token of text.
func (r *ListingRepository) GetByDescription(ctx context.Context, text string) ([]*core.Listing, error) {
	m := storage.NewTokenMatcher(text)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(l *core.Listing) bool {
		return !l.IsDeleted && m.Match(l.Description)
	}), nil
}

// GetByTags returns listings carrying every one of the given tags.
func (r *ListingRepository) GetByTags(ctx context.Context, tags []string) ([]*core.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(l *core.Listing) bool {
		return !l.IsDeleted && storage.HasAllTags(l.Tags, tags)
	}), nil
}

// GetByOwner returns the owner's listings, excluding soft-deleted ones.
func (r *ListingRepository) GetByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(l *core.Listing) bool {
		return !l.IsDeleted && l.OwnerId == owner
	}), nil
}

// GetByOwners returns listings owned by any of the given users.
func (r *ListingRepository) GetByOwners(ctx context.Context, owners []core.ID) ([]*core.Listing, error) {
	set := make(map[core.ID]bool, len(owners))
	for _, o := range owners {
		set[o] = true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(l *core.Listing) bool {
		return !l.IsDeleted && set[l.OwnerId]
	}), nil
}

// GetAllByOwner returns the owner's listings including soft-deleted ones.
func (r *ListingRepository) GetAllByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(l *core.Listing) bool { return l.OwnerId == owner }), nil
}

// Add inserts a listing under a freshly allocated sequential id.
func (r *ListingRepository) Add(ctx context.Context, listing *core.Listing) (*core.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneListing(listing)
	stored.Id = nextSequentialID(len(r.items), func(id core.ID) bool {
		return r.indexOf(id) != -1
	})

	r.items = append(r.items, stored)
	if err := r.dump(); err != nil {
		r.items = r.items[:len(r.items)-1]
		return nil, err
	}
	return cloneListing(stored), nil
}

// Update replaces the stored listing, keeping its id.
func (r *ListingRepository) Update(ctx context.Context, id core.ID, listing *core.Listing) (*core.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}

	prev := r.items[idx]
	stored := cloneListing(listing)
	stored.Id = id
	r.items[idx] = stored
	if err := r.dump(); err != nil {
		r.items[idx] = prev
		return nil, err
	}
	return cloneListing(stored), nil
}

// MarkDeleted sets the soft-delete flag without removing the record.
func (r *ListingRepository) MarkDeleted(ctx context.Context, id core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return storage.ErrNotFound
	}

	was := r.items[idx].IsDeleted
	r.items[idx].IsDeleted = true
	if err := r.dump(); err != nil {
		r.items[idx].IsDeleted = was
		return err
	}
	return nil
}

// Delete physically removes the listing.
func (r *ListingRepository) Delete(ctx context.Context, id core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return storage.ErrNotFound
	}

	removed := r.items[idx]
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	if err := r.dump(); err != nil {
		r.items = append(r.items[:idx], append([]*core.Listing{removed}, r.items[idx:]...)...)
		return err
	}
	return nil
}
