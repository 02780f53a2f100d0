package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// ListingRepository implements storage.ListingRepository for BadgerDB.
type ListingRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a new ListingRepository.
func NewListingRepository(backend *Backend) (*ListingRepository, error) {
	idSeq, err := backend.GetSequence(listingIDSeq)
	if err != nil {
		return nil, err
	}

	return &ListingRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ListingRepository) Close() error {
	return r.idSeq.Release()
}

// GetAll returns all listings that are not soft-deleted.
func (r *ListingRepository) GetAll(ctx context.Context) ([]*core.Listing, error) {
	return r.scan(func(l *core.Listing) bool { return !l.IsDeleted })
}

// Get retrieves a listing by ID, excluding soft-deleted ones.
func (r *ListingRepository) Get(ctx context.Context, id core.ID) (*core.Listing, error) {
	var result *core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readListing(tx, makeListingKey(id))
		if err != nil {
			return err
		}
		if result == nil || result.IsDeleted {
			result = nil
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetByText returns listings whose ShortText matches any token of text.
func (r *ListingRepository) GetByText(ctx context.Context, text string) ([]*core.Listing, error) {
	m := storage.NewTokenMatcher(text)
	return r.scan(func(l *core.Listing) bool {
		return !l.IsDeleted && m.Match(l.ShortText)
	})
}

// GetByDescription returns listings whose Description matches any token of text.
func (r *ListingRepository) GetByDescription(ctx context.Context, text string) ([]*core.Listing, error) {
	m := storage.NewTokenMatcher(text)
	return r.scan(func(l *core.Listing) bool {
		return !l.IsDeleted && m.Match(l.Description)
	})
}

// GetByTags returns listings carrying every one of the given tags.
func (r *ListingRepository) GetByTags(ctx context.Context, tags []string) ([]*core.Listing, error) {
	return r.scan(func(l *core.Listing) bool {
		return !l.IsDeleted && storage.HasAllTags(l.Tags, tags)
	})
}

// GetByOwner returns the owner's listings via the owner index, excluding
// soft-deleted ones.
func (r *ListingRepository) GetByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error) {
	return r.scanOwner(owner, func(l *core.Listing) bool { return !l.IsDeleted })
}

// GetByOwners returns listings owned by any of the given users.
func (r *ListingRepository) GetByOwners(ctx context.Context, owners []core.ID) ([]*core.Listing, error) {
	var results []*core.Listing
	for _, owner := range owners {
		part, err := r.scanOwner(owner, func(l *core.Listing) bool { return !l.IsDeleted })
		if err != nil {
			return nil, err
		}
		results = append(results, part...)
	}
	return results, nil
}

// GetAllByOwner returns the owner's listings including soft-deleted ones.
func (r *ListingRepository) GetAllByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error) {
	return r.scanOwner(owner, func(l *core.Listing) bool { return true })
}

// Add inserts a listing under a freshly allocated id and indexes it by
// owner.
func (r *ListingRepository) Add(ctx context.Context, listing *core.Listing) (*core.Listing, error) {
	id, err := nextID(r.idSeq)
	if err != nil {
		return nil, err
	}

	stored := *listing
	stored.Id = id

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeListingKey(id), storage.MarshalListing(&stored)); err != nil {
			return err
		}
		if err := tx.Set(makeListingOwnerKey(stored.OwnerId, id), []byte(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update replaces the stored listing, keeping its id and moving the owner
// index entry if the owner changed.
func (r *ListingRepository) Update(ctx context.Context, id core.ID, listing *core.Listing) (*core.Listing, error) {
	stored := *listing
	stored.Id = id

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		old, err := readListing(tx, makeListingKey(id))
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		if err := tx.Set(makeListingKey(id), storage.MarshalListing(&stored)); err != nil {
			return err
		}

		if old.OwnerId != stored.OwnerId {
			if err := tx.Delete(makeListingOwnerKey(old.OwnerId, id)); err != nil {
				return err
			}
			if err := tx.Set(makeListingOwnerKey(stored.OwnerId, id), []byte(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// MarkDeleted sets the soft-delete flag. The record and its owner index
// entry stay in place so history reads keep working.
func (r *ListingRepository) MarkDeleted(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		listing, err := readListing(tx, makeListingKey(id))
		if err != nil {
			return err
		}
		if listing == nil {
			return storage.ErrNotFound
		}

		listing.IsDeleted = true
		if err := tx.Set(makeListingKey(id), storage.MarshalListing(listing)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Delete physically removes the listing and its owner index entry.
func (r *ListingRepository) Delete(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		listing, err := readListing(tx, makeListingKey(id))
		if err != nil {
			return err
		}
		if listing == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(makeListingOwnerKey(listing.OwnerId, id)); err != nil {
			return err
		}
		if err := tx.Delete(makeListingKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// scan iterates the whole listing keyspace and collects records accepted
// by keep.
func (r *ListingRepository) scan(keep func(*core.Listing) bool) ([]*core.Listing, error) {
	var results []*core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(listingRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var listing *core.Listing
			err := iter.Item().Value(func(val []byte) error {
				var err error
				listing, err = storage.UnmarshalListing(val)
				return err
			})
			if err != nil {
				return err
			}
			if listing != nil && keep(listing) {
				results = append(results, listing)
			}
		}
		return nil
	}, false)
	return results, err
}

// scanOwner walks one owner's index entries and collects the referenced
// records accepted by keep.
func (r *ListingRepository) scanOwner(owner core.ID, keep func(*core.Listing) bool) ([]*core.Listing, error) {
	var results []*core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialListingOwnerKey(owner)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				id = core.ID(val)
				return nil
			}); err != nil {
				return err
			}

			listing, err := readListing(tx, makeListingKey(id))
			if err != nil {
				return err
			}
			if listing != nil && keep(listing) {
				results = append(results, listing)
			}
		}
		return nil
	}, false)
	return results, err
}

// readListing reads a listing from the transaction. Returns (nil, nil)
// when the key is absent.
func readListing(tx *badger.Txn, key []byte) (*core.Listing, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var listing *core.Listing
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		listing, unmarshalErr = storage.UnmarshalListing(val)
		return unmarshalErr
	})
	return listing, err
}
