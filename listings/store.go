// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package listings

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// Store provides listing CRUD and search over a repository.
type Store struct {
	repository storage.ListingRepository
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithClock sets the time source used for CreatedAt/UpdatedAt stamps.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			now = time.Now
		}
		s.now = now
		return nil
	}
}

// NewStore creates a new listing store.
func NewStore(repository storage.ListingRepository, opts ...Option) (*Store, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Store{
		repository: repository,
		logger:     slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// GetAll returns all listings that are not soft-deleted.
func (s *Store) GetAll(ctx context.Context) ([]*core.Listing, error) {
	return s.repository.GetAll(ctx)
}

// Get retrieves a listing by id. A soft-deleted listing is reported as
// storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, id core.ID) (*core.Listing, error) {
	return s.repository.Get(ctx, id)
}

// GetByText returns listings whose short text matches any whitespace
// token of text, case-insensitively.
func (s *Store) GetByText(ctx context.Context, text string) ([]*core.Listing, error) {
	return s.repository.GetByText(ctx, text)
}

// GetByDescription returns listings whose description matches any
// whitespace token of text, case-insensitively.
func (s *Store) GetByDescription(ctx context.Context, text string) ([]*core.Listing, error) {
	return s.repository.GetByDescription(ctx, text)
}

// GetByTags returns listings carrying every one of the given tags.
func (s *Store) GetByTags(ctx context.Context, tags []string) ([]*core.Listing, error) {
	return s.repository.GetByTags(ctx, tags)
}

// GetByOwner returns the owner's listings, excluding soft-deleted ones.
func (s *Store) GetByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error) {
	return s.repository.GetByOwner(ctx, owner)
}

// GetAllByOwner returns the owner's listings including soft-deleted
// ones, for profile and history views.
func (s *Store) GetAllByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error) {
	return s.repository.GetAllByOwner(ctx, owner)
}

// Search runs each supplied criterion as an independent query, unions
// the results, and deduplicates by id. Criteria are OR-combined; tags
// keep AND semantics within their own criterion. Empty criteria return
// an empty result, not everything.
func (s *Store) Search(ctx context.Context, criteria *core.SearchCriteria) ([]*core.Listing, error) {
	if criteria == nil || criteria.IsEmpty() {
		return nil, nil
	}

	var combined []*core.Listing

	if criteria.Text != "" {
		part, err := s.repository.GetByText(ctx, criteria.Text)
		if err != nil {
			return nil, err
		}
		combined = append(combined, part...)
	}
	if criteria.Description != "" {
		part, err := s.repository.GetByDescription(ctx, criteria.Description)
		if err != nil {
			return nil, err
		}
		combined = append(combined, part...)
	}
	if len(criteria.Tags) > 0 {
		part, err := s.repository.GetByTags(ctx, criteria.Tags)
		if err != nil {
			return nil, err
		}
		combined = append(combined, part...)
	}
	if criteria.OwnerId != "" {
		part, err := s.repository.GetByOwner(ctx, criteria.OwnerId)
		if err != nil {
			return nil, err
		}
		combined = append(combined, part...)
	}
	if len(criteria.OwnerIds) > 0 {
		part, err := s.repository.GetByOwners(ctx, criteria.OwnerIds)
		if err != nil {
			return nil, err
		}
		combined = append(combined, part...)
	}

	return storage.DedupeListings(combined), nil
}

// Create validates the listing, stamps defaults, and persists it. The
// stored copy gets CreatedAt set to now, no UpdatedAt, and IsDeleted
// forced false regardless of the input.
func (s *Store) Create(ctx context.Context, listing *core.Listing) (*core.Listing, error) {
	if err := core.ValidateListing(listing); err != nil {
		return nil, err
	}

	stored := *listing
	stored.Id = ""
	stored.CreatedAt = s.now().UTC()
	stored.UpdatedAt = nil
	stored.IsDeleted = false

	created, err := s.repository.Add(ctx, &stored)
	if err != nil {
		s.logger.Error("could not create listing", "owner", listing.OwnerId, "err", err)
		return nil, err
	}
	return created, nil
}

// Update replaces the listing's mutable fields, preserving CreatedAt and
// the soft-delete flag and refreshing UpdatedAt.
func (s *Store) Update(ctx context.Context, id core.ID, listing *core.Listing) (*core.Listing, error) {
	if err := core.ValidateListing(listing); err != nil {
		return nil, err
	}

	existing, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stored := *listing
	stored.Id = id
	stored.CreatedAt = existing.CreatedAt
	stored.IsDeleted = existing.IsDeleted
	at := s.now().UTC()
	stored.UpdatedAt = &at

	updated, err := s.repository.Update(ctx, id, &stored)
	if err != nil {
		s.logger.Error("could not update listing", "id", id, "err", err)
		return nil, err
	}
	return updated, nil
}

// SoftDelete flags the listing as deleted. A missing listing yields
// (false, nil); only backend failures surface as errors.
func (s *Store) SoftDelete(ctx context.Context, id core.ID) (bool, error) {
	err := s.repository.MarkDeleted(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		s.logger.Error("could not soft-delete listing", "id", id, "err", err)
		return false, err
	}
	return true, nil
}

// HardDelete physically removes the listing. A missing listing yields
// (false, nil); only backend failures surface as errors.
func (s *Store) HardDelete(ctx context.Context, id core.ID) (bool, error) {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		s.logger.Error("could not hard-delete listing", "id", id, "err", err)
		return false, err
	}
	return true, nil
}
