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

// Package adboard wires the persistence and messaging core of the
// classifieds board behind one Database facade. The facade selects the
// storage backend from configuration at construction time and exposes
// the three entity stores; callers never see which backend is active.
package adboard

import (
	"fmt"
	"log/slog"

	"github.com/poiesic/adboard/chats"
	"github.com/poiesic/adboard/config"
	"github.com/poiesic/adboard/listings"
	"github.com/poiesic/adboard/stats"
	"github.com/poiesic/adboard/storage"
	"github.com/poiesic/adboard/storage/badger"
	"github.com/poiesic/adboard/storage/file"
	"github.com/poiesic/adboard/users"
)

// Database is the root facade: one backend, one store per entity
// family, constructed once at process start and passed explicitly to
// collaborators. There is no package-level instance.
type Database struct {
	listingRepo storage.ListingRepository
	userRepo    storage.UserRepository
	chatRepo    storage.ChatRepository
	backend     *badger.Backend // nil for the file backend

	listingStore *listings.Store
	userStore    *users.Store
	chatStore    *chats.Store

	logger *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewDatabase builds the backend named by cfg.Storage and the three
// stores over it.
func NewDatabase(cfg *config.Config, opts ...DatabaseOption) (*Database, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &databaseOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	db := &Database{logger: options.logger}

	var err error
	switch cfg.Storage {
	case config.StorageFile:
		err = db.openFile(cfg)
	case config.StorageBadger:
		err = db.openBadger(cfg)
	}
	if err != nil {
		return nil, err
	}

	db.listingStore, err = listings.NewStore(db.listingRepo, listings.WithLogger(db.logger))
	if err != nil {
		db.Close()
		return nil, err
	}
	db.userStore, err = users.NewStore(db.userRepo,
		users.WithLogger(db.logger), users.WithHashRounds(cfg.HashRounds))
	if err != nil {
		db.Close()
		return nil, err
	}
	db.chatStore, err = chats.NewStore(db.chatRepo, chats.WithLogger(db.logger))
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (db *Database) openFile(cfg *config.Config) error {
	backend, err := file.OpenBackend(cfg.DataPath, file.FileNames{
		Listings: cfg.ListingsFile,
		Users:    cfg.UsersFile,
		Chats:    cfg.ChatsFile,
	})
	if err != nil {
		return err
	}

	if db.listingRepo, err = file.NewListingRepository(backend); err != nil {
		return err
	}
	if db.userRepo, err = file.NewUserRepository(backend); err != nil {
		db.listingRepo.Close()
		return err
	}
	if db.chatRepo, err = file.NewChatRepository(backend); err != nil {
		db.userRepo.Close()
		db.listingRepo.Close()
		return err
	}
	return nil
}

func (db *Database) openBadger(cfg *config.Config) error {
	backend, err := badger.OpenBackend(cfg.BadgerDir, false)
	if err != nil {
		return err
	}
	db.backend = backend

	if db.listingRepo, err = badger.NewListingRepository(backend); err != nil {
		backend.Close()
		db.backend = nil
		return err
	}
	if db.userRepo, err = badger.NewUserRepository(backend); err != nil {
		db.listingRepo.Close()
		backend.Close()
		db.backend = nil
		return err
	}
	if db.chatRepo, err = badger.NewChatRepository(backend); err != nil {
		db.userRepo.Close()
		db.listingRepo.Close()
		backend.Close()
		db.backend = nil
		return err
	}
	return nil
}

// Close releases the repositories and the backend.
func (db *Database) Close() error {
	var firstErr error

	for _, repo := range []storage.Repository{db.chatRepo, db.userRepo, db.listingRepo} {
		if repo == nil {
			continue
		}
		if err := repo.Close(); err != nil {
			db.logger.Error("error closing repository", "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if db.backend != nil {
		if err := db.backend.Close(); err != nil {
			db.logger.Error("error closing backend storage", "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Listings returns the listing store.
func (db *Database) Listings() *listings.Store {
	return db.listingStore
}

// Users returns the user store.
func (db *Database) Users() *users.Store {
	return db.userStore
}

// Chats returns the chat store.
func (db *Database) Chats() *chats.Store {
	return db.chatStore
}

// NewAggregator creates a statistics aggregator over the chat store.
func (db *Database) NewAggregator(opts ...stats.Option) (*stats.Aggregator, error) {
	return stats.NewAggregator(db.chatStore, opts...)
}
