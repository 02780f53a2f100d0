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

package users

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// Store provides user CRUD with login uniqueness and credential
// handling.
type Store struct {
	repository storage.UserRepository
	logger     *slog.Logger
	hashRounds int
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

// WithHashRounds sets the credential hashing cost parameter.
// Default is core.DefaultHashRounds.
func WithHashRounds(rounds int) Option {
	return func(s *Store) error {
		if rounds < 1 {
			rounds = core.DefaultHashRounds
		}
		s.hashRounds = rounds
		return nil
	}
}

// NewStore creates a new user store.
func NewStore(repository storage.UserRepository, opts ...Option) (*Store, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Store{
		repository: repository,
		logger:     slog.Default(),
		hashRounds: core.DefaultHashRounds,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// GetAll returns all users.
func (s *Store) GetAll(ctx context.Context) ([]*core.User, error) {
	return s.repository.GetAll(ctx)
}

// Get retrieves a user by id.
func (s *Store) Get(ctx context.Context, id core.ID) (*core.User, error) {
	return s.repository.Get(ctx, id)
}

// GetLogin projects only the login field of a user.
func (s *Store) GetLogin(ctx context.Context, id core.ID) (string, error) {
	user, err := s.repository.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Login, nil
}

// GetByLogin retrieves the user holding exactly the given login.
func (s *Store) GetByLogin(ctx context.Context, login string) (*core.User, error) {
	return s.repository.GetByLogin(ctx, login)
}

// GetByEmail returns users whose email contains the fragment,
// case-insensitively.
func (s *Store) GetByEmail(ctx context.Context, fragment string) ([]*core.User, error) {
	return s.repository.GetByEmail(ctx, fragment)
}

// Create registers a new account. The plaintext credential is turned
// into {salt, passwordHash} before persistence and discarded; it never
// reaches the repository. A taken login yields ErrLoginTaken.
func (s *Store) Create(ctx context.Context, user *core.User, plaintext string) (*core.User, error) {
	if err := core.ValidateUser(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(plaintext) == "" {
		return nil, ErrEmptyPassword
	}

	salt, err := core.GenerateSalt(s.hashRounds)
	if err != nil {
		return nil, err
	}
	digest, err := core.HashCredential(plaintext, salt)
	if err != nil {
		return nil, err
	}

	stored := *user
	stored.Id = ""
	stored.Salt = salt
	stored.PasswordHash = digest

	created, err := s.repository.Add(ctx, &stored)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrLoginTaken
		}
		s.logger.Error("could not create user", "login", user.Login, "err", err)
		return nil, err
	}
	return created, nil
}

// Update replaces the user's profile fields, keeping the stored
// credential material. A login change colliding with another account
// yields ErrLoginTaken.
func (s *Store) Update(ctx context.Context, id core.ID, user *core.User) (*core.User, error) {
	if err := core.ValidateUser(user); err != nil {
		return nil, err
	}

	existing, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stored := *user
	stored.Id = id
	stored.Salt = existing.Salt
	stored.PasswordHash = existing.PasswordHash

	updated, err := s.repository.Update(ctx, id, &stored)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrLoginTaken
		}
		s.logger.Error("could not update user", "id", id, "err", err)
		return nil, err
	}
	return updated, nil
}

// Delete removes the user. A missing user yields (false, nil); only
// backend failures surface as errors.
func (s *Store) Delete(ctx context.Context, id core.ID) (bool, error) {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		s.logger.Error("could not delete user", "id", id, "err", err)
		return false, err
	}
	return true, nil
}

// VerifyCredential recomputes the digest over plaintext with the stored
// salt and compares it against the stored hash. It fails closed: an
// unknown login and a wrong credential both report false.
func (s *Store) VerifyCredential(ctx context.Context, login, plaintext string) (bool, error) {
	user, err := s.repository.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	digest, err := core.HashCredential(plaintext, user.Salt)
	if err != nil {
		s.logger.Error("could not recompute credential digest", "login", login, "err", err)
		return false, err
	}
	return core.VerifyDigest(digest, user.PasswordHash), nil
}
