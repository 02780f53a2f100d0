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

package chats

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// Store provides chat identity, message append, read-state transitions,
// and derived statistics over a repository.
type Store struct {
	repository storage.ChatRepository
	logger     *slog.Logger
	now        func() time.Time
	newID      func() core.ID
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

// WithClock sets the time source used for CreatedAt/SentAt/ReadAt stamps.
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

// NewStore creates a new chat store.
func NewStore(repository storage.ChatRepository, opts ...Option) (*Store, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Store{
		repository: repository,
		logger:     slog.Default(),
		now:        time.Now,
		newID:      func() core.ID { return core.ID(uuid.NewString()) },
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// GetAll returns all chats.
func (s *Store) GetAll(ctx context.Context) ([]*core.Chat, error) {
	return s.repository.GetAll(ctx)
}

// Get retrieves a chat by id.
func (s *Store) Get(ctx context.Context, id core.ID) (*core.Chat, error) {
	return s.repository.Get(ctx, id)
}

// GetByUser returns every chat the user participates in.
func (s *Store) GetByUser(ctx context.Context, user core.ID) ([]*core.Chat, error) {
	return s.repository.GetByUser(ctx, user)
}

// GetByUserPair retrieves the single chat holding exactly the unordered
// pair, or storage.ErrNotFound.
func (s *Store) GetByUserPair(ctx context.Context, a, b core.ID) (*core.Chat, error) {
	return s.repository.GetByUserPair(ctx, a, b)
}

// Create resolves or creates the chat for the unordered pair (a, b) and
// returns its id. The call is idempotent: an existing chat's id comes
// back unchanged, and a concurrent create losing the insert race falls
// back to the winner's chat.
func (s *Store) Create(ctx context.Context, a, b core.ID) (core.ID, error) {
	users := []core.ID{a, b}
	if err := core.ValidateChatUsers(users); err != nil {
		return "", err
	}

	existing, err := s.repository.GetByUserPair(ctx, a, b)
	if err == nil {
		return existing.Id, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	id, err := s.repository.Add(ctx, &core.Chat{
		Users:     users,
		CreatedAt: s.now().UTC(),
	})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, storage.ErrDuplicateKey) {
		s.logger.Error("could not create chat", "err", err)
		return "", err
	}

	// Lost the insert race; the winner's chat is the chat.
	winner, err := s.repository.GetByUserPair(ctx, a, b)
	if err != nil {
		return "", err
	}
	return winner.Id, nil
}

// AppendMessage validates and appends a message to the chat. When
// markPriorRead is set, every earlier unread message authored by someone
// other than the new author is marked read first, so replying counts as
// reading the conversation. The appended message comes back with its id,
// chat binding, and SentAt stamp filled in.
func (s *Store) AppendMessage(ctx context.Context, chatID core.ID, msg *core.Message, markPriorRead bool) (*core.Message, error) {
	if err := core.ValidateMessage(msg); err != nil {
		return nil, err
	}

	chat, err := s.repository.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasUser(msg.AuthorId) {
		return nil, storage.ErrNotFound
	}

	if markPriorRead {
		if err := s.markPriorRead(ctx, chatID, msg.AuthorId); err != nil {
			return nil, err
		}
	}

	stored := *msg
	stored.ChatId = chatID
	stored.Text = strings.TrimSpace(msg.Text)
	stored.ReadAt = nil
	if stored.Id == "" {
		stored.Id = s.newID()
	}
	if stored.SentAt.IsZero() {
		stored.SentAt = s.now().UTC()
	}

	appended, err := s.repository.AppendMessage(ctx, chatID, &stored)
	if err != nil {
		s.logger.Error("could not append message", "chat", chatID, "err", err)
		return nil, err
	}
	return appended, nil
}

// markPriorRead stamps every unread message not authored by reader.
func (s *Store) markPriorRead(ctx context.Context, chatID, reader core.ID) error {
	msgs, err := s.repository.Messages(ctx, chatID)
	if err != nil {
		return err
	}

	at := s.now().UTC()
	for _, m := range msgs {
		if m.IsRead() || m.AuthorId == reader {
			continue
		}
		if _, err := s.repository.SetMessageRead(ctx, chatID, m.Id, at); err != nil {
			return err
		}
	}
	return nil
}

// MarkRead sets the message's read timestamp on behalf of reader. The
// transition is monotonic: an already-read message comes back unchanged.
// The call reports storage.ErrNotFound when the chat or message does not
// exist, when the reader is not a participant, or when the reader
// authored the message.
func (s *Store) MarkRead(ctx context.Context, chatID, reader, msgID core.ID, at time.Time) (*core.Message, error) {
	chat, err := s.repository.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasUser(reader) {
		return nil, storage.ErrNotFound
	}

	msgs, err := s.repository.Messages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	for _, m := range msgs {
		if m.Id != msgID {
			continue
		}
		if m.AuthorId == reader {
			return nil, storage.ErrNotFound
		}
		if m.IsRead() {
			return m, nil
		}
		return s.repository.SetMessageRead(ctx, chatID, msgID, at)
	}
	return nil, storage.ErrNotFound
}

// GetHistory returns the chat's messages in insertion order.
func (s *Store) GetHistory(ctx context.Context, chatID core.ID) ([]*core.Message, error) {
	return s.repository.Messages(ctx, chatID)
}

// GetStatistics derives the unread/total view of the pair's chat from
// userA's perspective: unread counts messages authored by the
// counterpart with no read timestamp, total counts everything. A pair
// with no chat reports storage.ErrNotFound; callers treat that as
// zero-stats, not a failure.
func (s *Store) GetStatistics(ctx context.Context, userA, userB core.ID) (*core.ChatStats, error) {
	chat, err := s.repository.GetByUserPair(ctx, userA, userB)
	if err != nil {
		return nil, err
	}

	msgs, err := s.repository.Messages(ctx, chat.Id)
	if err != nil {
		return nil, err
	}

	stats := &core.ChatStats{ChatId: chat.Id, Total: len(msgs)}
	for _, m := range msgs {
		if m.AuthorId != userA && !m.IsRead() {
			stats.Unread++
		}
	}
	return stats, nil
}
