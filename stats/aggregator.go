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

package stats

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// ChatSource is the slice of the chat store the aggregator needs.
type ChatSource interface {
	GetByUser(ctx context.Context, user core.ID) ([]*core.Chat, error)
	GetStatistics(ctx context.Context, userA, userB core.ID) (*core.ChatStats, error)
}

// Summary is the mailbox-wide view for one user: totals summed over
// every chat they participate in, plus the per-chat breakdown.
type Summary struct {
	Unread  int
	Total   int
	PerChat []*core.ChatStats
}

// Aggregator computes mailbox summaries concurrently.
type Aggregator struct {
	source ChatSource
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator) error

// WithPoolSize sets the worker pool size for concurrent statistics
// queries. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(a *Aggregator) error {
		if size < 1 {
			size = 1
		}

		if a.pool != nil {
			a.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAggregator creates a new aggregator over the given chat source.
func NewAggregator(source ChatSource, opts ...Option) (*Aggregator, error) {
	if source == nil {
		return nil, ErrChatSourceRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	a := &Aggregator{
		source: source,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return a, nil
}

// Close releases the worker pool.
func (a *Aggregator) Close() error {
	a.pool.Release()
	return nil
}

// Summary lists the user's chats and computes each counterpart's
// statistics concurrently, summing them into one mailbox view. A chat
// whose pair no longer resolves counts as zero, not as a failure.
func (a *Aggregator) Summary(ctx context.Context, userID core.ID) (*Summary, error) {
	chatList, err := a.source.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
		summary  = &Summary{}
	)

	for _, chat := range chatList {
		counterpart := chat.Counterpart(userID)

		wg.Add(1)
		err := a.pool.Submit(func() {
			defer wg.Done()

			stats, err := a.source.GetStatistics(ctx, userID, counterpart)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return
				}
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				a.logger.Error("could not compute chat statistics",
					"user", userID, "counterpart", counterpart, "err", err)
				return
			}

			mu.Lock()
			summary.Unread += stats.Unread
			summary.Total += stats.Total
			summary.PerChat = append(summary.PerChat, stats)
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return summary, nil
}
