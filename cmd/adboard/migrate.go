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

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
	"github.com/poiesic/adboard/storage/badger"
	"github.com/poiesic/adboard/storage/file"
	"github.com/urfave/cli/v2"
)

// migrateCommand copies every record from a file-backend data directory
// into a badger directory. Both backends allocate their own ids, so the
// copy remaps ids and rewrites cross-references (listing owners, chat
// participants, message authors) as it goes. Message timestamps and read
// state are carried over unchanged.
func migrateCommand(c *cli.Context) error {
	src, err := file.OpenBackend(c.String("from"), file.FileNames{})
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	srcListings, err := file.NewListingRepository(src)
	if err != nil {
		return err
	}
	defer srcListings.Close()
	srcUsers, err := file.NewUserRepository(src)
	if err != nil {
		return err
	}
	defer srcUsers.Close()
	srcChats, err := file.NewChatRepository(src)
	if err != nil {
		return err
	}
	defer srcChats.Close()

	dst, err := badger.OpenBackend(c.String("to"), false)
	if err != nil {
		return fmt.Errorf("opening destination: %w", err)
	}
	defer dst.Close()
	dstListings, err := badger.NewListingRepository(dst)
	if err != nil {
		return err
	}
	defer dstListings.Close()
	dstUsers, err := badger.NewUserRepository(dst)
	if err != nil {
		return err
	}
	defer dstUsers.Close()
	dstChats, err := badger.NewChatRepository(dst)
	if err != nil {
		return err
	}
	defer dstChats.Close()

	ctx := c.Context

	userIDs, err := migrateUsers(ctx, srcUsers, dstUsers)
	if err != nil {
		return err
	}
	if err := migrateListings(ctx, srcListings, dstListings, userIDs); err != nil {
		return err
	}
	if err := migrateChats(ctx, srcChats, dstChats, userIDs); err != nil {
		return err
	}

	slog.Info("migration complete", "users", len(userIDs))
	return nil
}

// migrateUsers copies users and returns the old-to-new id map.
func migrateUsers(ctx context.Context, src, dst storage.UserRepository) (map[core.ID]core.ID, error) {
	users, err := src.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[core.ID]core.ID, len(users))
	for _, u := range users {
		oldID := u.Id
		created, err := dst.Add(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("migrating user %s: %w", oldID, err)
		}
		ids[oldID] = created.Id
	}
	slog.Info("migrated users", "count", len(users))
	return ids, nil
}

func migrateListings(ctx context.Context, src, dst storage.ListingRepository, userIDs map[core.ID]core.ID) error {
	// GetAllByOwner is the only read path that includes soft-deleted
	// listings, so the copy walks owner by owner.
	count := 0
	for oldOwner, newOwner := range userIDs {
		items, err := src.GetAllByOwner(ctx, oldOwner)
		if err != nil {
			return err
		}
		for _, l := range items {
			wasDeleted := l.IsDeleted
			l.OwnerId = newOwner
			created, err := dst.Add(ctx, l)
			if err != nil {
				return fmt.Errorf("migrating listing %s: %w", l.Id, err)
			}
			if wasDeleted {
				if err := dst.MarkDeleted(ctx, created.Id); err != nil {
					return err
				}
			}
			count++
		}
	}
	slog.Info("migrated listings", "count", count)
	return nil
}

func migrateChats(ctx context.Context, src, dst storage.ChatRepository, userIDs map[core.ID]core.ID) error {
	chatList, err := src.GetAll(ctx)
	if err != nil {
		return err
	}

	msgCount := 0
	for _, chat := range chatList {
		oldID := chat.Id
		mapped := &core.Chat{CreatedAt: chat.CreatedAt}
		for _, u := range chat.Users {
			mapped.Users = append(mapped.Users, mapUserID(userIDs, u))
		}

		newID, err := dst.Add(ctx, mapped)
		if err != nil {
			return fmt.Errorf("migrating chat %s: %w", oldID, err)
		}

		msgs, err := src.Messages(ctx, oldID)
		if err != nil {
			return err
		}
		for _, m := range msgs {
			m.AuthorId = mapUserID(userIDs, m.AuthorId)
			if _, err := dst.AppendMessage(ctx, newID, m); err != nil {
				return fmt.Errorf("migrating message %s: %w", m.Id, err)
			}
			msgCount++
		}
	}
	slog.Info("migrated chats", "count", len(chatList), "messages", msgCount)
	return nil
}

// mapUserID resolves an old user id, keeping dangling references as-is
// so the copied data is no worse than the original.
func mapUserID(ids map[core.ID]core.ID, old core.ID) core.ID {
	if mapped, ok := ids[old]; ok {
		return mapped
	}
	return old
}
