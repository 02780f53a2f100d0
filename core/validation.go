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


package core

import (
	"fmt"
	"strings"
)

// ValidateListing validates a Listing according to domain rules.
//
// Validation rules:
//   - ShortText must not be empty
//   - OwnerId must not be empty
//
// NOT validated (populated by the store):
//   - Id (assigned by the allocator on create)
//   - CreatedAt/UpdatedAt/IsDeleted (defaulted on create)
func ValidateListing(listing *Listing) error {
	if listing == nil {
		return fmt.Errorf("%w: listing is nil", ErrInvalidListing)
	}

	if listing.ShortText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyShortText)
	}

	if listing.OwnerId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyOwner)
	}

	return nil
}

// ValidateUser validates a User according to domain rules.
//
// Validation rules:
//   - Login must not be empty
//
// Login uniqueness is enforced by the store at write time, not here.
func ValidateUser(user *User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidUser)
	}

	if user.Login == "" {
		return fmt.Errorf("%w: %w", ErrInvalidUser, ErrEmptyLogin)
	}

	return nil
}

// ValidateChatUsers validates the participant pair of a chat: exactly two
// distinct, non-empty user ids.
func ValidateChatUsers(users []ID) error {
	if len(users) != 2 || users[0] == "" || users[1] == "" || users[0] == users[1] {
		return fmt.Errorf("%w: %w", ErrInvalidChat, ErrChatUserPair)
	}
	return nil
}

// ValidateMessage validates a Message according to domain rules.
//
// Validation rules:
//   - Text must not be empty after whitespace trimming
//   - AuthorId must not be empty
//
// NOT validated:
//   - Id (generated on append)
//   - ChatId (bound by the store on append)
//   - ReadAt (always unset on append)
func ValidateMessage(msg *Message) error {
	if msg == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidMessage)
	}

	if strings.TrimSpace(msg.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrEmptyText)
	}

	if msg.AuthorId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrEmptyAuthor)
	}

	return nil
}
