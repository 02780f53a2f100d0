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

import "errors"

// Domain validation errors
var (
	// ErrInvalidListing indicates a Listing failed validation.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrInvalidUser indicates a User failed validation.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidChat indicates a Chat failed validation.
	ErrInvalidChat = errors.New("invalid chat")

	// ErrInvalidMessage indicates a Message failed validation.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrEmptyShortText indicates the listing ShortText field is empty.
	ErrEmptyShortText = errors.New("short text cannot be empty")

	// ErrEmptyOwner indicates the listing OwnerId field is empty.
	ErrEmptyOwner = errors.New("owner id cannot be empty")

	// ErrEmptyLogin indicates the user Login field is empty.
	ErrEmptyLogin = errors.New("login cannot be empty")

	// ErrEmptyText indicates the message Text field is empty after trimming.
	ErrEmptyText = errors.New("message text cannot be empty")

	// ErrEmptyAuthor indicates the message AuthorId field is empty.
	ErrEmptyAuthor = errors.New("author id cannot be empty")

	// ErrChatUserPair indicates a chat does not name exactly two distinct users.
	ErrChatUserPair = errors.New("chat requires exactly two distinct users")

	// ErrInvalidSalt indicates a stored salt cannot be parsed.
	ErrInvalidSalt = errors.New("invalid salt")
)
