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


package badger

import "github.com/poiesic/adboard/storage"

// NewMemoryRepositories creates in-memory listing, user, and chat
// repositories for testing. Returns the repositories plus the shared
// backend; the caller must close all of them when done.
func NewMemoryRepositories() (storage.ListingRepository, storage.UserRepository, storage.ChatRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	listings, err := NewListingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, err
	}

	users, err := NewUserRepository(backend)
	if err != nil {
		listings.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	chats, err := NewChatRepository(backend)
	if err != nil {
		users.Close()
		listings.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	return listings, users, chats, backend, nil
}
