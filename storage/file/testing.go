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


package file

import "github.com/poiesic/adboard/storage"

// NewMemoryRepositories creates memory-only listing, user, and chat
// repositories for testing. Collections start empty and never touch disk.
func NewMemoryRepositories() (storage.ListingRepository, storage.UserRepository, storage.ChatRepository, error) {
	backend, err := OpenBackend("", FileNames{})
	if err != nil {
		return nil, nil, nil, err
	}

	listings, err := NewListingRepository(backend)
	if err != nil {
		return nil, nil, nil, err
	}

	users, err := NewUserRepository(backend)
	if err != nil {
		return nil, nil, nil, err
	}

	chats, err := NewChatRepository(backend)
	if err != nil {
		return nil, nil, nil, err
	}

	return listings, users, chats, nil
}
