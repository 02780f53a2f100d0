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


// Package storage provides the storage abstraction layer for adboard.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic. Two interchangeable backends implement
// them: a file backend persisting one JSON array per collection
// (storage/file) and a BadgerDB backend (storage/badger).
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and keep backends swappable:
//
//	repo, err := badger.NewListingRepository(backend) // storage.ListingRepository
//	repo, err := file.NewListingRepository(backend)   // storage.ListingRepository
//
// The stores (listings, users, chats) consume only these interfaces and
// never learn which backend is active.
//
// # Error Contract
//
// Absence is not a failure: lookups that don't resolve return ErrNotFound,
// which callers test with errors.Is and treat as an expected outcome.
// Uniqueness violations return ErrDuplicateKey. Backend I/O failures
// propagate as distinct wrapped errors so "absent" and "broken" are never
// conflated.
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use. The file
// backend serializes mutations with a per-collection mutex; the badger
// backend relies on BadgerDB transactions.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
