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

// Package listings provides the listing store: CRUD, multi-criterion
// search, and soft-delete semantics over a storage.ListingRepository.
//
// The store owns the domain rules; the repository underneath only moves
// records. Create stamps defaults (CreatedAt, IsDeleted=false), Update
// preserves CreatedAt and refreshes UpdatedAt, and Search fans out one
// backend query per supplied criterion, unions the results, and
// deduplicates by id.
//
// SoftDelete and HardDelete report "not found" as a false success flag
// rather than an error; callers treat a missing listing as a normal
// outcome.
package listings
