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

// Package stats builds mailbox-wide unread/total summaries.
//
// The per-chat statistic is a derived view recomputed by the chat store
// on every call, so a summary over N chats costs N backend round trips.
// The aggregator runs those calls concurrently on a worker pool to keep
// the mailbox view responsive as a user's chat list grows.
package stats
