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

// Package chats provides the chat store: pair identity resolution,
// message append with read-on-reply, monotonic read-state transitions,
// and derived unread/total statistics.
//
// A chat is identified by its unordered participant pair, and at most
// one chat exists per pair. Create resolves the pair before inserting
// and treats a duplicate-key write as the signal to fall back to a
// lookup, so two concurrent creates for the same pair converge on one
// chat id.
//
// Read state moves one way only: a message's ReadAt transitions from
// unset to set exactly once, never by its own author. Statistics are
// recomputed from the message sequence on every call; nothing is
// cached or persisted.
package chats
