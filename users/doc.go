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

// Package users provides the user store: account CRUD with a global
// login uniqueness constraint and credential handling.
//
// Create derives {salt, passwordHash} from the signup plaintext before
// anything reaches the repository; the plaintext itself is never
// persisted. VerifyCredential fails closed: an unknown login and a wrong
// credential are both a plain false, without distinguishing the two to
// the caller.
package users
