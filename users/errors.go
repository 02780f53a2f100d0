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

package users

import "errors"

var (
	// ErrRepositoryRequired is returned when a nil repository is provided.
	ErrRepositoryRequired = errors.New("user repository is required")

	// ErrLoginTaken is returned by Create when the login already belongs
	// to another account.
	ErrLoginTaken = errors.New("login already taken")

	// ErrEmptyPassword is returned by Create when no signup credential is
	// supplied.
	ErrEmptyPassword = errors.New("password must not be empty")
)
