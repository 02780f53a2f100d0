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

// Package config loads the process configuration: compiled defaults,
// overridden by an optional adboard.json file, overridden by ADBOARD_*
// environment variables. Load returns a value; there is no package-level
// configuration state.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage kinds recognized by the database facade.
const (
	StorageFile   = "file"
	StorageBadger = "badger"
)

// Config holds every tunable of the persistence core.
type Config struct {
	// Storage selects the backend: "file" or "badger".
	Storage string `mapstructure:"storage"`

	// DataPath is the file backend's data directory.
	DataPath string `mapstructure:"data_path"`

	// Per-collection file names inside DataPath.
	ListingsFile string `mapstructure:"listings_file"`
	UsersFile    string `mapstructure:"users_file"`
	ChatsFile    string `mapstructure:"chats_file"`

	// BadgerDir is the badger backend's database directory.
	BadgerDir string `mapstructure:"badger_dir"`

	// HashRounds is the credential hashing cost parameter.
	HashRounds int `mapstructure:"hash_rounds"`
}

// Load reads configuration from defaults, an optional adboard.json in
// the search paths, and ADBOARD_* environment variables, in ascending
// precedence.
func Load(searchPaths ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage", StorageFile)
	v.SetDefault("data_path", "./data")
	v.SetDefault("listings_file", "listings.json")
	v.SetDefault("users_file", "users.json")
	v.SetDefault("chats_file", "chats.json")
	v.SetDefault("badger_dir", "./data/badger")
	v.SetDefault("hash_rounds", 10)

	v.SetConfigName("adboard")
	v.SetConfigType("json")
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("ADBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the facade cannot work
// with.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageBadger:
	default:
		return fmt.Errorf("unknown storage kind %q (want %q or %q)", c.Storage, StorageFile, StorageBadger)
	}
	if c.HashRounds < 1 {
		return fmt.Errorf("hash_rounds must be positive, got %d", c.HashRounds)
	}
	return nil
}
