package file

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/poiesic/adboard/core"
)

// Default collection file names inside the data directory.
const (
	DefaultListingsFile = "listings.json"
	DefaultUsersFile    = "users.json"
	DefaultChatsFile    = "chats.json"
)

// FileNames maps each collection to its file inside the data directory.
type FileNames struct {
	Listings string
	Users    string
	Chats    string
}

// Backend holds the file backend's data directory and collection bindings.
// An empty directory means memory-only mode: collections start empty and
// are never written to disk.
type Backend struct {
	dir    string
	files  FileNames
	logger *slog.Logger
}

// OpenBackend prepares a file backend rooted at dir, creating the directory
// if it doesn't exist. Zero-valued FileNames fields fall back to defaults.
func OpenBackend(dir string, files FileNames) (*Backend, error) {
	if files.Listings == "" {
		files.Listings = DefaultListingsFile
	}
	if files.Users == "" {
		files.Users = DefaultUsersFile
	}
	if files.Chats == "" {
		files.Chats = DefaultChatsFile
	}

	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		} else if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
	}

	return &Backend{
		dir:    dir,
		files:  files,
		logger: slog.Default(),
	}, nil
}

// path resolves a collection file name, or "" in memory-only mode.
func (b *Backend) path(name string) string {
	if b.dir == "" {
		return ""
	}
	return filepath.Join(b.dir, name)
}

// loadCollection reads a JSON array of records from path. A missing,
// empty, or unreadable file loads as an empty collection so a fresh data
// directory is usable without seeding.
func loadCollection[T any](path string, logger *slog.Logger) []T {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read collection file, starting empty", "path", path, "err", err)
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("could not parse collection file, starting empty", "path", path, "err", err)
		return nil
	}
	return items
}

// dumpCollection rewrites the whole collection snapshot to path.
// A memory-only collection (empty path) is a no-op.
func dumpCollection[T any](path string, items []T, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("could not write collection file", "path", path, "err", err)
		return err
	}
	return nil
}

// nextSequentialID allocates size+1 as the new id, incrementing while the
// candidate collides with an existing member.
func nextSequentialID(size int, exists func(core.ID) bool) core.ID {
	n := size + 1
	for exists(core.ID(strconv.Itoa(n))) {
		n++
	}
	return core.ID(strconv.Itoa(n))
}
