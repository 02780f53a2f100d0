package file

import (
	"context"
	"sync"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// UserRepository implements storage.UserRepository on a JSON-array
// collection file.
type UserRepository struct {
	mu    sync.Mutex
	path  string
	items []*core.User

	backend *Backend
}

var _ storage.UserRepository = (*UserRepository)(nil)

// NewUserRepository loads the users collection from the backend's data
// directory.
func NewUserRepository(backend *Backend) (*UserRepository, error) {
	path := backend.path(backend.files.Users)
	return &UserRepository{
		path:    path,
		items:   loadCollection[*core.User](path, backend.logger),
		backend: backend,
	}, nil
}

// Close is a no-op: the collection is rewritten on every mutation.
func (r *UserRepository) Close() error {
	return nil
}

func (r *UserRepository) dump() error {
	return dumpCollection(r.path, r.items, r.backend.logger)
}

func (r *UserRepository) indexOf(id core.ID) int {
	for i, u := range r.items {
		if u.Id == id {
			return i
		}
	}
	return -1
}

// GetAll returns all users.
func (r *UserRepository) GetAll(ctx context.Context) ([]*core.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*core.User, 0, len(r.items))
	for _, u := range r.items {
		result = append(result, cloneUser(u))
	}
	return result, nil
}

// Get retrieves a user by id.
func (r *UserRepository) Get(ctx context.Context, id core.ID) (*core.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}
	return cloneUser(r.items[idx]), nil
}

// GetByLogin retrieves the user with exactly the given login.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*core.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Login == login {
			return cloneUser(u), nil
		}
	}
	return nil, storage.ErrNotFound
}

// GetByEmail returns users whose email contains the fragment,
// case-insensitively. An empty fragment matches nobody.
func (r *UserRepository) GetByEmail(ctx context.Context, fragment string) ([]*core.User, error) {
	m := storage.NewTokenMatcher(fragment)
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*core.User
	for _, u := range r.items {
		if m.Match(u.Email) {
			result = append(result, cloneUser(u))
		}
	}
	return result, nil
}

// Add inserts a user under a freshly allocated sequential id.
// The login must not be taken.
func (r *UserRepository) Add(ctx context.Context, user *core.User) (*core.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Login == user.Login {
			return nil, storage.ErrDuplicateKey
		}
	}

	stored := cloneUser(user)
	stored.Id = nextSequentialID(len(r.items), func(id core.ID) bool {
		return r.indexOf(id) != -1
	})

	r.items = append(r.items, stored)
	if err := r.dump(); err != nil {
		r.items = r.items[:len(r.items)-1]
		return nil, err
	}
	return cloneUser(stored), nil
}

// Update replaces the stored user, keeping its id. A changed login must
// not collide with another user's.
func (r *UserRepository) Update(ctx context.Context, id core.ID, user *core.User) (*core.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}

	for i, u := range r.items {
		if i != idx && u.Login == user.Login {
			return nil, storage.ErrDuplicateKey
		}
	}

	prev := r.items[idx]
	stored := cloneUser(user)
	stored.Id = id
	r.items[idx] = stored
	if err := r.dump(); err != nil {
		r.items[idx] = prev
		return nil, err
	}
	return cloneUser(stored), nil
}

// Delete physically removes the user.
func (r *UserRepository) Delete(ctx context.Context, id core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return storage.ErrNotFound
	}

	removed := r.items[idx]
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	if err := r.dump(); err != nil {
		r.items = append(r.items[:idx], append([]*core.User{removed}, r.items[idx:]...)...)
		return err
	}
	return nil
}
