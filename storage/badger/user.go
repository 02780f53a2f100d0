package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// UserRepository implements storage.UserRepository for BadgerDB. Login
// uniqueness is enforced by a unique index key written in the same
// transaction as the record.
type UserRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository.
func NewUserRepository(backend *Backend) (*UserRepository, error) {
	idSeq, err := backend.GetSequence(userIDSeq)
	if err != nil {
		return nil, err
	}

	return &UserRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *UserRepository) Close() error {
	return r.idSeq.Release()
}

// GetAll returns all users.
func (r *UserRepository) GetAll(ctx context.Context) ([]*core.User, error) {
	return r.scan(func(u *core.User) bool { return true })
}

// Get retrieves a user by ID.
func (r *UserRepository) Get(ctx context.Context, id core.ID) (*core.User, error) {
	var result *core.User
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readUser(tx, makeUserKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetByLogin resolves the login index to its user record.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*core.User, error) {
	var result *core.User
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeUserLoginKey(login))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			id = core.ID(val)
			return nil
		}); err != nil {
			return err
		}

		result, err = readUser(tx, makeUserKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetByEmail returns users whose email contains the fragment,
// case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, fragment string) ([]*core.User, error) {
	m := storage.NewTokenMatcher(fragment)
	return r.scan(func(u *core.User) bool { return m.Match(u.Email) })
}

// Add inserts a user under a freshly allocated id. The login index key is
// written in the same transaction, so a concurrent insert of the same
// login cannot slip through.
func (r *UserRepository) Add(ctx context.Context, user *core.User) (*core.User, error) {
	id, err := nextID(r.idSeq)
	if err != nil {
		return nil, err
	}

	stored := *user
	stored.Id = id

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeUserLoginKey(stored.Login)); err == nil {
			return storage.ErrDuplicateKey
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if err := tx.Set(makeUserKey(id), storage.MarshalUser(&stored)); err != nil {
			return err
		}
		if err := tx.Set(makeUserLoginKey(stored.Login), []byte(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Update replaces the stored user, keeping its id and moving the login
// index entry if the login changed.
func (r *UserRepository) Update(ctx context.Context, id core.ID, user *core.User) (*core.User, error) {
	stored := *user
	stored.Id = id

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		old, err := readUser(tx, makeUserKey(id))
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		if old.Login != stored.Login {
			if _, err := tx.Get(makeUserLoginKey(stored.Login)); err == nil {
				return storage.ErrDuplicateKey
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err := tx.Delete(makeUserLoginKey(old.Login)); err != nil {
				return err
			}
			if err := tx.Set(makeUserLoginKey(stored.Login), []byte(id)); err != nil {
				return err
			}
		}

		if err := tx.Set(makeUserKey(id), storage.MarshalUser(&stored)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete physically removes the user and its login index entry.
func (r *UserRepository) Delete(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		user, err := readUser(tx, makeUserKey(id))
		if err != nil {
			return err
		}
		if user == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(makeUserLoginKey(user.Login)); err != nil {
			return err
		}
		if err := tx.Delete(makeUserKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// scan iterates the whole user keyspace and collects records accepted by
// keep.
func (r *UserRepository) scan(keep func(*core.User) bool) ([]*core.User, error) {
	var results []*core.User
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(userRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var user *core.User
			err := iter.Item().Value(func(val []byte) error {
				var err error
				user, err = storage.UnmarshalUser(val)
				return err
			})
			if err != nil {
				return err
			}
			if user != nil && keep(user) {
				results = append(results, user)
			}
		}
		return nil
	}, false)
	return results, err
}

// readUser reads a user from the transaction. Returns (nil, nil) when the
// key is absent.
func readUser(tx *badger.Txn, key []byte) (*core.User, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var user *core.User
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		user, unmarshalErr = storage.UnmarshalUser(val)
		return unmarshalErr
	})
	return user, err
}
