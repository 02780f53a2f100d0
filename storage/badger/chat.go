package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// ChatRepository implements storage.ChatRepository for BadgerDB. Messages
// are referenced, not embedded: each message lives under a composite key
// of its chat id and a monotonic order sequence, so a prefix iteration
// yields the chat's messages in insertion order. Chat records come back
// with a nil Messages slice; use Messages to read them.
type ChatRepository struct {
	backend  *Backend
	idSeq    *badger.Sequence
	orderSeq *badger.Sequence
}

var _ storage.ChatRepository = (*ChatRepository)(nil)

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(backend *Backend) (*ChatRepository, error) {
	idSeq, err := backend.GetSequence(chatIDSeq)
	if err != nil {
		return nil, err
	}

	orderSeq, err := backend.GetSequence(messageOrderSeq)
	if err != nil {
		idSeq.Release()
		return nil, err
	}

	return &ChatRepository{
		backend:  backend,
		idSeq:    idSeq,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the sequences.
func (r *ChatRepository) Close() error {
	if err := r.idSeq.Release(); err != nil {
		r.orderSeq.Release()
		return err
	}
	return r.orderSeq.Release()
}

// GetAll returns all chats.
func (r *ChatRepository) GetAll(ctx context.Context) ([]*core.Chat, error) {
	return r.scan(func(c *core.Chat) bool { return true })
}

// Get retrieves a chat by ID.
func (r *ChatRepository) Get(ctx context.Context, id core.ID) (*core.Chat, error) {
	var result *core.Chat
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readChat(tx, makeChatKey(id))
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

// GetByUser returns every chat the user participates in.
func (r *ChatRepository) GetByUser(ctx context.Context, user core.ID) ([]*core.Chat, error) {
	return r.scan(func(c *core.Chat) bool { return c.HasUser(user) })
}

// GetByUserPair resolves the pair index to its chat record.
func (r *ChatRepository) GetByUserPair(ctx context.Context, a, b core.ID) (*core.Chat, error) {
	var result *core.Chat
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChatPairKey(a, b))
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

		result, err = readChat(tx, makeChatKey(id))
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

// Add inserts a chat under a freshly allocated id. The pair index key is
// written in the same transaction as the record, so two concurrent adds
// for the same pair cannot both commit.
func (r *ChatRepository) Add(ctx context.Context, chat *core.Chat) (core.ID, error) {
	id, err := nextID(r.idSeq)
	if err != nil {
		return "", err
	}

	stored := *chat
	stored.Id = id
	stored.Messages = nil

	pairKey := makeChatPairKey(stored.Users[0], stored.Users[1])
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(pairKey); err == nil {
			return storage.ErrDuplicateKey
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if err := tx.Set(makeChatKey(id), storage.MarshalChat(&stored)); err != nil {
			return err
		}
		if err := tx.Set(pairKey, []byte(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return "", err
	}
	return id, nil
}

// AppendMessage stores the message under the chat's next order key.
func (r *ChatRepository) AppendMessage(ctx context.Context, chatID core.ID, msg *core.Message) (*core.Message, error) {
	seq, err := r.orderSeq.Next()
	if err != nil {
		return nil, err
	}

	stored := *msg
	stored.ChatId = chatID

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		chat, err := readChat(tx, makeChatKey(chatID))
		if err != nil {
			return err
		}
		if chat == nil {
			return storage.ErrNotFound
		}

		if err := tx.Set(makeMessageKey(chatID, seq), storage.MarshalMessage(&stored)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Messages returns the chat's messages in insertion order.
func (r *ChatRepository) Messages(ctx context.Context, chatID core.ID) ([]*core.Message, error) {
	var results []*core.Message
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		chat, err := readChat(tx, makeChatKey(chatID))
		if err != nil {
			return err
		}
		if chat == nil {
			return storage.ErrNotFound
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialMessageKey(chatID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var msg *core.Message
			err := iter.Item().Value(func(val []byte) error {
				var err error
				msg, err = storage.UnmarshalMessage(val)
				return err
			})
			if err != nil {
				return err
			}
			if msg != nil {
				results = append(results, msg)
			}
		}
		return nil
	}, false)
	return results, err
}

// SetMessageRead stamps the message's ReadAt in place and returns the
// updated message.
func (r *ChatRepository) SetMessageRead(ctx context.Context, chatID, msgID core.ID, at time.Time) (*core.Message, error) {
	var result *core.Message
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		chat, err := readChat(tx, makeChatKey(chatID))
		if err != nil {
			return err
		}
		if chat == nil {
			return storage.ErrNotFound
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialMessageKey(chatID)
		iter := tx.NewIterator(opts)

		// The iterator must be closed before the transaction commits.
		var key []byte
		var msg *core.Message
		for iter.Rewind(); iter.Valid(); iter.Next() {
			var candidate *core.Message
			err := iter.Item().Value(func(val []byte) error {
				var err error
				candidate, err = storage.UnmarshalMessage(val)
				return err
			})
			if err != nil {
				iter.Close()
				return err
			}
			if candidate != nil && candidate.Id == msgID {
				key = iter.Item().KeyCopy(nil)
				msg = candidate
				break
			}
		}
		iter.Close()

		if msg == nil {
			return storage.ErrNotFound
		}

		stamp := at
		msg.ReadAt = &stamp
		if err := tx.Set(key, storage.MarshalMessage(msg)); err != nil {
			return err
		}
		result = msg
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// scan iterates the whole chat keyspace and collects records accepted by
// keep.
func (r *ChatRepository) scan(keep func(*core.Chat) bool) ([]*core.Chat, error) {
	var results []*core.Chat
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chatRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var chat *core.Chat
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chat, err = storage.UnmarshalChat(val)
				return err
			})
			if err != nil {
				return err
			}
			if chat != nil && keep(chat) {
				results = append(results, chat)
			}
		}
		return nil
	}, false)
	return results, err
}

// readChat reads a chat from the transaction. Returns (nil, nil) when the
// key is absent.
func readChat(tx *badger.Txn, key []byte) (*core.Chat, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var chat *core.Chat
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		chat, unmarshalErr = storage.UnmarshalChat(val)
		return unmarshalErr
	})
	return chat, err
}
