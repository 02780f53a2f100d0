package file

import (
	"context"
	"sync"
	"time"

	"github.com/poiesic/adboard/core"
	"github.com/poiesic/adboard/storage"
)

// ChatRepository implements storage.ChatRepository on a JSON-array
// collection file. Messages are embedded in their chat record, so one file
// holds the whole chat family.
type ChatRepository struct {
	mu    sync.Mutex
	path  string
	items []*core.Chat

	backend *Backend
}

var _ storage.ChatRepository = (*ChatRepository)(nil)

// NewChatRepository loads the chats collection from the backend's data
// directory.
func NewChatRepository(backend *Backend) (*ChatRepository, error) {
	path := backend.path(backend.files.Chats)
	return &ChatRepository{
		path:    path,
		items:   loadCollection[*core.Chat](path, backend.logger),
		backend: backend,
	}, nil
}

// Close is a no-op: the collection is rewritten on every mutation.
func (r *ChatRepository) Close() error {
	return nil
}

func (r *ChatRepository) dump() error {
	return dumpCollection(r.path, r.items, r.backend.logger)
}

func (r *ChatRepository) indexOf(id core.ID) int {
	for i, c := range r.items {
		if c.Id == id {
			return i
		}
	}
	return -1
}

// pairIndexOf finds the chat holding exactly the unordered pair (a, b).
func (r *ChatRepository) pairIndexOf(a, b core.ID) int {
	for i, c := range r.items {
		if len(c.Users) == 2 && c.HasUser(a) && c.HasUser(b) {
			return i
		}
	}
	return -1
}

// GetAll returns all chats with their embedded messages.
func (r *ChatRepository) GetAll(ctx context.Context) ([]*core.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*core.Chat, 0, len(r.items))
	for _, c := range r.items {
		result = append(result, cloneChat(c))
	}
	return result, nil
}

// Get retrieves a chat by id.
func (r *ChatRepository) Get(ctx context.Context, id core.ID) (*core.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}
	return cloneChat(r.items[idx]), nil
}

// GetByUser returns every chat the user participates in.
func (r *ChatRepository) GetByUser(ctx context.Context, user core.ID) ([]*core.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*core.Chat
	for _, c := range r.items {
		if c.HasUser(user) {
			result = append(result, cloneChat(c))
		}
	}
	return result, nil
}

// GetByUserPair retrieves the single chat between the unordered pair.
func (r *ChatRepository) GetByUserPair(ctx context.Context, a, b core.ID) (*core.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.pairIndexOf(a, b)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}
	return cloneChat(r.items[idx]), nil
}

// Add inserts a chat under a freshly allocated sequential id. The pair
// check and the insert happen under one lock, so two concurrent adds for
// the same pair cannot both succeed.
func (r *ChatRepository) Add(ctx context.Context, chat *core.Chat) (core.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(chat.Users) == 2 && r.pairIndexOf(chat.Users[0], chat.Users[1]) != -1 {
		return "", storage.ErrDuplicateKey
	}

	stored := cloneChat(chat)
	stored.Id = nextSequentialID(len(r.items), func(id core.ID) bool {
		return r.indexOf(id) != -1
	})
	stored.Messages = []core.Message{}

	r.items = append(r.items, stored)
	if err := r.dump(); err != nil {
		r.items = r.items[:len(r.items)-1]
		return "", err
	}
	return stored.Id, nil
}

// AppendMessage appends the message to the chat's embedded sequence.
func (r *ChatRepository) AppendMessage(ctx context.Context, chatID core.ID, msg *core.Message) (*core.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(chatID)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}

	stored := cloneMessage(msg)
	stored.ChatId = chatID
	chat := r.items[idx]
	chat.Messages = append(chat.Messages, *stored)
	if err := r.dump(); err != nil {
		chat.Messages = chat.Messages[:len(chat.Messages)-1]
		return nil, err
	}
	return cloneMessage(stored), nil
}

// Messages returns the chat's messages in insertion order.
func (r *ChatRepository) Messages(ctx context.Context, chatID core.ID) ([]*core.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(chatID)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}

	chat := r.items[idx]
	result := make([]*core.Message, 0, len(chat.Messages))
	for i := range chat.Messages {
		result = append(result, cloneMessage(&chat.Messages[i]))
	}
	return result, nil
}

// SetMessageRead stamps the message's ReadAt and returns the updated
// message.
func (r *ChatRepository) SetMessageRead(ctx context.Context, chatID, msgID core.ID, at time.Time) (*core.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(chatID)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}

	chat := r.items[idx]
	for i := range chat.Messages {
		if chat.Messages[i].Id != msgID {
			continue
		}
		prev := chat.Messages[i].ReadAt
		stamp := at
		chat.Messages[i].ReadAt = &stamp
		if err := r.dump(); err != nil {
			chat.Messages[i].ReadAt = prev
			return nil, err
		}
		return cloneMessage(&chat.Messages[i]), nil
	}
	return nil, storage.ErrNotFound
}
