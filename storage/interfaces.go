package storage

import (
	"context"
	"time"

	"github.com/poiesic/adboard/core"
)

// Repository provides operations shared across all backend repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close closes the repository and releases its resources.
	Close() error
}

// ListingRepository provides the low-level collection operations for
// listings. Every read path except GetAllByOwner excludes soft-deleted
// listings.
type ListingRepository interface {
	Repository

	// GetAll returns all listings that are not soft-deleted.
	GetAll(ctx context.Context) ([]*core.Listing, error)

	// Get retrieves a listing by id.
	// Returns ErrNotFound if the listing doesn't exist or is soft-deleted.
	Get(ctx context.Context, id core.ID) (*core.Listing, error)

	// GetByText returns listings whose ShortText matches any whitespace
	// token of text, case-insensitively.
	GetByText(ctx context.Context, text string) ([]*core.Listing, error)

	// GetByDescription returns listings whose Description matches any
	// whitespace token of text, case-insensitively.
	GetByDescription(ctx context.Context, text string) ([]*core.Listing, error)

	// GetByTags returns listings carrying every one of the given tags.
	GetByTags(ctx context.Context, tags []string) ([]*core.Listing, error)

	// GetByOwner returns the owner's listings.
	GetByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error)

	// GetByOwners returns listings owned by any of the given users.
	GetByOwners(ctx context.Context, owners []core.ID) ([]*core.Listing, error)

	// GetAllByOwner returns the owner's listings including soft-deleted
	// ones, for profile and history views.
	GetAllByOwner(ctx context.Context, owner core.ID) ([]*core.Listing, error)

	// Add inserts a listing, assigning it a fresh id.
	// Returns the stored listing with the id populated.
	Add(ctx context.Context, listing *core.Listing) (*core.Listing, error)

	// Update replaces the stored listing with the given one, keeping id.
	// Returns ErrNotFound if the listing doesn't exist.
	Update(ctx context.Context, id core.ID, listing *core.Listing) (*core.Listing, error)

	// MarkDeleted sets the soft-delete flag. The record stays in storage.
	// Returns ErrNotFound if the listing doesn't exist.
	MarkDeleted(ctx context.Context, id core.ID) error

	// Delete physically removes the listing.
	// Returns ErrNotFound if the listing doesn't exist.
	Delete(ctx context.Context, id core.ID) error
}

// UserRepository provides the low-level collection operations for users.
type UserRepository interface {
	Repository

	// GetAll returns all users.
	GetAll(ctx context.Context) ([]*core.User, error)

	// Get retrieves a user by id.
	// Returns ErrNotFound if the user doesn't exist.
	Get(ctx context.Context, id core.ID) (*core.User, error)

	// GetByLogin retrieves the user with exactly the given login.
	// Returns ErrNotFound if no such user exists.
	GetByLogin(ctx context.Context, login string) (*core.User, error)

	// GetByEmail returns users whose email contains the fragment,
	// case-insensitively.
	GetByEmail(ctx context.Context, fragment string) ([]*core.User, error)

	// Add inserts a user, assigning it a fresh id.
	// Returns ErrDuplicateKey if a user with the same login exists.
	Add(ctx context.Context, user *core.User) (*core.User, error)

	// Update replaces the stored user with the given one, keeping id.
	// Returns ErrNotFound if the user doesn't exist.
	Update(ctx context.Context, id core.ID, user *core.User) (*core.User, error)

	// Delete physically removes the user.
	// Returns ErrNotFound if the user doesn't exist.
	Delete(ctx context.Context, id core.ID) error
}

// ChatRepository provides the low-level collection operations for chats and
// their messages. The physical message layout is backend-specific: the file
// backend embeds messages in the chat record, the badger backend references
// them by chat id. Messages is the one portable way to read them.
type ChatRepository interface {
	Repository

	// GetAll returns all chats.
	GetAll(ctx context.Context) ([]*core.Chat, error)

	// Get retrieves a chat by id.
	// Returns ErrNotFound if the chat doesn't exist.
	Get(ctx context.Context, id core.ID) (*core.Chat, error)

	// GetByUser returns every chat the user participates in.
	GetByUser(ctx context.Context, user core.ID) ([]*core.Chat, error)

	// GetByUserPair retrieves the single chat between the unordered pair.
	// Returns ErrNotFound if no such chat exists.
	GetByUserPair(ctx context.Context, a, b core.ID) (*core.Chat, error)

	// Add inserts a chat, assigning it a fresh id.
	// Returns ErrDuplicateKey if a chat for the same pair already exists.
	Add(ctx context.Context, chat *core.Chat) (core.ID, error)

	// AppendMessage appends the message to the chat's sequence, preserving
	// insertion order. Returns ErrNotFound if the chat doesn't exist.
	AppendMessage(ctx context.Context, chatID core.ID, msg *core.Message) (*core.Message, error)

	// Messages returns the chat's messages in insertion order.
	// Returns ErrNotFound if the chat doesn't exist.
	Messages(ctx context.Context, chatID core.ID) ([]*core.Message, error)

	// SetMessageRead unconditionally stamps the message's ReadAt and
	// returns the updated message. Returns ErrNotFound if the chat or the
	// message doesn't exist. The read-state rules (participant, not the
	// author, monotonic) are enforced by the chat store, not here.
	SetMessageRead(ctx context.Context, chatID, msgID core.ID, at time.Time) (*core.Message, error)
}
