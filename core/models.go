package core

//go:generate go run ../cmd/musgen

import "time"

// ID is a unique identifier for domain entities.
// Both backends render ids as decimal strings so datasets stay
// format-compatible when switching storage kinds.
type ID string

// Image is a named reference to an uploaded listing picture.
type Image struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Listing is a single classified advertisement.
// A soft-deleted listing stays in storage but is excluded from every
// default read path except the owner's history.
type Listing struct {
	Id          ID         `json:"id"`
	ShortText   string     `json:"shortText"`
	Description string     `json:"description"`
	Images      []Image    `json:"images"`
	OwnerId     ID         `json:"ownerId"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	IsDeleted   bool       `json:"isDeleted"`
}

// User is a registered account. PasswordHash and Salt are derived from the
// signup credential before persistence; the plaintext is never stored.
type User struct {
	Id           ID     `json:"id"`
	Login        string `json:"login"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Salt         string `json:"salt"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// Chat is the conversation between exactly one unordered pair of users.
// The file backend embeds Messages inline; the badger backend stores them
// referenced by chat id and leaves Messages nil on chat reads.
type Chat struct {
	Id        ID        `json:"id"`
	Users     []ID      `json:"users"`
	CreatedAt time.Time `json:"createdAt"`
	Messages  []Message `json:"messages,omitempty"`
}

// HasUser reports whether id is one of the chat's participants.
func (c *Chat) HasUser(id ID) bool {
	for _, u := range c.Users {
		if u == id {
			return true
		}
	}
	return false
}

// Counterpart returns the other participant of the pair.
func (c *Chat) Counterpart(id ID) ID {
	for _, u := range c.Users {
		if u != id {
			return u
		}
	}
	return id
}

// Message is a single chat message. A nil ReadAt means unread; the field
// transitions from unset to set exactly once.
type Message struct {
	Id         ID         `json:"id"`
	ChatId     ID         `json:"chat"`
	AuthorId   ID         `json:"authorId"`
	AuthorName string     `json:"authorName"`
	Text       string     `json:"text"`
	SentAt     time.Time  `json:"sentAt"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
}

// IsRead reports whether the message has a read timestamp.
func (m *Message) IsRead() bool {
	return m.ReadAt != nil
}

// ChatStats is the derived unread/total view for one chat, computed on
// demand and never persisted.
type ChatStats struct {
	ChatId ID
	Unread int
	Total  int
}

// SearchCriteria describes a multi-criterion listing search. Criteria are
// OR-combined: a listing matching any supplied field is part of the result.
// An empty criteria object matches nothing, not everything.
type SearchCriteria struct {
	Text        string
	Description string
	Tags        []string
	OwnerId     ID
	OwnerIds    []ID
}

// IsEmpty reports whether no criterion is set.
func (c *SearchCriteria) IsEmpty() bool {
	return c.Text == "" && c.Description == "" && len(c.Tags) == 0 &&
		c.OwnerId == "" && len(c.OwnerIds) == 0
}
