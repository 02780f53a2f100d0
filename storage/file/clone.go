package file

import (
	"slices"

	"github.com/poiesic/adboard/core"
)

// The repositories hand out copies so callers can't mutate the in-memory
// collection behind the mutex.

func cloneListing(l *core.Listing) *core.Listing {
	c := *l
	c.Images = slices.Clone(l.Images)
	c.Tags = slices.Clone(l.Tags)
	if l.UpdatedAt != nil {
		at := *l.UpdatedAt
		c.UpdatedAt = &at
	}
	return &c
}

func cloneUser(u *core.User) *core.User {
	c := *u
	return &c
}

func cloneMessage(m *core.Message) *core.Message {
	c := *m
	if m.ReadAt != nil {
		at := *m.ReadAt
		c.ReadAt = &at
	}
	return &c
}

func cloneChat(ch *core.Chat) *core.Chat {
	c := *ch
	c.Users = slices.Clone(ch.Users)
	c.Messages = make([]core.Message, len(ch.Messages))
	for i := range ch.Messages {
		c.Messages[i] = *cloneMessage(&ch.Messages[i])
	}
	return &c
}
