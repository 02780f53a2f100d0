package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/adboard/core"
)

// Key prefixes for different data types. Prefixes never share a common
// stem, so a prefix iteration of one keyspace cannot pick up another.
const (
	listingRecordPrefix = "lstrec"
	listingOwnerPrefix  = "lstown"
	listingIDSeq        = "lstseq"
	userRecordPrefix    = "usrrec"
	userLoginPrefix     = "usrlog"
	userIDSeq           = "usrseq"
	chatRecordPrefix    = "chtrec"
	chatPairPrefix      = "chtpair"
	chatIDSeq           = "chtseq"
	messageRecordPrefix = "msgrec"
	messageOrderSeq     = "msgseq"
)

// makeListingKey generates a key for a listing record by ID.
func makeListingKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", listingRecordPrefix, id))
}

// makeListingOwnerKey generates a composite key for the owner index.
// Format: prefix:ownerID:listingID
func makeListingOwnerKey(owner, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", listingOwnerPrefix, owner, id))
}

// makePartialListingOwnerKey generates the iteration prefix for one
// owner's index entries.
func makePartialListingOwnerKey(owner core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:", listingOwnerPrefix, owner))
}

// makeUserKey generates a key for a user record by ID.
func makeUserKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", userRecordPrefix, id))
}

// makeUserLoginKey generates the unique login index key.
func makeUserLoginKey(login string) []byte {
	return []byte(fmt.Sprintf("%s:%s", userLoginPrefix, login))
}

// makeChatKey generates a key for a chat record by ID.
func makeChatKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", chatRecordPrefix, id))
}

// makeChatPairKey generates the unique index key for an unordered user
// pair. The pair is sorted so both orderings map to the same key.
func makeChatPairKey(a, b core.ID) []byte {
	if b < a {
		a, b = b, a
	}
	return []byte(fmt.Sprintf("%s:%s|%s", chatPairPrefix, a, b))
}

// makeMessageKey generates a composite key for a message.
// Format: prefix:chatID:orderSeq, with the sequence in BigEndian order so
// lexicographic iteration within a chat follows insertion order.
func makeMessageKey(chatID core.ID, seq uint64) []byte {
	prefix := []byte(fmt.Sprintf("%s:%s:", messageRecordPrefix, chatID))
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makePartialMessageKey generates the iteration prefix for one chat's
// messages.
func makePartialMessageKey(chatID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:", messageRecordPrefix, chatID))
}
