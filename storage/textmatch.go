package storage

import (
	"strings"

	"github.com/poiesic/adboard/core"
)

// TokenMatcher matches text against the whitespace-separated tokens of a
// query, case-insensitively. A text matches when it contains any token.
// An empty query yields a matcher that matches nothing.
type TokenMatcher struct {
	tokens []string
}

// NewTokenMatcher builds a matcher from a free-text query.
func NewTokenMatcher(query string) TokenMatcher {
	fields := strings.Fields(strings.ToLower(query))
	return TokenMatcher{tokens: fields}
}

// Match reports whether text contains at least one query token.
func (m TokenMatcher) Match(text string) bool {
	if len(m.tokens) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, tok := range m.tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// HasAllTags reports whether tags contains every wanted tag (AND semantics).
// An empty want list matches nothing.
func HasAllTags(tags, want []string) bool {
	if len(want) == 0 {
		return false
	}
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	for _, w := range want {
		if !set[w] {
			return false
		}
	}
	return true
}

// DedupeListings unions listing slices, keeping the first occurrence of
// each id and preserving encounter order.
func DedupeListings(groups ...[]*core.Listing) []*core.Listing {
	seen := make(map[core.ID]bool)
	var result []*core.Listing
	for _, group := range groups {
		for _, listing := range group {
			if seen[listing.Id] {
				continue
			}
			seen[listing.Id] = true
			result = append(result, listing)
		}
	}
	return result
}
