package storage

import (
	"testing"

	"github.com/poiesic/adboard/core"
	"github.com/stretchr/testify/assert"
)

func TestTokenMatcher(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{"single token hit", "bike", "Red mountain bike", true},
		{"case insensitive", "BIKE", "red mountain bike", true},
		{"or across tokens", "skis bike", "red mountain bike", true},
		{"substring match", "moun", "red mountain bike", true},
		{"no token hit", "boat", "red mountain bike", false},
		{"empty query matches nothing", "", "red mountain bike", false},
		{"whitespace query matches nothing", "   ", "red mountain bike", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTokenMatcher(tt.query)
			assert.Equal(t, tt.want, m.Match(tt.text))
		})
	}
}

func TestHasAllTags(t *testing.T) {
	tags := []string{"sport", "used"}

	assert.True(t, HasAllTags(tags, []string{"sport"}))
	assert.True(t, HasAllTags(tags, []string{"sport", "used"}))
	assert.False(t, HasAllTags(tags, []string{"sport", "new"}))
	assert.False(t, HasAllTags(tags, []string{"new"}))
	assert.False(t, HasAllTags(tags, nil))
	assert.False(t, HasAllTags(nil, []string{"sport"}))
}

func TestDedupeListings(t *testing.T) {
	a := &core.Listing{Id: "1"}
	b := &core.Listing{Id: "2"}
	c := &core.Listing{Id: "3"}

	result := DedupeListings(
		[]*core.Listing{a, b},
		[]*core.Listing{b, c},
		[]*core.Listing{a, c},
	)

	assert.Len(t, result, 3)
	assert.Equal(t, []*core.Listing{a, b, c}, result)
}

func TestDedupeListings_Empty(t *testing.T) {
	assert.Empty(t, DedupeListings())
	assert.Empty(t, DedupeListings(nil, nil))
}
