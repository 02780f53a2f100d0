package core

import (
	"testing"
	"time"
)

func TestChatHasUser(t *testing.T) {
	chat := &Chat{Users: []ID{"1", "2"}}

	if !chat.HasUser("1") || !chat.HasUser("2") {
		t.Error("HasUser() = false for a participant")
	}
	if chat.HasUser("3") {
		t.Error("HasUser() = true for a non-participant")
	}
}

func TestChatCounterpart(t *testing.T) {
	chat := &Chat{Users: []ID{"1", "2"}}

	if got := chat.Counterpart("1"); got != "2" {
		t.Errorf("Counterpart(1) = %s, want 2", got)
	}
	if got := chat.Counterpart("2"); got != "1" {
		t.Errorf("Counterpart(2) = %s, want 1", got)
	}
}

func TestMessageIsRead(t *testing.T) {
	msg := &Message{}
	if msg.IsRead() {
		t.Error("IsRead() = true for a message without a read timestamp")
	}

	now := time.Now()
	msg.ReadAt = &now
	if !msg.IsRead() {
		t.Error("IsRead() = false for a message with a read timestamp")
	}
}

func TestSearchCriteriaIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		criteria SearchCriteria
		want     bool
	}{
		{"zero value", SearchCriteria{}, true},
		{"text set", SearchCriteria{Text: "bike"}, false},
		{"description set", SearchCriteria{Description: "red frame"}, false},
		{"tags set", SearchCriteria{Tags: []string{"sport"}}, false},
		{"owner set", SearchCriteria{OwnerId: "1"}, false},
		{"owners set", SearchCriteria{OwnerIds: []ID{"1", "2"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
