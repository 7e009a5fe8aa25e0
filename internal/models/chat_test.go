package models

import (
	"fmt"
	"testing"
)

func TestTrimChatHistory(t *testing.T) {
	t.Parallel()

	short := []ChatMessage{{ID: "a"}, {ID: "b"}}
	if got := TrimChatHistory(short); len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("expected short history untouched, got %+v", got)
	}

	long := make([]ChatMessage, MaxChatHistoryMessages+30)
	for index := range long {
		long[index] = ChatMessage{ID: fmt.Sprintf("m%d", index), Timestamp: int64(index)}
	}
	trimmed := TrimChatHistory(long)
	if len(trimmed) != MaxChatHistoryMessages {
		t.Fatalf("expected %d messages after trim, got %d", MaxChatHistoryMessages, len(trimmed))
	}
	if trimmed[0].ID != "m30" {
		t.Fatalf("expected oldest messages dropped, first kept is %s", trimmed[0].ID)
	}
	if trimmed[len(trimmed)-1].ID != fmt.Sprintf("m%d", len(long)-1) {
		t.Fatalf("expected newest message kept, got %s", trimmed[len(trimmed)-1].ID)
	}
	for index := 1; index < len(trimmed); index++ {
		if trimmed[index].Timestamp <= trimmed[index-1].Timestamp {
			t.Fatal("expected order preserved after trim")
		}
	}
}
