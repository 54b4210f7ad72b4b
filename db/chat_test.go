package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/mww/league_dashboard/model"
)

func TestChatMessages(t *testing.T) {
	ctx := context.Background()
	u := mustUpsertUser(t)
	l := mustAddLeague(t, "Chat League")

	for i := 1; i <= 5; i++ {
		m := &model.ChatMessage{
			LeagueID: l.ID,
			UserID:   u.ID,
			Message:  fmt.Sprintf("message %d", i),
		}
		if err := testDB.AddChatMessage(ctx, m); err != nil {
			t.Fatalf("error adding chat message %d: %v", i, err)
		}
		if m.ID <= 0 {
			t.Errorf("message ID was not set as expected: %d", m.ID)
		}
		if m.Created.IsZero() {
			t.Errorf("expected created time to not be zero")
		}
	}

	// Newest first with the default limit.
	msgs, err := testDB.GetLeagueChatMessages(ctx, l.ID, 0)
	if err != nil {
		t.Fatalf("error getting chat messages: %v", err)
	}
	assertFatalf(t, len(msgs) == 5, "expected 5 messages, got %d", len(msgs))
	assertEquals(t, "msgs[0].Message", "message 5", msgs[0].Message)
	assertEquals(t, "msgs[4].Message", "message 1", msgs[4].Message)
	for i := 1; i < len(msgs); i++ {
		if msgs[i].Created.After(msgs[i-1].Created) {
			t.Errorf("messages are not ordered newest first at index %d", i)
		}
	}

	// A limit bounds the result, still newest first.
	msgs, err = testDB.GetLeagueChatMessages(ctx, l.ID, 2)
	if err != nil {
		t.Fatalf("error getting chat messages with limit: %v", err)
	}
	assertFatalf(t, len(msgs) == 2, "expected 2 messages, got %d", len(msgs))
	assertEquals(t, "msgs[0].Message", "message 5", msgs[0].Message)
	assertEquals(t, "msgs[1].Message", "message 4", msgs[1].Message)

	// A league with no messages returns an empty slice, not an error.
	other := mustAddLeague(t, "Quiet League")
	msgs, err = testDB.GetLeagueChatMessages(ctx, other.ID, 0)
	if err != nil {
		t.Fatalf("error getting chat messages for empty league: %v", err)
	}
	assertEquals(t, "num messages", 0, len(msgs))
}
