package controller

import (
	"context"
	"testing"

	"github.com/mww/league_dashboard/testutils"
)

func TestPostChatMessage(t *testing.T) {
	ctx := context.Background()

	ctrl, testCtrl := controllerForTest()
	defer testCtrl.Close()

	league := addLeagueForTest(ctx, t, ctrl, "Chat League")

	tests := map[string]struct {
		leagueID int32
		message  string
		exMsg    string
		exErrMsg string
	}{
		"success":        {leagueID: league.ID, message: "Who wants to trade?", exMsg: "Who wants to trade?"},
		"trimmed":        {leagueID: league.ID, message: "  good game  ", exMsg: "good game"},
		"empty message":  {leagueID: league.ID, message: "   ", exErrMsg: "a message must be provided"},
		"unknown league": {leagueID: 987654, message: "hello?", exErrMsg: "league not found"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			msg, err := ctrl.PostChatMessage(ctx, tc.leagueID, testutils.CommishUser.ID, tc.message)

			if tc.exErrMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error posting message: %v", err)
				}
				if msg.ID <= 0 {
					t.Errorf("message ID was not set as expected: %d", msg.ID)
				}
				if msg.Message != tc.exMsg {
					t.Errorf("message not as expected, got: %q", msg.Message)
				}
			} else {
				if err == nil || err.Error() != tc.exErrMsg {
					t.Errorf("expected error: %s, got: %v", tc.exErrMsg, err)
				}
			}
		})
	}

	msgs, err := ctrl.GetLeagueChatMessages(ctx, league.ID, 0)
	if err != nil {
		t.Fatalf("error getting chat messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	// Newest first.
	if msgs[0].Message != "good game" || msgs[1].Message != "Who wants to trade?" {
		t.Errorf("messages out of order: %v", msgs)
	}
}
