package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/mww/league_dashboard/model"
)

func (c *controller) PostChatMessage(ctx context.Context, leagueID int32, userID, message string) (*model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, invalidf("a message must be provided")
	}

	if _, err := c.db.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		LeagueID: leagueID,
		UserID:   userID,
		Message:  message,
	}
	if err := c.db.AddChatMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("error adding chat message: %w", err)
	}

	return msg, nil
}

func (c *controller) GetLeagueChatMessages(ctx context.Context, leagueID int32, limit int) ([]model.ChatMessage, error) {
	return c.db.GetLeagueChatMessages(ctx, leagueID, limit)
}
