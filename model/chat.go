package model

import "time"

// ChatMessage is immutable once created. Retrieval is newest first.
type ChatMessage struct {
	ID       int32     `json:"id"`
	LeagueID int32     `json:"leagueId"`
	UserID   string    `json:"userId"`
	Message  string    `json:"message"`
	Created  time.Time `json:"createdAt"`
}

type ChatMessageCreate struct {
	Message string `json:"message" validate:"required"`
}
