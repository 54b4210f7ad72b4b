package model

import "time"

// Connection holds a user's oauth tokens for one fantasy platform. Tokens are
// never serialized to clients. Connections are soft-deactivated, not deleted.
type Connection struct {
	ID           int32     `json:"id"`
	UserID       string    `json:"userId"`
	Platform     string    `json:"platform"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Active       bool      `json:"isActive"`
	Created      time.Time `json:"createdAt"`
	Updated      time.Time `json:"updatedAt"`
}

// ConnectionUpdate is a partial update. Nil fields are left untouched.
type ConnectionUpdate struct {
	AccessToken  *string
	RefreshToken *string
	ExpiresAt    *time.Time
	Active       *bool
}
