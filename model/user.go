package model

import "time"

// User is the identity record from the auth provider. The ID is the
// provider's subject id, not something we generate.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Created         time.Time `json:"createdAt"`
	Updated         time.Time `json:"updatedAt"`
}

// Session maps a browser cookie to a user until expire.
type Session struct {
	ID     string
	UserID string
	Expire time.Time
}
