package model

import (
	"encoding/json"
	"time"
)

const (
	PlatformESPN    = "ESPN"
	PlatformYahoo   = "Yahoo"
	PlatformSleeper = "Sleeper"
)

func IsPlatformSupported(platform string) bool {
	switch platform {
	case PlatformESPN, PlatformYahoo, PlatformSleeper:
		return true
	default:
		return false
	}
}

type League struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Sport    string `json:"sport"`
	Season   string `json:"season"`
	// ExternalID is the league's id on the platform it came from.
	ExternalID string          `json:"leagueId"`
	Settings   json.RawMessage `json:"settings,omitempty"`
	Created    time.Time       `json:"createdAt"`
	Updated    time.Time       `json:"updatedAt"`
}

// LeagueCreate is the request payload for creating a league. Server managed
// fields (id, timestamps) are deliberately absent.
type LeagueCreate struct {
	Name       string          `json:"name" validate:"required,max=255"`
	Platform   string          `json:"platform" validate:"required,max=50"`
	Sport      string          `json:"sport" validate:"required,max=50"`
	Season     string          `json:"season" validate:"required,max=10"`
	ExternalID string          `json:"leagueId" validate:"required"`
	Settings   json.RawMessage `json:"settings,omitempty"`
}
