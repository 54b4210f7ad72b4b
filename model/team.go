package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Performance bands for the dashboard, derived from a team's win percentage.
const (
	BandFavorable   = "favorable"   // win pct >= 0.7
	BandNeutral     = "neutral"     // win pct >= 0.5
	BandUnfavorable = "unfavorable" // everything else
)

const (
	TrendUp   = "up"
	TrendDown = "down"
)

type Team struct {
	ID       int32  `json:"id"`
	UserID   string `json:"userId"`
	LeagueID int32  `json:"leagueId"`
	Name     string `json:"teamName"`
	// ExternalID is the team's id on the fantasy platform.
	ExternalID    string          `json:"teamId"`
	Wins          int             `json:"wins"`
	Losses        int             `json:"losses"`
	Ties          int             `json:"ties"`
	PointsFor     decimal.Decimal `json:"pointsFor"`
	PointsAgainst decimal.Decimal `json:"pointsAgainst"`
	// Standing is the team's rank within its league, 0 when not yet known.
	Standing int       `json:"standing,omitempty"`
	Active   bool      `json:"isActive"`
	Created  time.Time `json:"createdAt"`
	Updated  time.Time `json:"updatedAt"`
}

// WinPct returns the fraction of completed games the team has won.
// A team with no completed games has a win percentage of 0.
func (t *Team) WinPct() float64 {
	games := t.Wins + t.Losses + t.Ties
	if games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(games)
}

func (t *Team) PerformanceBand() string {
	pct := t.WinPct()
	if pct >= 0.7 {
		return BandFavorable
	}
	if pct >= 0.5 {
		return BandNeutral
	}
	return BandUnfavorable
}

func (t *Team) Trend() string {
	if t.PointsFor.GreaterThan(t.PointsAgainst) {
		return TrendUp
	}
	return TrendDown
}

// TeamCreate is the request payload for creating a team. The owning user is
// always taken from the session, never from the body.
type TeamCreate struct {
	LeagueID      int32           `json:"leagueId" validate:"required,gt=0"`
	Name          string          `json:"teamName" validate:"required,max=255"`
	ExternalID    string          `json:"teamId" validate:"required"`
	Wins          int             `json:"wins" validate:"gte=0"`
	Losses        int             `json:"losses" validate:"gte=0"`
	Ties          int             `json:"ties" validate:"gte=0"`
	PointsFor     decimal.Decimal `json:"pointsFor"`
	PointsAgainst decimal.Decimal `json:"pointsAgainst"`
	Standing      int             `json:"standing" validate:"gte=0"`
}

// TeamUpdate is a partial update. Nil fields are left untouched.
type TeamUpdate struct {
	Name          *string          `json:"teamName,omitempty"`
	ExternalID    *string          `json:"teamId,omitempty"`
	Wins          *int             `json:"wins,omitempty"`
	Losses        *int             `json:"losses,omitempty"`
	Ties          *int             `json:"ties,omitempty"`
	PointsFor     *decimal.Decimal `json:"pointsFor,omitempty"`
	PointsAgainst *decimal.Decimal `json:"pointsAgainst,omitempty"`
	Standing      *int             `json:"standing,omitempty"`
	Active        *bool            `json:"isActive,omitempty"`
}

// TeamSummary is a dashboard row: the team plus its league's metadata and
// the derived display values the client used to compute itself.
type TeamSummary struct {
	Team       Team    `json:"team"`
	LeagueName string  `json:"leagueName"`
	Sport      string  `json:"sport"`
	Season     string  `json:"season"`
	WinPct     float64 `json:"winPct"`
	Band       string  `json:"band"`
	Trend      string  `json:"trend"`
}
