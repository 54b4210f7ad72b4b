package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of a single week.
type Result string

const (
	ResultWin     Result = "W"
	ResultLoss    Result = "L"
	ResultTie     Result = "T"
	ResultUnknown Result = ""
)

// ParseResult normalizes a result code. Anything other than W, L, or T is
// returned as ResultUnknown.
func ParseResult(s string) Result {
	switch s {
	case "W", "w":
		return ResultWin
	case "L", "l":
		return ResultLoss
	case "T", "t":
		return ResultTie
	default:
		return ResultUnknown
	}
}

type WeeklyStats struct {
	ID             int32           `json:"id"`
	TeamID         int32           `json:"teamId"`
	Week           int             `json:"week"`
	Year           int             `json:"year"`
	Points         decimal.Decimal `json:"points"`
	OpponentPoints decimal.Decimal `json:"opponentPoints"`
	Result         Result          `json:"result,omitempty"`
	Created        time.Time       `json:"createdAt"`
}

type WeeklyStatsCreate struct {
	Week           int             `json:"week" validate:"required,gte=1,lte=18"`
	Year           int             `json:"year" validate:"required,gte=2000,lte=2100"`
	Points         decimal.Decimal `json:"points"`
	OpponentPoints decimal.Decimal `json:"opponentPoints"`
	Result         string          `json:"result" validate:"omitempty,oneof=W L T"`
}
