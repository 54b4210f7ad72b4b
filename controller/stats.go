package controller

import (
	"context"
	"fmt"

	"github.com/mww/league_dashboard/model"
)

func (c *controller) AddWeeklyStats(ctx context.Context, userID string, teamID int32, sc *model.WeeklyStatsCreate) (*model.WeeklyStats, error) {
	if sc.Week < 1 || sc.Week > 18 {
		return nil, invalidf("week must be between 1 and 18, got %d", sc.Week)
	}
	if sc.Year < 2000 || sc.Year > 2100 {
		return nil, invalidf("%d is not a valid year", sc.Year)
	}

	result := model.ParseResult(sc.Result)
	if sc.Result != "" && result == model.ResultUnknown {
		return nil, invalidf("result must be one of W, L, or T, got '%s'", sc.Result)
	}

	// Resolve the team up front so the caller gets a real error instead of a
	// foreign key violation, and so one user cannot write another's history.
	if err := c.checkTeamOwner(ctx, userID, teamID); err != nil {
		return nil, err
	}

	stats := &model.WeeklyStats{
		TeamID:         teamID,
		Week:           sc.Week,
		Year:           sc.Year,
		Points:         sc.Points,
		OpponentPoints: sc.OpponentPoints,
		Result:         result,
	}
	if err := c.db.AddWeeklyStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("error adding weekly stats: %w", err)
	}

	return stats, nil
}

func (c *controller) GetTeamWeeklyStats(ctx context.Context, teamID int32) ([]model.WeeklyStats, error) {
	return c.db.GetTeamWeeklyStats(ctx, teamID)
}
