package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/mww/league_dashboard/db"
	"github.com/mww/league_dashboard/model"
)

func (c *controller) AddTeam(ctx context.Context, userID string, tc *model.TeamCreate) (*model.Team, error) {
	name := strings.TrimSpace(tc.Name)
	if name == "" {
		return nil, invalidf("a team name must be provided")
	}

	// Resolve the league up front so the caller gets a real error instead
	// of a foreign key violation.
	if _, err := c.db.GetLeague(ctx, tc.LeagueID); err != nil {
		return nil, err
	}

	team := &model.Team{
		UserID:        userID,
		LeagueID:      tc.LeagueID,
		Name:          name,
		ExternalID:    strings.TrimSpace(tc.ExternalID),
		Wins:          tc.Wins,
		Losses:        tc.Losses,
		Ties:          tc.Ties,
		PointsFor:     tc.PointsFor,
		PointsAgainst: tc.PointsAgainst,
		Standing:      tc.Standing,
		Active:        true,
	}
	if err := c.db.AddTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("error adding team: %w", err)
	}

	return team, nil
}

func (c *controller) GetUserTeams(ctx context.Context, userID string) ([]model.Team, error) {
	return c.db.GetUserTeams(ctx, userID)
}

func (c *controller) UpdateTeam(ctx context.Context, userID string, id int32, u *model.TeamUpdate) (*model.Team, error) {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return nil, invalidf("a team name cannot be empty")
	}

	if err := c.checkTeamOwner(ctx, userID, id); err != nil {
		return nil, err
	}

	return c.db.UpdateTeam(ctx, id, u)
}

// checkTeamOwner returns ErrTeamNotFound when the team doesn't exist or
// belongs to a different user. Other users' teams are never acknowledged.
func (c *controller) checkTeamOwner(ctx context.Context, userID string, id int32) error {
	team, err := c.db.GetTeam(ctx, id)
	if err != nil {
		return err
	}
	if team.UserID != userID {
		return db.ErrTeamNotFound
	}
	return nil
}

func (c *controller) GetDashboard(ctx context.Context, userID string) ([]model.TeamSummary, error) {
	teams, err := c.db.GetUserTeams(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Most users have several teams in the same league, so cache lookups.
	leagues := make(map[int32]*model.League)
	summaries := make([]model.TeamSummary, 0, len(teams))
	for _, t := range teams {
		league, ok := leagues[t.LeagueID]
		if !ok {
			league, err = c.db.GetLeague(ctx, t.LeagueID)
			if err != nil {
				return nil, fmt.Errorf("error loading league %d for team %d: %w", t.LeagueID, t.ID, err)
			}
			leagues[t.LeagueID] = league
		}

		summaries = append(summaries, model.TeamSummary{
			Team:       t,
			LeagueName: league.Name,
			Sport:      league.Sport,
			Season:     league.Season,
			WinPct:     t.WinPct(),
			Band:       t.PerformanceBand(),
			Trend:      t.Trend(),
		})
	}

	return summaries, nil
}
