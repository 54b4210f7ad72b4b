package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mww/league_dashboard/model"
)

func (c *controller) AddLeague(ctx context.Context, lc *model.LeagueCreate) (*model.League, error) {
	name := strings.TrimSpace(lc.Name)
	if name == "" {
		return nil, invalidf("a league name must be provided")
	}
	if !model.IsPlatformSupported(lc.Platform) {
		return nil, invalidf("%s is not a supported platform", lc.Platform)
	}
	externalID := strings.TrimSpace(lc.ExternalID)
	if externalID == "" {
		return nil, invalidf("a platform league id must be provided")
	}

	league := &model.League{
		Name:       name,
		Platform:   lc.Platform,
		Sport:      strings.TrimSpace(lc.Sport),
		Season:     strings.TrimSpace(lc.Season),
		ExternalID: externalID,
		Settings:   lc.Settings,
	}
	if err := c.db.AddLeague(ctx, league); err != nil {
		return nil, fmt.Errorf("error adding league: %w", err)
	}

	return league, nil
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	return c.db.GetLeague(ctx, id)
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) GetLeagueTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	// Verify the league exists so a bad id is an error rather than an
	// empty list.
	if _, err := c.db.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	return c.db.GetLeagueTeams(ctx, leagueID)
}

func (c *controller) GetLeaguesFromPlatform(ctx context.Context, username, platform, season string) ([]model.League, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, invalidf("a username must be provided")
	}
	if _, err := time.Parse("2006", season); err != nil {
		return nil, invalidf("season must be a 4-digit year, got '%s'", season)
	}

	adapter := getPlatformAdapter(platform, c)
	return adapter.getLeagues(username, season)
}
