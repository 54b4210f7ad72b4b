package controller

import (
	"github.com/mww/league_dashboard/model"
)

type sleeperAdapter struct {
	c *controller
}

func (a *sleeperAdapter) getLeagues(username, season string) ([]model.League, error) {
	userID, err := a.c.sleeper.GetUserID(username)
	if err != nil {
		return nil, err
	}

	return a.c.sleeper.GetLeaguesForUser(userID, season)
}
