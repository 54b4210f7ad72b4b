package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mww/league_dashboard/model"
)

const SleeperURL = "https://api.sleeper.app"

// Client is a read-only view of the Sleeper API, just enough to let a user
// find their leagues. Sleeper's public API needs no credentials.
type Client interface {
	GetUserID(username string) (string, error)
	GetLeaguesForUser(userID, season string) ([]model.League, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return newForURL(SleeperURL), nil
}

// NewForTest returns a client that talks to a local fake server.
func NewForTest(url string) Client {
	return newForURL(url)
}

func newForURL(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *client) GetUserID(username string) (string, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/v1/user/%s", c.url, username))
	if err != nil {
		return "", fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Sleeper returns a 200 with a "null" body for unknown usernames.
	var parsed *sleeperUser
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("error parsing user response from sleeper: %w", err)
	}
	if parsed == nil {
		return "", fmt.Errorf("user not found")
	}

	return parsed.UserID, nil
}

func (c *client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/v1/user/%s/leagues/nfl/%s", c.url, userID, season))
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed []sleeperLeague
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing leagues response from sleeper: %w", err)
	}

	results := make([]model.League, 0, len(parsed))
	for _, l := range parsed {
		results = append(results, *l.toLeague())
	}

	return results, nil
}

type sleeperUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type sleeperLeague struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	Season   string `json:"season"`
	Sport    string `json:"sport"`
}

func (l *sleeperLeague) toLeague() *model.League {
	sport := l.Sport
	if sport == "nfl" {
		sport = "NFL"
	}
	return &model.League{
		Name:       l.Name,
		Platform:   model.PlatformSleeper,
		Sport:      sport,
		Season:     l.Season,
		ExternalID: l.LeagueID,
	}
}
