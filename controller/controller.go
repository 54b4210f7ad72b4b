package controller

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/league_dashboard/db"
	"github.com/mww/league_dashboard/model"
	"github.com/mww/league_dashboard/platforms/sleeper"
	"golang.org/x/oauth2"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Starts the identity provider login flow. Returns the URL to redirect
	// the browser to.
	LoginStart() (string, error)
	// Completes the login flow: exchanges the code, resolves the identity,
	// upserts the user, and creates a session.
	Login(ctx context.Context, state, code string) (*model.Session, error)
	Logout(ctx context.Context, sid string) error
	// GetSessionUser resolves a session cookie to its user. Expired sessions
	// are treated the same as missing ones.
	GetSessionUser(ctx context.Context, sid string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	RunPeriodicSessionCleanup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	AddLeague(ctx context.Context, lc *model.LeagueCreate) (*model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	GetLeagueTeams(ctx context.Context, leagueID int32) ([]model.Team, error)
	// GetLeaguesFromPlatform looks up the leagues a user belongs to on an
	// external platform. Only Sleeper supports discovery.
	GetLeaguesFromPlatform(ctx context.Context, username, platform, season string) ([]model.League, error)

	AddTeam(ctx context.Context, userID string, tc *model.TeamCreate) (*model.Team, error)
	GetUserTeams(ctx context.Context, userID string) ([]model.Team, error)
	// UpdateTeam applies a partial update to one of userID's teams. Teams
	// owned by anyone else are reported as not found.
	UpdateTeam(ctx context.Context, userID string, id int32, u *model.TeamUpdate) (*model.Team, error)
	// GetDashboard returns the user's teams joined with league metadata and
	// the derived display values.
	GetDashboard(ctx context.Context, userID string) ([]model.TeamSummary, error)

	PostChatMessage(ctx context.Context, leagueID int32, userID, message string) (*model.ChatMessage, error)
	GetLeagueChatMessages(ctx context.Context, leagueID int32, limit int) ([]model.ChatMessage, error)

	// AddWeeklyStats records a weekly result for one of userID's teams.
	// Teams owned by anyone else are reported as not found.
	AddWeeklyStats(ctx context.Context, userID string, teamID int32, sc *model.WeeklyStatsCreate) (*model.WeeklyStats, error)
	GetTeamWeeklyStats(ctx context.Context, teamID int32) ([]model.WeeklyStats, error)

	// LinkStart begins the oauth flow to connect a fantasy platform account.
	LinkStart(userID, platform string) (string, error)
	LinkComplete(ctx context.Context, state, code string) (*model.Connection, error)
	GetUserConnections(ctx context.Context, userID string) ([]model.Connection, error)
	// GetConnectionToken returns the user's token for a platform, refreshing
	// and persisting it when expired.
	GetConnectionToken(ctx context.Context, userID, platform string) (*oauth2.Token, error)
}

// IdentityProvider describes the oauth identity provider used for login.
type IdentityProvider struct {
	Config      *oauth2.Config
	UserInfoURL string
}

type controller struct {
	clock       clock.Clock
	db          db.DB
	sleeper     sleeper.Client
	identity    *IdentityProvider
	yahooConfig *oauth2.Config

	mu          sync.Mutex
	oauthStates map[string]*oauthState
}

func New(clock clock.Clock, db db.DB, sleeper sleeper.Client, identity *IdentityProvider, yahooConfig *oauth2.Config) (C, error) {
	c := &controller{
		clock:       clock,
		db:          db,
		sleeper:     sleeper,
		identity:    identity,
		yahooConfig: yahooConfig,
		oauthStates: make(map[string]*oauthState),
	}
	return c, nil
}

// oauthState tracks an in-flight oauth flow. Login flows have an empty
// userID and platform; link flows carry both.
type oauthState struct {
	userID   string
	platform string
	expiry   time.Time
}

func (c *controller) saveState(state string, s *oauthState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.oauthStates[state] = s
}

func (c *controller) takeState(state string) (*oauthState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.oauthStates[state]
	if !ok {
		return nil, false
	}
	delete(c.oauthStates, state)
	if c.clock.Now().After(s.expiry) {
		return nil, false
	}
	return s, true
}

func generateRandomState() string {
	var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b := make([]rune, 15)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// When we need to make calls that are specific to a platform, grab a platform
// adapter and it will do it. This is internal to the controller package.
type platformAdapter interface {
	getLeagues(username, season string) ([]model.League, error)
}

func getPlatformAdapter(platform string, c *controller) platformAdapter {
	switch platform {
	case model.PlatformSleeper:
		return &sleeperAdapter{c}
	default:
		return &nilPlatformAdapter{err: fmt.Errorf("league discovery is not supported for %s", platform)}
	}
}

// nilPlatformAdapter exists so that we can always return an adapter and simplify
// the usage. It eliminates the need for an extra error check.
type nilPlatformAdapter struct {
	err error
}

func (a *nilPlatformAdapter) getLeagues(username, season string) ([]model.League, error) {
	return nil, a.err
}
