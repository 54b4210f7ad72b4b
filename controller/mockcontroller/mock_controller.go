package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/mww/league_dashboard/model"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

// MockController is a mock implementation of controller.C for testing the
// web layer without a database.
type MockController struct {
	mock.Mock
}

func (c *MockController) LoginStart() (string, error) {
	args := c.Called()
	return args.String(0), args.Error(1)
}

func (c *MockController) Login(ctx context.Context, state, code string) (*model.Session, error) {
	args := c.Called(ctx, state, code)
	var session *model.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*model.Session)
	}
	return session, args.Error(1)
}

func (c *MockController) Logout(ctx context.Context, sid string) error {
	args := c.Called(ctx, sid)
	return args.Error(0)
}

func (c *MockController) GetSessionUser(ctx context.Context, sid string) (*model.User, error) {
	args := c.Called(ctx, sid)
	var user *model.User
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	return user, args.Error(1)
}

func (c *MockController) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := c.Called(ctx, id)
	var user *model.User
	if args.Get(0) != nil {
		user = args.Get(0).(*model.User)
	}
	return user, args.Error(1)
}

func (c *MockController) RunPeriodicSessionCleanup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *MockController) AddLeague(ctx context.Context, lc *model.LeagueCreate) (*model.League, error) {
	args := c.Called(ctx, lc)
	var league *model.League
	if args.Get(0) != nil {
		league = args.Get(0).(*model.League)
	}
	return league, args.Error(1)
}

func (c *MockController) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)
	var league *model.League
	if args.Get(0) != nil {
		league = args.Get(0).(*model.League)
	}
	return league, args.Error(1)
}

func (c *MockController) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)
	var leagues []model.League
	if args.Get(0) != nil {
		leagues = args.Get(0).([]model.League)
	}
	return leagues, args.Error(1)
}

func (c *MockController) GetLeagueTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	args := c.Called(ctx, leagueID)
	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (c *MockController) GetLeaguesFromPlatform(ctx context.Context, username, platform, season string) ([]model.League, error) {
	args := c.Called(ctx, username, platform, season)
	var leagues []model.League
	if args.Get(0) != nil {
		leagues = args.Get(0).([]model.League)
	}
	return leagues, args.Error(1)
}

func (c *MockController) AddTeam(ctx context.Context, userID string, tc *model.TeamCreate) (*model.Team, error) {
	args := c.Called(ctx, userID, tc)
	var team *model.Team
	if args.Get(0) != nil {
		team = args.Get(0).(*model.Team)
	}
	return team, args.Error(1)
}

func (c *MockController) GetUserTeams(ctx context.Context, userID string) ([]model.Team, error) {
	args := c.Called(ctx, userID)
	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (c *MockController) UpdateTeam(ctx context.Context, userID string, id int32, u *model.TeamUpdate) (*model.Team, error) {
	args := c.Called(ctx, userID, id, u)
	var team *model.Team
	if args.Get(0) != nil {
		team = args.Get(0).(*model.Team)
	}
	return team, args.Error(1)
}

func (c *MockController) GetDashboard(ctx context.Context, userID string) ([]model.TeamSummary, error) {
	args := c.Called(ctx, userID)
	var summaries []model.TeamSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]model.TeamSummary)
	}
	return summaries, args.Error(1)
}

func (c *MockController) PostChatMessage(ctx context.Context, leagueID int32, userID, message string) (*model.ChatMessage, error) {
	args := c.Called(ctx, leagueID, userID, message)
	var msg *model.ChatMessage
	if args.Get(0) != nil {
		msg = args.Get(0).(*model.ChatMessage)
	}
	return msg, args.Error(1)
}

func (c *MockController) GetLeagueChatMessages(ctx context.Context, leagueID int32, limit int) ([]model.ChatMessage, error) {
	args := c.Called(ctx, leagueID, limit)
	var msgs []model.ChatMessage
	if args.Get(0) != nil {
		msgs = args.Get(0).([]model.ChatMessage)
	}
	return msgs, args.Error(1)
}

func (c *MockController) AddWeeklyStats(ctx context.Context, userID string, teamID int32, sc *model.WeeklyStatsCreate) (*model.WeeklyStats, error) {
	args := c.Called(ctx, userID, teamID, sc)
	var stats *model.WeeklyStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*model.WeeklyStats)
	}
	return stats, args.Error(1)
}

func (c *MockController) GetTeamWeeklyStats(ctx context.Context, teamID int32) ([]model.WeeklyStats, error) {
	args := c.Called(ctx, teamID)
	var stats []model.WeeklyStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.WeeklyStats)
	}
	return stats, args.Error(1)
}

func (c *MockController) LinkStart(userID, platform string) (string, error) {
	args := c.Called(userID, platform)
	return args.String(0), args.Error(1)
}

func (c *MockController) LinkComplete(ctx context.Context, state, code string) (*model.Connection, error) {
	args := c.Called(ctx, state, code)
	var conn *model.Connection
	if args.Get(0) != nil {
		conn = args.Get(0).(*model.Connection)
	}
	return conn, args.Error(1)
}

func (c *MockController) GetUserConnections(ctx context.Context, userID string) ([]model.Connection, error) {
	args := c.Called(ctx, userID)
	var conns []model.Connection
	if args.Get(0) != nil {
		conns = args.Get(0).([]model.Connection)
	}
	return conns, args.Error(1)
}

func (c *MockController) GetConnectionToken(ctx context.Context, userID, platform string) (*oauth2.Token, error) {
	args := c.Called(ctx, userID, platform)
	var token *oauth2.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*oauth2.Token)
	}
	return token, args.Error(1)
}
