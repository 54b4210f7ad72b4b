package mockdb

import (
	"context"

	"github.com/mww/league_dashboard/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := db.Called(ctx, id)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) UpsertUser(ctx context.Context, u *model.User) (*model.User, error) {
	args := db.Called(ctx, u)

	var res *model.User
	if args.Get(0) != nil {
		res = args.Get(0).(*model.User)
	}
	return res, args.Error(1)
}

func (db *DB) CreateSession(ctx context.Context, s *model.Session) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) GetSession(ctx context.Context, sid string) (*model.Session, error) {
	args := db.Called(ctx, sid)

	var s *model.Session
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Session)
	}
	return s, args.Error(1)
}

func (db *DB) DeleteSession(ctx context.Context, sid string) error {
	args := db.Called(ctx, sid)
	return args.Error(0)
}

func (db *DB) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	args := db.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (db *DB) AddLeague(ctx context.Context, l *model.League) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var leagues []model.League
	if args.Get(0) != nil {
		leagues = args.Get(0).([]model.League)
	}
	return leagues, args.Error(1)
}

func (db *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := db.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) AddTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) GetUserTeams(ctx context.Context, userID string) ([]model.Team, error) {
	args := db.Called(ctx, userID)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (db *DB) GetLeagueTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	args := db.Called(ctx, leagueID)

	var teams []model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]model.Team)
	}
	return teams, args.Error(1)
}

func (db *DB) UpdateTeam(ctx context.Context, id int32, u *model.TeamUpdate) (*model.Team, error) {
	args := db.Called(ctx, id, u)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) AddChatMessage(ctx context.Context, m *model.ChatMessage) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) GetLeagueChatMessages(ctx context.Context, leagueID int32, limit int) ([]model.ChatMessage, error) {
	args := db.Called(ctx, leagueID, limit)

	var msgs []model.ChatMessage
	if args.Get(0) != nil {
		msgs = args.Get(0).([]model.ChatMessage)
	}
	return msgs, args.Error(1)
}

func (db *DB) AddWeeklyStats(ctx context.Context, s *model.WeeklyStats) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *DB) GetTeamWeeklyStats(ctx context.Context, teamID int32) ([]model.WeeklyStats, error) {
	args := db.Called(ctx, teamID)

	var stats []model.WeeklyStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.WeeklyStats)
	}
	return stats, args.Error(1)
}

func (db *DB) AddConnection(ctx context.Context, c *model.Connection) error {
	args := db.Called(ctx, c)
	return args.Error(0)
}

func (db *DB) GetUserConnections(ctx context.Context, userID string) ([]model.Connection, error) {
	args := db.Called(ctx, userID)

	var conns []model.Connection
	if args.Get(0) != nil {
		conns = args.Get(0).([]model.Connection)
	}
	return conns, args.Error(1)
}

func (db *DB) UpdateConnection(ctx context.Context, id int32, u *model.ConnectionUpdate) (*model.Connection, error) {
	args := db.Called(ctx, id, u)

	var c *model.Connection
	if args.Get(0) != nil {
		c = args.Get(0).(*model.Connection)
	}
	return c, args.Error(1)
}
