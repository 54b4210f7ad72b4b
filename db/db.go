package db

import (
	"context"

	"github.com/mww/league_dashboard/model"
)

type DB interface {
	// GetUser returns ErrUserNotFound if no user with the id exists.
	GetUser(ctx context.Context, id string) (*model.User, error)
	// UpsertUser inserts the user, or updates all supplied fields and
	// refreshes the updated timestamp when the id already exists. The
	// resulting row is returned.
	UpsertUser(ctx context.Context, u *model.User) (*model.User, error)

	CreateSession(ctx context.Context, s *model.Session) error
	GetSession(ctx context.Context, sid string) (*model.Session, error)
	DeleteSession(ctx context.Context, sid string) error
	// DeleteExpiredSessions removes sessions whose expire time has passed and
	// returns how many were removed.
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// AddLeague inserts a new league, filling in the generated id and the
	// created timestamp on l.
	AddLeague(ctx context.Context, l *model.League) error
	// ListLeagues returns all leagues, newest created first.
	ListLeagues(ctx context.Context) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)

	AddTeam(ctx context.Context, t *model.Team) error
	// GetTeam returns ErrTeamNotFound if no team with the id exists.
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	// GetUserTeams returns the teams owned by userID, newest created first.
	GetUserTeams(ctx context.Context, userID string) ([]model.Team, error)
	// GetLeagueTeams returns a league's teams ordered by standing ascending.
	GetLeagueTeams(ctx context.Context, leagueID int32) ([]model.Team, error)
	// UpdateTeam applies the non-nil fields of u, refreshes the updated
	// timestamp, and returns the resulting row.
	UpdateTeam(ctx context.Context, id int32, u *model.TeamUpdate) (*model.Team, error)

	AddChatMessage(ctx context.Context, m *model.ChatMessage) error
	// GetLeagueChatMessages returns at most limit messages, newest first.
	GetLeagueChatMessages(ctx context.Context, leagueID int32, limit int) ([]model.ChatMessage, error)

	AddWeeklyStats(ctx context.Context, s *model.WeeklyStats) error
	// GetTeamWeeklyStats returns a team's stats ordered by year then week.
	GetTeamWeeklyStats(ctx context.Context, teamID int32) ([]model.WeeklyStats, error)

	AddConnection(ctx context.Context, c *model.Connection) error
	// GetUserConnections returns only active connections, newest first.
	GetUserConnections(ctx context.Context, userID string) ([]model.Connection, error)
	UpdateConnection(ctx context.Context, id int32, u *model.ConnectionUpdate) (*model.Connection, error)
}
