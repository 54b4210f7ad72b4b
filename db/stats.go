package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/league_dashboard/model"
)

func (db *postgresDB) AddWeeklyStats(ctx context.Context, s *model.WeeklyStats) error {
	const query = `INSERT INTO weekly_stats (team_id, week, year, points, opponent_points, result)
					VALUES (@teamID, @week, @year, @points, @opponentPoints, @result)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"teamID":         s.TeamID,
		"week":           s.Week,
		"year":           s.Year,
		"points":         s.Points.String(),
		"opponentPoints": s.OpponentPoints.String(),
		"result":         nullString(string(s.Result)),
	}

	var created pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&s.ID, &created); err != nil {
		return fmt.Errorf("error inserting weekly stats: %w", err)
	}
	s.Created = created.Time

	return nil
}

func (db *postgresDB) GetTeamWeeklyStats(ctx context.Context, teamID int32) ([]model.WeeklyStats, error) {
	const query = `SELECT id, team_id, week, year, points::text, opponent_points::text, result, created
					FROM weekly_stats WHERE team_id=@teamID
					ORDER BY year ASC, week ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"teamID": teamID})
	if err != nil {
		return nil, fmt.Errorf("error querying weekly stats for team %d: %w", teamID, err)
	}

	results := make([]model.WeeklyStats, 0, 18)
	for rows.Next() {
		var s model.WeeklyStats
		var points, opponentPoints, result sql.NullString
		var created pgtype.Timestamptz
		err := rows.Scan(&s.ID, &s.TeamID, &s.Week, &s.Year, &points, &opponentPoints, &result, &created)
		if err != nil {
			return nil, fmt.Errorf("error scanning weekly stats: %w", err)
		}

		if s.Points, err = parseDecimal(points); err != nil {
			return nil, err
		}
		if s.OpponentPoints, err = parseDecimal(opponentPoints); err != nil {
			return nil, err
		}
		s.Result = model.ParseResult(valueOrEmpty(result))
		s.Created = created.Time

		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with weekly stats rows: %w", err)
	}

	return results, nil
}
