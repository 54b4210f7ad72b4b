package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/league_dashboard/model"
	"github.com/shopspring/decimal"
)

const teamColumns = `id, user_id, league_id, team_name, external_id, wins, losses, ties,
				points_for::text, points_against::text, standing, active, created, updated`

func (db *postgresDB) AddTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO fantasy_teams (
			user_id,
			league_id,
			team_name,
			external_id,
			wins,
			losses,
			ties,
			points_for,
			points_against,
			standing,
			active
		) VALUES (
			@userID,
			@leagueID,
			@teamName,
			@externalID,
			@wins,
			@losses,
			@ties,
			@pointsFor,
			@pointsAgainst,
			@standing,
			@active
		) RETURNING id, created`

	args := pgx.NamedArgs{
		"userID":        t.UserID,
		"leagueID":      t.LeagueID,
		"teamName":      t.Name,
		"externalID":    t.ExternalID,
		"wins":          t.Wins,
		"losses":        t.Losses,
		"ties":          t.Ties,
		"pointsFor":     t.PointsFor.String(),
		"pointsAgainst": t.PointsAgainst.String(),
		"standing":      nullStanding(t.Standing),
		"active":        t.Active,
	}

	var created pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&t.ID, &created); err != nil {
		return fmt.Errorf("error inserting team: %w", err)
	}
	t.Created = created.Time

	return nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM fantasy_teams WHERE id=@id`, teamColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error querying team %d: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) GetUserTeams(ctx context.Context, userID string) ([]model.Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM fantasy_teams WHERE user_id=@userID ORDER BY created DESC`, teamColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"userID": userID})
	if err != nil {
		return nil, fmt.Errorf("error querying teams for user %s: %w", userID, err)
	}
	return collectTeams(rows)
}

func (db *postgresDB) GetLeagueTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	// Teams without a standing yet sort last.
	query := fmt.Sprintf(`SELECT %s FROM fantasy_teams WHERE league_id=@leagueID ORDER BY standing ASC`, teamColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying teams for league %d: %w", leagueID, err)
	}
	return collectTeams(rows)
}

func (db *postgresDB) UpdateTeam(ctx context.Context, id int32, u *model.TeamUpdate) (*model.Team, error) {
	query := fmt.Sprintf(`UPDATE fantasy_teams
		SET team_name=COALESCE(@teamName, team_name),
			external_id=COALESCE(@externalID, external_id),
			wins=COALESCE(@wins, wins),
			losses=COALESCE(@losses, losses),
			ties=COALESCE(@ties, ties),
			points_for=COALESCE(@pointsFor, points_for),
			points_against=COALESCE(@pointsAgainst, points_against),
			standing=COALESCE(@standing, standing),
			active=COALESCE(@active, active),
			updated=@updated
		WHERE id=@id
		RETURNING %s`, teamColumns)

	args := pgx.NamedArgs{
		"id":            id,
		"teamName":      u.Name,
		"externalID":    u.ExternalID,
		"wins":          u.Wins,
		"losses":        u.Losses,
		"ties":          u.Ties,
		"pointsFor":     decimalArg(u.PointsFor),
		"pointsAgainst": decimalArg(u.PointsAgainst),
		"standing":      u.Standing,
		"active":        u.Active,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}

	row := db.pool.QueryRow(ctx, query, args)
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error updating team %d: %w", id, err)
	}
	return t, nil
}

func collectTeams(rows pgx.Rows) ([]model.Team, error) {
	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with team rows: %w", err)
	}
	return results, nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var pointsFor, pointsAgainst sql.NullString
	var standing sql.NullInt32
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.UserID,
		&result.LeagueID,
		&result.Name,
		&result.ExternalID,
		&result.Wins,
		&result.Losses,
		&result.Ties,
		&pointsFor,
		&pointsAgainst,
		&standing,
		&result.Active,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	if result.PointsFor, err = parseDecimal(pointsFor); err != nil {
		return nil, err
	}
	if result.PointsAgainst, err = parseDecimal(pointsAgainst); err != nil {
		return nil, err
	}
	if standing.Valid {
		result.Standing = int(standing.Int32)
	}
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func nullStanding(s int) sql.NullInt32 {
	return sql.NullInt32{
		Int32: int32(s),
		Valid: s > 0,
	}
}

func decimalArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
