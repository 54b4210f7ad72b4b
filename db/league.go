package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/league_dashboard/model"
)

const leagueColumns = `id, name, platform, sport, season, external_id, settings, created, updated`

func (db *postgresDB) AddLeague(ctx context.Context, l *model.League) error {
	const query = `INSERT INTO leagues (name, platform, sport, season, external_id, settings)
					VALUES (@name, @platform, @sport, @season, @externalID, @settings)
					RETURNING id, created`

	var settings any
	if len(l.Settings) > 0 {
		settings = []byte(l.Settings)
	}
	args := pgx.NamedArgs{
		"name":       l.Name,
		"platform":   l.Platform,
		"sport":      l.Sport,
		"season":     l.Season,
		"externalID": l.ExternalID,
		"settings":   settings,
	}

	var created pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&l.ID, &created); err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}
	l.Created = created.Time

	return nil
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	query := fmt.Sprintf(`SELECT %s FROM leagues ORDER BY created DESC`, leagueColumns)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	results := make([]model.League, 0, 8)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with league rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	query := fmt.Sprintf(`SELECT %s FROM leagues WHERE id=@id`, leagueColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	l, err := scanLeague(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}
	return l, nil
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var result model.League
	var settings []byte
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Platform,
		&result.Sport,
		&result.Season,
		&result.ExternalID,
		&settings,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	if len(settings) > 0 {
		result.Settings = settings
	}
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}
