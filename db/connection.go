package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/league_dashboard/model"
)

const connectionColumns = `id, user_id, platform, access_token, refresh_token, expires_at, active, created, updated`

func (db *postgresDB) AddConnection(ctx context.Context, c *model.Connection) error {
	const query = `INSERT INTO platform_connections (user_id, platform, access_token, refresh_token, expires_at, active)
					VALUES (@userID, @platform, @accessToken, @refreshToken, @expiresAt, @active)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"userID":       c.UserID,
		"platform":     c.Platform,
		"accessToken":  nullString(c.AccessToken),
		"refreshToken": nullString(c.RefreshToken),
		"expiresAt": pgtype.Timestamptz{
			Time:             c.ExpiresAt,
			InfinityModifier: pgtype.Finite,
			Valid:            !c.ExpiresAt.IsZero(),
		},
		"active": c.Active,
	}

	var created pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&c.ID, &created); err != nil {
		return fmt.Errorf("error inserting platform connection: %w", err)
	}
	c.Created = created.Time

	return nil
}

func (db *postgresDB) GetUserConnections(ctx context.Context, userID string) ([]model.Connection, error) {
	query := fmt.Sprintf(`SELECT %s FROM platform_connections
					WHERE user_id=@userID AND active=TRUE
					ORDER BY created DESC`, connectionColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"userID": userID})
	if err != nil {
		return nil, fmt.Errorf("error querying connections for user %s: %w", userID, err)
	}

	results := make([]model.Connection, 0, 4)
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with connection rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) UpdateConnection(ctx context.Context, id int32, u *model.ConnectionUpdate) (*model.Connection, error) {
	query := fmt.Sprintf(`UPDATE platform_connections
		SET access_token=COALESCE(@accessToken, access_token),
			refresh_token=COALESCE(@refreshToken, refresh_token),
			expires_at=COALESCE(@expiresAt, expires_at),
			active=COALESCE(@active, active),
			updated=@updated
		WHERE id=@id
		RETURNING %s`, connectionColumns)

	var expiresAt any
	if u.ExpiresAt != nil {
		expiresAt = pgtype.Timestamptz{
			Time:             *u.ExpiresAt,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		}
	}
	args := pgx.NamedArgs{
		"id":           id,
		"accessToken":  u.AccessToken,
		"refreshToken": u.RefreshToken,
		"expiresAt":    expiresAt,
		"active":       u.Active,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}

	row := db.pool.QueryRow(ctx, query, args)
	c, err := scanConnection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("error updating connection %d: %w", id, err)
	}
	return c, nil
}

func scanConnection(row pgx.Row) (*model.Connection, error) {
	var result model.Connection
	var accessToken, refreshToken sql.NullString
	var expiresAt, created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.UserID,
		&result.Platform,
		&accessToken,
		&refreshToken,
		&expiresAt,
		&result.Active,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.AccessToken = valueOrEmpty(accessToken)
	result.RefreshToken = valueOrEmpty(refreshToken)
	result.ExpiresAt = expiresAt.Time
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}
