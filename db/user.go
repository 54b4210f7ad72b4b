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

func (db *postgresDB) GetUser(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id, email, first_name, last_name, profile_image_url, created, updated
					FROM users WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user %s: %w", id, err)
	}
	return u, nil
}

func (db *postgresDB) UpsertUser(ctx context.Context, u *model.User) (*model.User, error) {
	const query = `INSERT INTO users (id, email, first_name, last_name, profile_image_url)
					VALUES (@id, @email, @firstName, @lastName, @profileImageURL)
					ON CONFLICT (id) DO UPDATE
						SET email=@email,
							first_name=@firstName,
							last_name=@lastName,
							profile_image_url=@profileImageURL,
							updated=@updated
					RETURNING id, email, first_name, last_name, profile_image_url, created, updated`

	args := pgx.NamedArgs{
		"id":              u.ID,
		"email":           nullString(u.Email),
		"firstName":       nullString(u.FirstName),
		"lastName":        nullString(u.LastName),
		"profileImageURL": nullString(u.ProfileImageURL),
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}

	row := db.pool.QueryRow(ctx, query, args)
	result, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("error upserting user %s: %w", u.ID, err)
	}
	return result, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var result model.User
	var email, firstName, lastName, profileImageURL sql.NullString
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&email,
		&firstName,
		&lastName,
		&profileImageURL,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Email = valueOrEmpty(email)
	result.FirstName = valueOrEmpty(firstName)
	result.LastName = valueOrEmpty(lastName)
	result.ProfileImageURL = valueOrEmpty(profileImageURL)
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func (db *postgresDB) CreateSession(ctx context.Context, s *model.Session) error {
	const query = `INSERT INTO sessions (sid, user_id, expire) VALUES (@sid, @userID, @expire)`

	args := pgx.NamedArgs{
		"sid":    s.ID,
		"userID": s.UserID,
		"expire": pgtype.Timestamptz{
			Time:             s.Expire,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting session: %w", err)
	}
	return nil
}

func (db *postgresDB) GetSession(ctx context.Context, sid string) (*model.Session, error) {
	const query = `SELECT sid, user_id, expire FROM sessions WHERE sid=@sid`

	var result model.Session
	var expire pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"sid": sid})
	if err := row.Scan(&result.ID, &result.UserID, &expire); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error scanning session: %w", err)
	}
	result.Expire = expire.Time

	return &result, nil
}

func (db *postgresDB) DeleteSession(ctx context.Context, sid string) error {
	const query = `DELETE FROM sessions WHERE sid=@sid`

	if _, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"sid": sid}); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (db *postgresDB) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	const query = `DELETE FROM sessions WHERE expire < @now`

	args := pgx.NamedArgs{
		"now": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
