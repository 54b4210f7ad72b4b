package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrLeagueNotFound     = errors.New("league not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrConnectionNotFound = errors.New("connection not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}

// Decimal columns travel to and from postgres as text. parseDecimal turns a
// scanned numeric::text back into a decimal, treating NULL as zero.
func parseDecimal(v sql.NullString) (decimal.Decimal, error) {
	if !v.Valid {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing decimal column value %q: %w", v.String, err)
	}
	return d, nil
}
