package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/league_dashboard/model"
)

const defaultChatLimit = 50

func (db *postgresDB) AddChatMessage(ctx context.Context, m *model.ChatMessage) error {
	const query = `INSERT INTO chat_messages (league_id, user_id, message)
					VALUES (@leagueID, @userID, @message)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"leagueID": m.LeagueID,
		"userID":   m.UserID,
		"message":  m.Message,
	}

	var created pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&m.ID, &created); err != nil {
		return fmt.Errorf("error inserting chat message: %w", err)
	}
	m.Created = created.Time

	return nil
}

func (db *postgresDB) GetLeagueChatMessages(ctx context.Context, leagueID int32, limit int) ([]model.ChatMessage, error) {
	const query = `SELECT id, league_id, user_id, message, created
					FROM chat_messages WHERE league_id=@leagueID
					ORDER BY created DESC LIMIT @limit`

	if limit <= 0 {
		limit = defaultChatLimit
	}
	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"limit":    limit,
	}

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying chat messages for league %d: %w", leagueID, err)
	}

	results := make([]model.ChatMessage, 0, limit)
	for rows.Next() {
		var m model.ChatMessage
		var created pgtype.Timestamptz
		if err := rows.Scan(&m.ID, &m.LeagueID, &m.UserID, &m.Message, &created); err != nil {
			return nil, fmt.Errorf("error scanning chat message: %w", err)
		}
		m.Created = created.Time
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with chat message rows: %w", err)
	}

	return results, nil
}
