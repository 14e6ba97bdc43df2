package messages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, matchID string, msgs []models.Message) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE match_id = ?`, matchID); err != nil {
			return fmt.Errorf("failed to clear messages[%s]: %w", matchID, err)
		}
		for i, m := range msgs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO messages (id, match_id, position, sender_id, receiver_id, content, sent_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, m.ID, matchID, i, m.SenderID, m.ReceiverID, m.Content, m.SentAt)
			if err != nil {
				return fmt.Errorf("failed to insert message[%s]: %w", m.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) List(ctx context.Context, matchID string) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sender_id, receiver_id, content, sent_at
		FROM messages WHERE match_id = ? ORDER BY position
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages[%s]: %w", matchID, err)
	}
	defer rows.Close()

	var result []models.Message
	for rows.Next() {
		m := models.Message{MatchID: matchID}
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}
	return nil
}
