package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
)

// MessageRepo implements MessageRepository using PostgreSQL.
type MessageRepo struct{ db *DB }

// NewMessageRepo constructs a message repository.
func NewMessageRepo(db *DB) *MessageRepo { return &MessageRepo{db: db} }

// GetMessage loads a single message by id.
func (r *MessageRepo) GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	const q = `
SELECT id, chat_id, sender_id, content, files, seq, created_at
FROM messages WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var m model.Message
	if err := row.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Content, &m.Files, &m.Seq, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListMessagesSince returns messages with seq > since ordered by seq ASC.
func (r *MessageRepo) ListMessagesSince(ctx context.Context, chatID uuid.UUID, since int64, limit int) ([]model.Message, error) {
	const q = `
SELECT id, chat_id, sender_id, content, files, seq, created_at
FROM messages
WHERE chat_id=$1 AND seq>$2
ORDER BY seq ASC
LIMIT $3`
	rows, err := r.db.Pool.Query(ctx, q, chatID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err = rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Content, &m.Files, &m.Seq, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
