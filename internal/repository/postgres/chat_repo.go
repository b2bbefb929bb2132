package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
)

// ChatRepo implements ChatRepository using PostgreSQL.
type ChatRepo struct{ db *DB }

// NewChatRepo constructs a chat repository.
func NewChatRepo(db *DB) *ChatRepo { return &ChatRepo{db: db} }

// GetChat loads a chat by id.
func (r *ChatRepo) GetChat(ctx context.Context, chatID uuid.UUID) (*model.Chat, error) {
	const q = `
SELECT id, ws_id, name, type, members, created_at
FROM chats WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, chatID)
	var (
		c    model.Chat
		name *string
	)
	if err := row.Scan(&c.ID, &c.WorkspaceID, &name, &c.Type, &c.Members, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if name != nil {
		c.Name = *name
	}
	return &c, nil
}

// GetChatMembers returns the current member set of a chat.
func (r *ChatRepo) GetChatMembers(ctx context.Context, chatID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT members FROM chats WHERE id=$1`
	var members []uuid.UUID
	if err := r.db.Pool.QueryRow(ctx, q, chatID).Scan(&members); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return members, nil
}

// ListChatIDsForUser returns ids of chats whose member set contains the user.
// Served by the GIN index on chats.members.
func (r *ChatRepo) ListChatIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT id FROM chats WHERE members @> ARRAY[$1]::uuid[]`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
