package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// CursorRepo implements CursorRepository using PostgreSQL.
type CursorRepo struct{ db *DB }

// NewCursorRepo constructs a cursor repository.
func NewCursorRepo(db *DB) *CursorRepo { return &CursorRepo{db: db} }

// Get returns the stored cursor, 0 if the (user, chat) pair has none.
func (r *CursorRepo) Get(ctx context.Context, userID, chatID uuid.UUID) (int64, error) {
	const q = `SELECT COALESCE((SELECT last_seq FROM chat_cursors WHERE user_id=$1 AND chat_id=$2), 0)`
	var seq int64
	if err := r.db.Pool.QueryRow(ctx, q, userID, chatID).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

// Advance moves the cursor to seq. GREATEST makes concurrent writers resolve
// to the maximum, so a write with a lower sequence than stored is a no-op.
func (r *CursorRepo) Advance(ctx context.Context, userID, chatID uuid.UUID, seq int64) error {
	const q = `
INSERT INTO chat_cursors (user_id, chat_id, last_seq)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, chat_id)
DO UPDATE SET last_seq = GREATEST(chat_cursors.last_seq, EXCLUDED.last_seq), updated_at = now()`
	_, err := r.db.Pool.Exec(ctx, q, userID, chatID, seq)
	return err
}
