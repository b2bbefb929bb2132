package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
)

// EventRepo implements EventRepository using PostgreSQL.
type EventRepo struct{ db *DB }

// NewEventRepo constructs an event repository.
func NewEventRepo(db *DB) *EventRepo { return &EventRepo{db: db} }

const eventColumns = `
SELECT e.chat_id, e.seq, e.kind, e.old_members, e.new_members, e.created_at,
       m.id, m.sender_id, m.content, m.files, m.created_at
FROM chat_events e
LEFT JOIN messages m ON m.id = e.message_id`

// scanEvent reads one joined event row, hydrating the message payload when present.
func scanEvent(row pgx.Row) (*model.ChatEvent, error) {
	var (
		ev        model.ChatEvent
		msgID     *uuid.UUID
		senderID  *uuid.UUID
		content   *string
		files     []string
		createdAt *time.Time
	)
	err := row.Scan(&ev.ChatID, &ev.Seq, &ev.Kind, &ev.OldMembers, &ev.NewMembers, &ev.CreatedAt,
		&msgID, &senderID, &content, &files, &createdAt)
	if err != nil {
		return nil, err
	}
	if ev.Kind == model.EventMessageCreated && msgID != nil {
		ev.Message = &model.Message{
			ID:        *msgID,
			ChatID:    ev.ChatID,
			SenderID:  *senderID,
			Content:   *content,
			Files:     files,
			Seq:       ev.Seq,
			CreatedAt: *createdAt,
		}
	}
	return &ev, nil
}

// GetEvent loads one event by (chat, seq).
func (r *EventRepo) GetEvent(ctx context.Context, chatID uuid.UUID, seq int64) (*model.ChatEvent, error) {
	const q = eventColumns + `
WHERE e.chat_id=$1 AND e.seq=$2`
	ev, err := scanEvent(r.db.Pool.QueryRow(ctx, q, chatID, seq))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

// ListEventsSince returns events with seq > since ordered by seq ASC.
func (r *EventRepo) ListEventsSince(ctx context.Context, chatID uuid.UUID, since int64, limit int) ([]model.ChatEvent, error) {
	const q = eventColumns + `
WHERE e.chat_id=$1 AND e.seq>$2
ORDER BY e.seq ASC
LIMIT $3`
	rows, err := r.db.Pool.Query(ctx, q, chatID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ChatEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ev)
	}
	return out, rows.Err()
}

// HeadSeq returns the chat's current head sequence, 0 for chats with no events.
func (r *EventRepo) HeadSeq(ctx context.Context, chatID uuid.UUID) (int64, error) {
	const q = `SELECT COALESCE((SELECT last_seq FROM chat_sequences WHERE chat_id=$1), 0)`
	var seq int64
	if err := r.db.Pool.QueryRow(ctx, q, chatID).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}
