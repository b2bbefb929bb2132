package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/rcrwhyg/chat/internal/model"
)

// EventRepository provides read access to the commit-ordered per-chat event log.
type EventRepository interface {
	// GetEvent loads one event by its (chat, seq) key, message payload included.
	// Fails with errs.ErrNotFound if absent.
	GetEvent(ctx context.Context, chatID uuid.UUID, seq int64) (*model.ChatEvent, error)
	// ListEventsSince returns up to limit events of a chat with sequence
	// strictly greater than since, ordered by sequence ascending, message
	// payloads included.
	ListEventsSince(ctx context.Context, chatID uuid.UUID, since int64, limit int) ([]model.ChatEvent, error)
	// HeadSeq returns the highest committed sequence of a chat (0 if none).
	HeadSeq(ctx context.Context, chatID uuid.UUID) (int64, error)
}
