package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/rcrwhyg/chat/internal/model"
)

// MessageRepository provides ordered read access to the append-only message log.
type MessageRepository interface {
	// GetMessage loads a message by ID.
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	// ListMessagesSince returns up to limit messages of a chat with sequence
	// strictly greater than since, ordered by sequence ascending. The result
	// is restartable: the same arguments yield the same prefix.
	ListMessagesSince(ctx context.Context, chatID uuid.UUID, since int64, limit int) ([]model.Message, error)
}
