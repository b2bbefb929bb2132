package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// CursorRepository persists per (user, chat) delivery high-water marks.
type CursorRepository interface {
	// Get returns the stored cursor, 0 if none exists yet.
	Get(ctx context.Context, userID, chatID uuid.UUID) (int64, error)
	// Advance moves the cursor forward to seq. A write with a lower sequence
	// than stored is a no-op; concurrent writers resolve to the maximum.
	Advance(ctx context.Context, userID, chatID uuid.UUID, seq int64) error
}
