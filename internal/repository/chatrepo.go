// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/rcrwhyg/chat/internal/model"
)

// ChatRepository provides read access to chats and their member sets.
type ChatRepository interface {
	// GetChat loads a chat by ID.
	GetChat(ctx context.Context, chatID uuid.UUID) (*model.Chat, error)
	// GetChatMembers returns the current member set of a chat.
	// Fails with errs.ErrNotFound if the chat does not exist.
	GetChatMembers(ctx context.Context, chatID uuid.UUID) ([]uuid.UUID, error)
	// ListChatIDsForUser returns IDs of all chats the user is a member of.
	ListChatIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
