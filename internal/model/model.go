// Package model defines domain entities used by the delivery core.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// ChatType discriminates chat variants.
type ChatType string

const (
	ChatSingle         ChatType = "single"
	ChatGroup          ChatType = "group"
	ChatPrivateChannel ChatType = "private_channel"
	ChatPublicChannel  ChatType = "public_channel"
)

// Workspace is a tenant. Created at signup bootstrap, immutable here.
type Workspace struct {
	ID        uuid.UUID
	Name      string // unique
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

// User belongs to exactly one workspace. Referenced, never mutated, by the core.
type User struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Fullname    string
	CreatedAt   time.Time
}

// Chat is a conversation with a non-empty member set. All members belong to
// the chat's workspace; (workspace, name, members) is unique upstream.
type Chat struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Name        string // empty for unnamed single/group chats
	Type        ChatType
	Members     []uuid.UUID
	CreatedAt   time.Time
}

// Message is append-only and immutable. Seq is assigned by the store's commit
// path and is strictly increasing within a chat.
type Message struct {
	ID        uuid.UUID
	ChatID    uuid.UUID
	SenderID  uuid.UUID
	Content   string
	Files     []string // opaque attachment references
	Seq       int64
	CreatedAt time.Time
}

// EventKind labels a domain event.
type EventKind string

const (
	EventMessageCreated EventKind = "message_created"
	EventMembersChanged EventKind = "members_changed"
)

// ChatEvent is one row of the commit-ordered per-chat event log. Exactly one
// of the payload groups is set depending on Kind.
type ChatEvent struct {
	ChatID     uuid.UUID
	Seq        int64
	Kind       EventKind
	Message    *Message    // Kind == EventMessageCreated
	OldMembers []uuid.UUID // Kind == EventMembersChanged
	NewMembers []uuid.UUID
	CreatedAt  time.Time
}

// ChangeNote is a parsed store change notification. The payload is
// self-describing but never authoritative: routing re-fetches state.
type ChangeNote struct {
	ChatID uuid.UUID
	Seq    int64
	Kind   EventKind
	RowID  uuid.UUID // message id or chat id, depending on Kind
}

// Envelope is one routed, per-user instance of a domain event. Created by the
// router, consumed by the dispatcher, discarded after push.
type Envelope struct {
	TargetUserID uuid.UUID
	ChatID       uuid.UUID
	Kind         EventKind
	Seq          int64
	Message      *Message    // EventMessageCreated payload
	OldMembers   []uuid.UUID // EventMembersChanged payload
	NewMembers   []uuid.UUID
}

// Cursor is the per (user, chat) high-water mark of delivered sequence
// numbers. It never decreases.
type Cursor struct {
	UserID  uuid.UUID
	ChatID  uuid.UUID
	LastSeq int64
}
