// Package resume replays missed envelopes for reconnecting clients.
package resume

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
	"github.com/rcrwhyg/chat/internal/registry"
	"github.com/rcrwhyg/chat/internal/repository"
)

// Manager fills the gap between a client's last known sequence and the chat
// head on (re)connect, using the store as the source of truth.
type Manager struct {
	chats   repository.ChatRepository
	events  repository.EventRepository
	msgs    repository.MessageRepository
	cursors repository.CursorRepository
	window  int64
	batch   int
	log     *zap.Logger
}

// New constructs a manager. window caps how far behind a client may be before
// replay is refused with errs.ErrResyncRequired; batch is the page size of
// event log reads.
func New(chats repository.ChatRepository, events repository.EventRepository,
	msgs repository.MessageRepository, cursors repository.CursorRepository,
	window int64, batch int, log *zap.Logger) *Manager {
	return &Manager{chats: chats, events: events, msgs: msgs, cursors: cursors, window: window, batch: batch, log: log}
}

// SendFunc hands one envelope to the client's transport. A nil error means
// the transport accepted the frame.
type SendFunc func(*model.Envelope) error

// Resume catches a registered connection up and switches it live.
//
// claimed holds the client's last known sequence per chat; chats absent from
// it fall back to the stored cursor. The client's claim wins even when lower
// than the stored cursor, since only the client knows what it actually
// flushed to disk. Replayed envelopes go straight to send, bypassing the
// connection's bounded buffer, so the backlog size is capped by the resume
// window rather than the buffer. The connection must already be registered:
// live envelopes arriving during replay park in its pending queue and are
// folded in, deduped by sequence, when the connection goes live, so the
// handoff has no gaps and no duplicates.
func (m *Manager) Resume(ctx context.Context, conn *registry.Conn, claimed map[uuid.UUID]int64, send SendFunc) error {
	userID := conn.UserID()
	chatIDs, err := m.chats.ListChatIDsForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list chats: %w", err)
	}

	for _, chatID := range chatIDs {
		since, ok := claimed[chatID]
		if !ok {
			since, err = m.cursors.Get(ctx, userID, chatID)
			if err != nil {
				return fmt.Errorf("cursor for chat %s: %w", chatID, err)
			}
		}
		if err := m.replayChat(ctx, conn, send, chatID, since); err != nil {
			return err
		}
	}
	return conn.GoLive()
}

// replayChat replays events with seq > since. The cursor advances only after
// send returns, so an interrupted replay never records sequences the client
// was not handed.
func (m *Manager) replayChat(ctx context.Context, conn *registry.Conn, send SendFunc, chatID uuid.UUID, since int64) error {
	userID := conn.UserID()

	head, err := m.events.HeadSeq(ctx, chatID)
	if err != nil {
		return fmt.Errorf("head for chat %s: %w", chatID, err)
	}
	if head-since > m.window {
		// History is too large (or truncated) to replay incrementally. Never
		// skip silently: the caller falls back to a full refresh.
		return fmt.Errorf("chat %s: %d behind: %w", chatID, head-since, errs.ErrResyncRequired)
	}

	for since < head {
		evs, err := m.events.ListEventsSince(ctx, chatID, since, m.batch)
		if err != nil {
			return fmt.Errorf("events for chat %s: %w", chatID, err)
		}
		if len(evs) == 0 {
			return nil
		}
		for i := range evs {
			ev := &evs[i]
			if ev.Kind == model.EventMessageCreated && ev.Message == nil {
				// A message event without its payload row; re-read it from
				// the message log before shipping the envelope.
				msgs, err := m.msgs.ListMessagesSince(ctx, chatID, ev.Seq-1, 1)
				if err != nil {
					return fmt.Errorf("message for chat %s seq %d: %w", chatID, ev.Seq, err)
				}
				if len(msgs) == 1 && msgs[0].Seq == ev.Seq {
					ev.Message = &msgs[0]
				}
			}
			env := &model.Envelope{
				TargetUserID: userID,
				ChatID:       ev.ChatID,
				Kind:         ev.Kind,
				Seq:          ev.Seq,
				Message:      ev.Message,
				OldMembers:   ev.OldMembers,
				NewMembers:   ev.NewMembers,
			}
			if err := send(env); err != nil {
				return fmt.Errorf("replay chat %s seq %d: %w", chatID, ev.Seq, err)
			}
			conn.MarkReplayed(ev.ChatID, ev.Seq)
			if err := m.cursors.Advance(ctx, userID, chatID, ev.Seq); err != nil {
				return fmt.Errorf("advance chat %s: %w", chatID, err)
			}
			since = ev.Seq
		}
	}
	return nil
}
