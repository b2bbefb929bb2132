// Package router expands domain events into per-member delivery envelopes.
package router

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samber/lo"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
	"github.com/rcrwhyg/chat/internal/repository"
)

const gapBatch = 200

// Router turns change notes into envelopes, one per affected member. Store
// commit order is the only ordering authority: per chat, duplicates are
// dropped and gaps are filled from the event log, so arrival order of
// notifications never reorders delivery.
type Router struct {
	chats  repository.ChatRepository
	events repository.EventRepository
	out    chan *model.Envelope
	log    *zap.Logger

	lastSeq map[uuid.UUID]int64 // chat id -> last routed seq
}

// New constructs a router.
func New(chats repository.ChatRepository, events repository.EventRepository, log *zap.Logger) *Router {
	return &Router{
		chats:   chats,
		events:  events,
		out:     make(chan *model.Envelope, 256),
		log:     log,
		lastSeq: make(map[uuid.UUID]int64),
	}
}

// Envelopes is the per-chat-ordered stream consumed by the dispatcher.
func (r *Router) Envelopes() <-chan *model.Envelope { return r.out }

// Run consumes notes until ctx is cancelled. A single consumer preserves the
// per-chat order established here.
func (r *Router) Run(ctx context.Context, notes <-chan model.ChangeNote) error {
	for {
		select {
		case note := <-notes:
			if err := r.handle(ctx, note); err != nil && ctx.Err() == nil {
				// lastSeq was not advanced; the bridge's catch-up poll
				// re-delivers the note later.
				r.log.Error("routing failed",
					zap.String("chat", note.ChatID.String()),
					zap.Int64("seq", note.Seq),
					zap.Error(err),
				)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *Router) handle(ctx context.Context, note model.ChangeNote) error {
	last, known := r.lastSeq[note.ChatID]
	if !known {
		// First sighting of this chat since startup. Events before the note
		// are owed to offline members only, and those are covered by cursors
		// and resume; live routing starts here.
		last = note.Seq - 1
	}
	if note.Seq <= last {
		return nil // duplicate notification
	}

	for last < note.Seq {
		evs, err := r.eventsSince(ctx, note.ChatID, last)
		if err != nil {
			return err
		}
		if len(evs) == 0 {
			return fmt.Errorf("event %d for chat %s not in log yet", last+1, note.ChatID)
		}
		for i := range evs {
			if err := r.route(ctx, &evs[i]); err != nil {
				return err
			}
			last = evs[i].Seq
			r.lastSeq[note.ChatID] = last
		}
	}
	return nil
}

// eventsSince reads the event log with bounded retry on transient errors.
func (r *Router) eventsSince(ctx context.Context, chatID uuid.UUID, since int64) ([]model.ChatEvent, error) {
	var evs []model.ChatEvent
	b := retry.WithMaxRetries(4, retry.NewExponential(100*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		var err error
		evs, err = r.events.ListEventsSince(ctx, chatID, since, gapBatch)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	return evs, err
}

// route emits one envelope per affected member of a single event.
func (r *Router) route(ctx context.Context, ev *model.ChatEvent) error {
	targets, err := r.targets(ctx, ev)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// Chat vanished between commit and routing; nobody to notify.
			r.log.Warn("chat gone, event dropped",
				zap.String("chat", ev.ChatID.String()),
				zap.Int64("seq", ev.Seq),
			)
			return nil
		}
		return err
	}

	for _, userID := range targets {
		env := &model.Envelope{
			TargetUserID: userID,
			ChatID:       ev.ChatID,
			Kind:         ev.Kind,
			Seq:          ev.Seq,
			Message:      ev.Message,
			OldMembers:   ev.OldMembers,
			NewMembers:   ev.NewMembers,
		}
		select {
		case r.out <- env:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// targets resolves the member set an event fans out to. Membership is always
// re-fetched from the store, never taken from the notification payload.
func (r *Router) targets(ctx context.Context, ev *model.ChatEvent) ([]uuid.UUID, error) {
	switch ev.Kind {
	case model.EventMembersChanged:
		// Removed members get the envelope too, so they learn of the removal.
		return lo.Union(ev.OldMembers, ev.NewMembers), nil
	default:
		return r.chats.GetChatMembers(ctx, ev.ChatID)
	}
}
