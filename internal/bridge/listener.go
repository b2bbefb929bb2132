// Package bridge converts Postgres change notifications into the core's
// internal event stream.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/rcrwhyg/chat/internal/model"
	"github.com/rcrwhyg/chat/internal/repository"
)

// Notification channels raised by the store's triggers.
const (
	chanMessageCreated = "chat_message_created"
	chanChatUpdated    = "chat_updated"
)

const catchUpBatch = 500

// notePayload is the JSON body of a store notification. Self-describing but
// never authoritative: the router re-fetches state from the store.
type notePayload struct {
	ChatID uuid.UUID       `json:"chat_id"`
	Seq    int64           `json:"seq"`
	Kind   model.EventKind `json:"kind"`
	RowID  uuid.UUID       `json:"row_id"`
}

// Listener owns a dedicated Postgres connection subscribed to the store's
// notification channels. Notifications are at-least-once and carry no
// ordering guarantee across reconnects of the channel itself; the listener
// compensates by polling the event log from the highest sequence it has seen
// per chat, both after every reconnect and on a periodic ticker.
type Listener struct {
	dsn      string
	events   repository.EventRepository
	out      chan model.ChangeNote
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	highest map[uuid.UUID]int64 // chat id -> highest seq observed
}

// New constructs a listener. interval is the catch-up poll period.
func New(dsn string, events repository.EventRepository, interval time.Duration, log *zap.Logger) *Listener {
	return &Listener{
		dsn:      dsn,
		events:   events,
		out:      make(chan model.ChangeNote, 64),
		interval: interval,
		log:      log,
		highest:  make(map[uuid.UUID]int64),
	}
}

// Notes is the ordered-enough event stream consumed by the router. The
// router resolves duplicates and gaps against store commit order.
func (l *Listener) Notes() <-chan model.ChangeNote { return l.out }

// Run listens until ctx is cancelled. A broken notification connection is
// re-established with bounded exponential backoff; a reconnect that exhausts
// the budget is returned as an error, which the caller must treat as a
// liveness failure since no new events can be observed.
func (l *Listener) Run(ctx context.Context) error {
	go l.pollLoop(ctx)

	for {
		conn, err := l.connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("bridge: subscribe: %w", err)
		}

		// Reconnects of a notify channel drop anything raised while away.
		if err := l.catchUp(ctx); err != nil && ctx.Err() == nil {
			l.log.Warn("catch-up after reconnect failed", zap.Error(err))
		}

		err = l.listen(ctx, conn)
		_ = conn.Close(context.Background())
		if ctx.Err() != nil {
			return nil
		}
		l.log.Warn("notification connection lost", zap.Error(err))
	}
}

// connect dials a dedicated connection and subscribes to both channels,
// retrying with bounded exponential backoff.
func (l *Listener) connect(ctx context.Context) (*pgx.Conn, error) {
	var conn *pgx.Conn
	b := retry.WithMaxRetries(8, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		c, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			return retry.RetryableError(err)
		}
		for _, ch := range []string{chanMessageCreated, chanChatUpdated} {
			if _, err := c.Exec(ctx, "LISTEN "+ch); err != nil {
				_ = c.Close(ctx)
				return retry.RetryableError(err)
			}
		}
		conn = c
		return nil
	})
	return conn, err
}

func (l *Listener) listen(ctx context.Context, conn *pgx.Conn) error {
	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		var p notePayload
		if err := json.Unmarshal([]byte(n.Payload), &p); err != nil {
			l.log.Warn("malformed notification payload",
				zap.String("channel", n.Channel),
				zap.Error(err),
			)
			continue
		}
		l.emit(ctx, model.ChangeNote(p))
	}
}

// emit forwards a note and records the chat's high-water mark for catch-up.
func (l *Listener) emit(ctx context.Context, note model.ChangeNote) {
	l.mu.Lock()
	if note.Seq > l.highest[note.ChatID] {
		l.highest[note.ChatID] = note.Seq
	}
	l.mu.Unlock()

	select {
	case l.out <- note:
	case <-ctx.Done():
	}
}

func (l *Listener) pollLoop(ctx context.Context) {
	t := time.NewTicker(l.interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if err := l.catchUp(ctx); err != nil && ctx.Err() == nil {
				l.log.Warn("catch-up poll failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// catchUp re-reads the event log of every tracked chat past its high-water
// mark and re-emits anything found. Duplicates are resolved downstream, so
// overlap with live notifications is harmless.
func (l *Listener) catchUp(ctx context.Context) error {
	l.mu.Lock()
	chats := make(map[uuid.UUID]int64, len(l.highest))
	for id, seq := range l.highest {
		chats[id] = seq
	}
	l.mu.Unlock()

	for chatID, since := range chats {
		for {
			evs, err := l.events.ListEventsSince(ctx, chatID, since, catchUpBatch)
			if err != nil {
				return fmt.Errorf("list events for %s: %w", chatID, err)
			}
			for _, ev := range evs {
				rowID := ev.ChatID
				if ev.Message != nil {
					rowID = ev.Message.ID
				}
				l.emit(ctx, model.ChangeNote{
					ChatID: ev.ChatID,
					Seq:    ev.Seq,
					Kind:   ev.Kind,
					RowID:  rowID,
				})
				since = ev.Seq
			}
			if len(evs) < catchUpBatch {
				break
			}
		}
	}
	return nil
}
