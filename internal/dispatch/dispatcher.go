// Package dispatch pushes routed envelopes to live connections and advances
// delivery cursors.
package dispatch

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/rcrwhyg/chat/internal/model"
	"github.com/rcrwhyg/chat/internal/registry"
	"github.com/rcrwhyg/chat/internal/repository"
)

// Dispatcher consumes envelopes in the per-chat order the router produced
// them. Envelopes are sharded across a worker pool by chat id, so two events
// of the same chat are never processed concurrently while different chats
// proceed in parallel.
type Dispatcher struct {
	reg     *registry.Registry
	cursors repository.CursorRepository
	queues  []chan *model.Envelope
	log     *zap.Logger
}

// New constructs a dispatcher with the given pool size.
func New(reg *registry.Registry, cursors repository.CursorRepository, workers int, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{reg: reg, cursors: cursors, log: log}
	d.queues = make([]chan *model.Envelope, workers)
	for i := range d.queues {
		d.queues[i] = make(chan *model.Envelope, 64)
	}
	return d
}

// Run shards envelopes to the pool until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context, envelopes <-chan *model.Envelope) error {
	var wg sync.WaitGroup
	for i := range d.queues {
		wg.Add(1)
		go func(q <-chan *model.Envelope) {
			defer wg.Done()
			d.worker(ctx, q)
		}(d.queues[i])
	}

	for {
		select {
		case env := <-envelopes:
			q := d.queues[shardIndex(env.ChatID.Bytes(), len(d.queues))]
			select {
			case q <- env:
			case <-ctx.Done():
				wg.Wait()
				return nil
			}
		case <-ctx.Done():
			wg.Wait()
			return nil
		}
	}
}

func (d *Dispatcher) worker(ctx context.Context, q <-chan *model.Envelope) {
	for {
		select {
		case env := <-q:
			d.deliver(ctx, env)
		case <-ctx.Done():
			return
		}
	}
}

// deliver pushes one envelope. The cursor is advanced only when at least one
// connection accepted the envelope; offline users and overflow-dropped
// connections keep their cursor, so resume replays from the store later.
// Failures here are isolated to one (user, chat) pair.
func (d *Dispatcher) deliver(ctx context.Context, env *model.Envelope) {
	if d.reg.Push(env.TargetUserID, env) == 0 {
		return
	}

	b := retry.WithMaxRetries(5, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := d.cursors.Advance(ctx, env.TargetUserID, env.ChatID, env.Seq); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		// Cursor stays behind; worst case the user sees the envelope again
		// after a reconnect, which the connection's sequence guard absorbs.
		d.log.Error("cursor advance failed",
			zap.String("user", env.TargetUserID.String()),
			zap.String("chat", env.ChatID.String()),
			zap.Int64("seq", env.Seq),
			zap.Error(err),
		)
	}
}

func shardIndex(key []byte, n int) int {
	h := fnv.New32a()
	_, _ = h.Write(key)
	return int(h.Sum32() % uint32(n))
}
