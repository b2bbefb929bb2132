package registry

import (
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
)

// Conn is one live client connection. Envelopes are handed to a bounded
// outbound buffer that the transport drains; a connection that cannot keep up
// is closed rather than allowed to stall delivery to other users.
//
// A new connection starts in catch-up mode: envelopes pushed by the registry
// are parked in a pending queue while the resume manager streams history
// straight to the transport, recording each delivered sequence through
// MarkReplayed. GoLive drains the queue into the buffer and switches to
// direct delivery. Per-chat sequence tracking suppresses duplicates across
// the replay/live handoff, so a client sees each sequence at most once and
// in order.
type Conn struct {
	id     uuid.UUID
	userID uuid.UUID

	out  chan *model.Envelope
	done chan struct{}

	mu      sync.Mutex
	live    bool
	pending []*model.Envelope
	sent    map[uuid.UUID]int64 // chat id -> highest seq accepted
	closed  bool
	err     error
}

// NewConn creates a connection for a user with the given outbound buffer size.
func NewConn(userID uuid.UUID, buffer int) *Conn {
	return &Conn{
		id:     uuid.Must(uuid.NewV4()),
		userID: userID,
		out:    make(chan *model.Envelope, buffer),
		done:   make(chan struct{}),
		sent:   make(map[uuid.UUID]int64),
	}
}

// ID returns the connection id.
func (c *Conn) ID() uuid.UUID { return c.id }

// UserID returns the owning user id.
func (c *Conn) UserID() uuid.UUID { return c.userID }

// Out is the channel the transport drains and flushes to the client.
func (c *Conn) Out() <-chan *model.Envelope { return c.out }

// Done is closed when the connection is closed.
func (c *Conn) Done() <-chan struct{} { return c.done }

// Err reports why the connection was closed, nil while open.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Send delivers a live envelope. While the connection is catching up the
// envelope is parked; once live it goes straight to the outbound buffer.
// Never blocks: a full buffer or pending queue closes the connection with
// errs.ErrBufferOverflow.
func (c *Conn) Send(env *model.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.err
	}
	if !c.live {
		if len(c.pending) >= cap(c.out) {
			c.closeLocked(errs.ErrBufferOverflow)
			return errs.ErrBufferOverflow
		}
		c.pending = append(c.pending, env)
		return nil
	}
	return c.enqueueLocked(env)
}

// MarkReplayed records that the transport already delivered seq for a chat
// during catch-up. Parked envelopes at or below the mark are dropped by
// GoLive's sequence guard. Only the resume manager calls this.
func (c *Conn) MarkReplayed(chatID uuid.UUID, seq int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq > c.sent[chatID] {
		c.sent[chatID] = seq
	}
}

// GoLive drains parked envelopes into the buffer and switches the connection
// to direct delivery. Envelopes already covered by replay are dropped by the
// per-chat sequence guard.
func (c *Conn) GoLive() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.err
	}
	for _, env := range c.pending {
		if err := c.enqueueLocked(env); err != nil {
			return err
		}
	}
	c.pending = nil
	c.live = true
	return nil
}

// enqueueLocked puts an envelope on the outbound buffer. Duplicates
// (seq at or below the chat's high-water mark) are silently dropped.
func (c *Conn) enqueueLocked(env *model.Envelope) error {
	if env.Seq <= c.sent[env.ChatID] {
		return nil
	}
	select {
	case c.out <- env:
		c.sent[env.ChatID] = env.Seq
		return nil
	default:
		c.closeLocked(errs.ErrBufferOverflow)
		return errs.ErrBufferOverflow
	}
}

// Close shuts the connection down with the given reason. Buffered envelopes
// are discarded; the owner recovers them through resume.
func (c *Conn) Close(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked(err)
}

func (c *Conn) closeLocked(err error) {
	if c.closed {
		return
	}
	if err == nil {
		err = errs.ErrConnClosed
	}
	c.closed = true
	c.err = err
	close(c.done)
}
