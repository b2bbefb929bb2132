// Package registry tracks live client connections keyed by user id.
package registry

import (
	"errors"
	"hash/fnv"
	"sync"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
)

const shardCount = 32

type shard struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]map[*Conn]struct{}
}

// Registry maps user ids to their open connections (0..N per user for
// multi-device). The map is sharded by user id so that register, unregister
// and push for unrelated users do not serialize on a single lock.
type Registry struct {
	shards [shardCount]*shard
	buffer int
	log    *zap.Logger
}

// New constructs a registry. buffer is the outbound buffer size applied to
// connections created through NewConn.
func New(buffer int, log *zap.Logger) *Registry {
	r := &Registry{buffer: buffer, log: log}
	for i := range r.shards {
		r.shards[i] = &shard{conns: make(map[uuid.UUID]map[*Conn]struct{})}
	}
	return r
}

// NewConn creates a connection with the registry's buffer size. The caller
// must Register it before it can receive live pushes.
func (r *Registry) NewConn(userID uuid.UUID) *Conn {
	return NewConn(userID, r.buffer)
}

func (r *Registry) shardFor(userID uuid.UUID) *shard {
	h := fnv.New32a()
	_, _ = h.Write(userID.Bytes())
	return r.shards[h.Sum32()%shardCount]
}

// Register adds a connection to its user's set.
func (r *Registry) Register(c *Conn) {
	s := r.shardFor(c.userID)
	s.mu.Lock()
	set, ok := s.conns[c.userID]
	if !ok {
		set = make(map[*Conn]struct{})
		s.conns[c.userID] = set
	}
	set[c] = struct{}{}
	s.mu.Unlock()
}

// Unregister removes a connection from its user's set. Safe to call for
// connections that were never registered or are already removed.
func (r *Registry) Unregister(c *Conn) {
	s := r.shardFor(c.userID)
	s.mu.Lock()
	if set, ok := s.conns[c.userID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(s.conns, c.userID)
		}
	}
	s.mu.Unlock()
}

// Push delivers an envelope to every open connection of the user and returns
// how many accepted it. A connection that overflows is closed and removed;
// delivery to the user's other connections is unaffected.
func (r *Registry) Push(userID uuid.UUID, env *model.Envelope) int {
	s := r.shardFor(userID)
	s.mu.RLock()
	conns := make([]*Conn, 0, len(s.conns[userID]))
	for c := range s.conns[userID] {
		conns = append(conns, c)
	}
	s.mu.RUnlock()

	delivered := 0
	for _, c := range conns {
		switch err := c.Send(env); {
		case err == nil:
			delivered++
		case errors.Is(err, errs.ErrBufferOverflow):
			r.Unregister(c)
			r.log.Warn("slow consumer dropped",
				zap.String("user", userID.String()),
				zap.String("conn", c.ID().String()),
				zap.String("chat", env.ChatID.String()),
				zap.Int64("seq", env.Seq),
			)
		}
	}
	return delivered
}

// Connections reports how many connections a user currently has.
func (r *Registry) Connections(userID uuid.UUID) int {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conns[userID])
}

// CloseAll closes every registered connection, used on shutdown.
func (r *Registry) CloseAll() {
	for _, s := range r.shards {
		s.mu.Lock()
		for _, set := range s.conns {
			for c := range set {
				c.Close(nil)
			}
		}
		s.conns = make(map[uuid.UUID]map[*Conn]struct{})
		s.mu.Unlock()
	}
}
