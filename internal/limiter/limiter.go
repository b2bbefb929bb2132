// Package limiter caps concurrent delivery streams per user.
package limiter

import (
	"sync"

	u "github.com/gofrs/uuid/v5"

	"github.com/rcrwhyg/chat/internal/errs"
)

// ConnLimiter tracks open streams per user and rejects connects past the cap.
// A cap of zero disables the limit.
type ConnLimiter struct {
	mu   sync.Mutex
	open map[u.UUID]int
	cap  int
}

func New(capPerUser int) *ConnLimiter {
	return &ConnLimiter{open: make(map[u.UUID]int), cap: capPerUser}
}

// Acquire reserves a stream slot for the user. The caller must call Release
// exactly once when the stream ends.
func (l *ConnLimiter) Acquire(userID u.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cap > 0 && l.open[userID] >= l.cap {
		return errs.ErrTooManyStreams
	}
	l.open[userID]++
	return nil
}

func (l *ConnLimiter) Release(userID u.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n := l.open[userID]; n <= 1 {
		delete(l.open, userID)
	} else {
		l.open[userID] = n - 1
	}
}

// Open reports the number of streams currently held by the user.
func (l *ConnLimiter) Open(userID u.UUID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open[userID]
}
