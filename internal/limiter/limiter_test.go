package limiter

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/rcrwhyg/chat/internal/errs"
)

func TestConnLimiter_Cap(t *testing.T) {
	l := New(2)
	user := uuid.Must(uuid.NewV4())

	require.NoError(t, l.Acquire(user))
	require.NoError(t, l.Acquire(user))
	require.ErrorIs(t, l.Acquire(user), errs.ErrTooManyStreams)

	l.Release(user)
	require.NoError(t, l.Acquire(user))
	require.Equal(t, 2, l.Open(user))
}

func TestConnLimiter_PerUser(t *testing.T) {
	l := New(1)
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	require.NoError(t, l.Acquire(alice))
	require.NoError(t, l.Acquire(bob))
	require.ErrorIs(t, l.Acquire(alice), errs.ErrTooManyStreams)
}

func TestConnLimiter_ZeroCapDisables(t *testing.T) {
	l := New(0)
	user := uuid.Must(uuid.NewV4())
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Acquire(user))
	}
}

func TestConnLimiter_ReleaseCleansUp(t *testing.T) {
	l := New(4)
	user := uuid.Must(uuid.NewV4())

	require.NoError(t, l.Acquire(user))
	l.Release(user)
	require.Equal(t, 0, l.Open(user))

	// Releasing an unknown user must not underflow.
	l.Release(uuid.Must(uuid.NewV4()))
}
