package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rcrwhyg/chat/internal/model"
	"github.com/rcrwhyg/chat/internal/registry"
	"github.com/rcrwhyg/chat/internal/repository"
)

type cursorWrite struct {
	userID uuid.UUID
	chatID uuid.UUID
	seq    int64
}

type fakeCursorRepo struct {
	mu     sync.Mutex
	writes []cursorWrite
	err    error
}

var _ repository.CursorRepository = (*fakeCursorRepo)(nil)

func (f *fakeCursorRepo) Get(context.Context, uuid.UUID, uuid.UUID) (int64, error) {
	return 0, nil
}
func (f *fakeCursorRepo) Advance(_ context.Context, userID, chatID uuid.UUID, seq int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, cursorWrite{userID: userID, chatID: chatID, seq: seq})
	return nil
}

func (f *fakeCursorRepo) all() []cursorWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]cursorWrite(nil), f.writes...)
}

func env(userID, chatID uuid.UUID, seq int64) *model.Envelope {
	return &model.Envelope{
		TargetUserID: userID,
		ChatID:       chatID,
		Kind:         model.EventMessageCreated,
		Seq:          seq,
	}
}

func TestDispatcher_Deliver_AdvancesCursor(t *testing.T) {
	reg := registry.New(8, zap.NewNop())
	cursors := &fakeCursorRepo{}
	d := New(reg, cursors, 2, zap.NewNop())

	user := uuid.Must(uuid.NewV4())
	chat := uuid.Must(uuid.NewV4())

	conn := reg.NewConn(user)
	require.NoError(t, conn.GoLive())
	reg.Register(conn)

	d.deliver(context.Background(), env(user, chat, 1))

	writes := cursors.all()
	require.Len(t, writes, 1)
	require.Equal(t, cursorWrite{userID: user, chatID: chat, seq: 1}, writes[0])

	select {
	case e := <-conn.Out():
		require.Equal(t, int64(1), e.Seq)
	default:
		t.Fatal("envelope not delivered")
	}
}

func TestDispatcher_OfflineUser_CursorUntouched(t *testing.T) {
	reg := registry.New(8, zap.NewNop())
	cursors := &fakeCursorRepo{}
	d := New(reg, cursors, 2, zap.NewNop())

	d.deliver(context.Background(), env(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), 1))
	require.Empty(t, cursors.all())
}

func TestDispatcher_Run_PerChatOrderSurvivesPool(t *testing.T) {
	reg := registry.New(64, zap.NewNop())
	cursors := &fakeCursorRepo{}
	d := New(reg, cursors, 4, zap.NewNop())

	user := uuid.Must(uuid.NewV4())
	chat := uuid.Must(uuid.NewV4())

	conn := reg.NewConn(user)
	require.NoError(t, conn.GoLive())
	reg.Register(conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envelopes := make(chan *model.Envelope, 16)
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx, envelopes) }()

	const n = 10
	for seq := int64(1); seq <= n; seq++ {
		envelopes <- env(user, chat, seq)
	}

	for seq := int64(1); seq <= n; seq++ {
		select {
		case e := <-conn.Out():
			require.Equal(t, seq, e.Seq)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for seq %d", seq)
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestDispatcher_CursorFailure_DoesNotBlockDelivery(t *testing.T) {
	reg := registry.New(8, zap.NewNop())
	cursors := &fakeCursorRepo{err: context.DeadlineExceeded}
	d := New(reg, cursors, 1, zap.NewNop())

	user := uuid.Must(uuid.NewV4())
	chat := uuid.Must(uuid.NewV4())

	conn := reg.NewConn(user)
	require.NoError(t, conn.GoLive())
	reg.Register(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	d.deliver(ctx, env(user, chat, 1))

	// The envelope reached the connection even though the cursor write failed.
	select {
	case e := <-conn.Out():
		require.Equal(t, int64(1), e.Seq)
	default:
		t.Fatal("envelope not delivered")
	}
}

func TestShardIndex_Stable(t *testing.T) {
	chat := uuid.Must(uuid.NewV4())
	first := shardIndex(chat.Bytes(), 8)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, shardIndex(chat.Bytes(), 8))
	}
	require.GreaterOrEqual(t, first, 0)
	require.Less(t, first, 8)
}
