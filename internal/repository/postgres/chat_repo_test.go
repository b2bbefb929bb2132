package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func TestChatRepo_GetChat_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewChatRepo(db)

	ctx := context.Background()
	chatID := uuid.Must(uuid.NewV4())
	wsID := uuid.Must(uuid.NewV4())
	members := []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}
	name := "general"
	now := time.Now()

	mock.ExpectQuery(`SELECT id, ws_id, name, type, members, created_at\s+FROM chats WHERE id=\$1`).
		WithArgs(chatID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ws_id", "name", "type", "members", "created_at"}).
			AddRow(chatID, wsID, &name, model.ChatGroup, members, now))

	c, err := r.GetChat(ctx, chatID)
	require.NoError(t, err)
	require.Equal(t, chatID, c.ID)
	require.Equal(t, wsID, c.WorkspaceID)
	require.Equal(t, "general", c.Name)
	require.Equal(t, model.ChatGroup, c.Type)
	require.Equal(t, members, c.Members)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepo_GetChat_Unnamed(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewChatRepo(db)

	chatID := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`SELECT id, ws_id, name, type, members, created_at\s+FROM chats WHERE id=\$1`).
		WithArgs(chatID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ws_id", "name", "type", "members", "created_at"}).
			AddRow(chatID, uuid.Must(uuid.NewV4()), (*string)(nil), model.ChatSingle, []uuid.UUID{}, time.Now()))

	c, err := r.GetChat(context.Background(), chatID)
	require.NoError(t, err)
	require.Equal(t, "", c.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepo_GetChat_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewChatRepo(db)

	chatID := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`SELECT id, ws_id, name, type, members, created_at\s+FROM chats WHERE id=\$1`).
		WithArgs(chatID).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.GetChat(context.Background(), chatID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestChatRepo_GetChatMembers_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewChatRepo(db)

	chatID := uuid.Must(uuid.NewV4())
	members := []uuid.UUID{uuid.Must(uuid.NewV4())}
	mock.ExpectQuery(`SELECT members FROM chats WHERE id=\$1`).
		WithArgs(chatID).
		WillReturnRows(pgxmock.NewRows([]string{"members"}).AddRow(members))

	got, err := r.GetChatMembers(context.Background(), chatID)
	require.NoError(t, err)
	require.Equal(t, members, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepo_ListChatIDsForUser_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewChatRepo(db)

	userID := uuid.Must(uuid.NewV4())
	c1 := uuid.Must(uuid.NewV4())
	c2 := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`SELECT id FROM chats WHERE members @> ARRAY\[\$1\]::uuid\[\]`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(c1).AddRow(c2))

	got, err := r.ListChatIDsForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{c1, c2}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepo_ListChatIDsForUser_None(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewChatRepo(db)

	userID := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`SELECT id FROM chats WHERE members @> ARRAY\[\$1\]::uuid\[\]`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := r.ListChatIDsForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, got)
}
