package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestCursorRepo_Get_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCursorRepo(db)

	userID := uuid.Must(uuid.NewV4())
	chatID := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT COALESCE\(\(SELECT last_seq FROM chat_cursors WHERE user_id=\$1 AND chat_id=\$2\), 0\)`).
		WithArgs(userID, chatID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(17)))

	seq, err := r.Get(context.Background(), userID, chatID)
	require.NoError(t, err)
	require.Equal(t, int64(17), seq)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCursorRepo_Get_NoRow_ReturnsZero(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCursorRepo(db)

	userID := uuid.Must(uuid.NewV4())
	chatID := uuid.Must(uuid.NewV4())

	// COALESCE always yields a row filled with 0 when the pair is absent.
	mock.ExpectQuery(`SELECT COALESCE\(\(SELECT last_seq FROM chat_cursors WHERE user_id=\$1 AND chat_id=\$2\), 0\)`).
		WithArgs(userID, chatID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))

	seq, err := r.Get(context.Background(), userID, chatID)
	require.NoError(t, err)
	require.Equal(t, int64(0), seq)
}

func TestCursorRepo_Advance_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCursorRepo(db)

	userID := uuid.Must(uuid.NewV4())
	chatID := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`INSERT INTO chat_cursors \(user_id, chat_id, last_seq\)\s+VALUES \(\$1, \$2, \$3\)\s+ON CONFLICT \(user_id, chat_id\)\s+DO UPDATE SET last_seq = GREATEST\(chat_cursors\.last_seq, EXCLUDED\.last_seq\), updated_at = now\(\)`).
		WithArgs(userID, chatID, int64(9)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Advance(context.Background(), userID, chatID, 9))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCursorRepo_Advance_Error(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCursorRepo(db)

	userID := uuid.Must(uuid.NewV4())
	chatID := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`INSERT INTO chat_cursors`).
		WithArgs(userID, chatID, int64(1)).
		WillReturnError(errors.New("connection refused"))

	require.Error(t, r.Advance(context.Background(), userID, chatID, 1))
}
