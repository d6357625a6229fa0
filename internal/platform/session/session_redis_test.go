package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/feature/auth/usecase"
)

func TestNewRedisStore(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	store := NewRedisStore(rdb, "session")

	assert.NotNil(t, store)
	assert.Equal(t, "session:abc", store.sessionKey("abc"))
}

func TestRedisStore_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		session := newTestSession("session-001", 7, time.Hour)

		// The exact serialized payload and remaining TTL vary, so the
		// argument matcher is relaxed.
		mock.CustomMatch(func(expected, actual []interface{}) error {
			return nil
		}).ExpectSet("session:session-001", "", time.Hour).SetVal("OK")

		store := NewRedisStore(rdb, "session")
		err := store.Create(context.Background(), session)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already expired session is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		store := NewRedisStore(rdb, "session")
		err := store.Create(context.Background(), newTestSession("stale", 7, -time.Hour))

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet(), "redis must not be touched")
	})
}

func TestRedisStore_FindByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		session := newTestSession("session-001", 7, time.Hour)
		data, err := json.Marshal(session)
		require.NoError(t, err)

		mock.ExpectGet("session:session-001").SetVal(string(data))

		store := NewRedisStore(rdb, "session")
		found, err := store.FindByID(context.Background(), "session-001")

		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, session.UserID, found.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown session", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectGet("session:missing").RedisNil()

		store := NewRedisStore(rdb, "session")
		found, err := store.FindByID(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
		assert.Nil(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt payload", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectGet("session:bad").SetVal("{not json")

		store := NewRedisStore(rdb, "session")
		found, err := store.FindByID(context.Background(), "bad")

		assert.Error(t, err)
		assert.Nil(t, found)
	})
}

func TestRedisStore_Delete(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("session:session-001").SetVal(1)

	store := NewRedisStore(rdb, "session")
	err := store.Delete(context.Background(), "session-001")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
