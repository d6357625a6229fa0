package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard/internal/feature/auth/domain/entity"
	"taskboard/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&SessionModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// newTestSession creates a session entity expiring after the given duration.
func newTestSession(id string, userID uint, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestGormStore_CreateAndFind(t *testing.T) {
	store := NewGormStore(setupTestDB(t))

	session := newTestSession("session-001", 7, time.Hour)
	require.NoError(t, store.Create(context.Background(), session))

	found, err := store.FindByID(context.Background(), "session-001")

	require.NoError(t, err)
	assert.Equal(t, uint(7), found.UserID)
	assert.WithinDuration(t, session.ExpiresAt, found.ExpiresAt, time.Second)
}

func TestGormStore_FindByID_Unknown(t *testing.T) {
	store := NewGormStore(setupTestDB(t))

	found, err := store.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	assert.Nil(t, found)
}

func TestGormStore_FindByID_Expired(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormStore(db)

	require.NoError(t, store.Create(context.Background(), newTestSession("stale", 7, -time.Hour)))

	found, err := store.FindByID(context.Background(), "stale")

	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	assert.Nil(t, found)

	// The expired row is purged on lookup.
	var count int64
	require.NoError(t, db.Model(&SessionModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGormStore_Delete(t *testing.T) {
	store := NewGormStore(setupTestDB(t))

	require.NoError(t, store.Create(context.Background(), newTestSession("session-001", 7, time.Hour)))
	require.NoError(t, store.Delete(context.Background(), "session-001"))

	_, err := store.FindByID(context.Background(), "session-001")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	// Deleting an unknown ID is not an error.
	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestGormStore_DeleteExpired(t *testing.T) {
	store := NewGormStore(setupTestDB(t))

	require.NoError(t, store.Create(context.Background(), newTestSession("live", 1, time.Hour)))
	require.NoError(t, store.Create(context.Background(), newTestSession("stale-1", 1, -time.Hour)))
	require.NoError(t, store.Create(context.Background(), newTestSession("stale-2", 2, -time.Minute)))

	n, err := store.DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = store.FindByID(context.Background(), "live")
	assert.NoError(t, err)
}
