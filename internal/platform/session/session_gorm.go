package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/feature/auth/domain/entity"
	"taskboard/internal/feature/auth/usecase"
)

// SessionModel is the gorm table backing the default session store.
type SessionModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName keeps the table name singular to match the rest of the schema.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the database model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// SessionModelFromEntity converts a domain entity to the database model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

// GormStore implements usecase.SessionStore on the main database. It is
// the default backend when no Redis is configured.
type GormStore struct {
	db *gorm.DB
}

// Compile-time check that GormStore implements SessionStore.
var _ usecase.SessionStore = (*GormStore)(nil)

// NewGormStore creates a new GormStore on the given connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Create persists a new session row.
func (s *GormStore) Create(ctx context.Context, session *entity.Session) error {
	return s.db.WithContext(ctx).Create(SessionModelFromEntity(session)).Error
}

// FindByID retrieves a live session. Expired rows are deleted on the way
// out and reported as not found, matching the TTL behavior of the Redis
// backend.
func (s *GormStore) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var model SessionModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	session := model.ToEntity()
	if session.IsExpired() {
		_ = s.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", id).Error
		return nil, usecase.ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session row. A missing row is not an error.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", id).Error
}

// DeleteExpired removes all expired session rows and returns how many
// were deleted. Intended for periodic housekeeping at startup.
func (s *GormStore) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&SessionModel{})
	return result.RowsAffected, result.Error
}
