// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/feature/auth/domain/entity"
	"taskboard/internal/feature/auth/usecase"
)

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm for the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds a user to the database.
// A duplicate nome surfaces as usecase.ErrNomeAlreadyExists. This relies
// on gorm.Config.TranslateError being enabled on the connection.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrNomeAlreadyExists
		}
		return err
	}
	return nil
}

// FindByNome retrieves a user by login name.
// It returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByNome(ctx context.Context, nome string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
