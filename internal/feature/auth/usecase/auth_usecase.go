package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/feature/auth/domain/entity"
)

const (
	// Length bounds for the nome and senha form fields.
	minNomeLength  = 4
	maxNomeLength  = 20
	minSenhaLength = 8
	maxSenhaLength = 20
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrNomeAlreadyExists if the nome is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByNome retrieves the user with the given login name.
	// It returns ErrUserNotFound if no such user exists.
	FindByNome(ctx context.Context, nome string) (*entity.User, error)
}

// SessionStore abstracts the server-side session storage.
// Implementations live under internal/platform/session.
type SessionStore interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a live session by its cookie value.
	// Expired or unknown sessions yield ErrSessionNotFound.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users      UserRepository
	sessions   SessionStore
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionStore, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// validateNome checks the login-name length bounds.
func validateNome(nome string) error {
	if len(nome) < minNomeLength || len(nome) > maxNomeLength {
		return fmt.Errorf("nome must be between %d and %d characters", minNomeLength, maxNomeLength)
	}
	return nil
}

// validateSenha checks the password length bounds.
func validateSenha(senha string) error {
	if len(senha) < minSenhaLength || len(senha) > maxSenhaLength {
		return fmt.Errorf("senha must be between %d and %d characters", minSenhaLength, maxSenhaLength)
	}
	return nil
}

// newSessionID returns a 64-character hex token from a CSPRNG.
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Login authenticates a user and establishes a session, returning the
// session ID to be set as the browser cookie.
// A bcrypt comparison runs even when the user does not exist, so lookup
// misses and password mismatches are not distinguishable by timing.
func (u *authUsecase) Login(ctx context.Context, nome, senha string) (string, error) {
	user, err := u.users.FindByNome(ctx, nome)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when
	// the user is unknown.
	senhaHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		senhaHash = user.Senha
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(senhaHash), []byte(senha))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Logout clears the session unconditionally. An unknown or already
// cleared session is not an error.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.Delete(ctx, sessionID)
}

// Authenticate resolves a session cookie value to the user it belongs to.
// It returns ErrSessionNotFound for unknown or expired sessions.
func (u *authUsecase) Authenticate(ctx context.Context, sessionID string) (uint, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if session.IsExpired() {
		// Stores backed by a TTL clean this up themselves; the gorm
		// store does not, so expiry is re-checked here.
		_ = u.sessions.Delete(ctx, sessionID)
		return 0, ErrSessionNotFound
	}
	return session.UserID, nil
}

// Register creates a new user with a hashed senha and default status.
// The nome must not already be taken; the check runs before the write in
// addition to the unique index on the column.
func (u *authUsecase) Register(ctx context.Context, nome, email, senha, area string) error {
	if err := validateNome(nome); err != nil {
		return err
	}
	if err := validateSenha(senha); err != nil {
		return err
	}

	if _, err := u.users.FindByNome(ctx, nome); err == nil {
		return ErrNomeAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash senha: %w", err)
	}

	user := &entity.User{
		Nome:   nome,
		Email:  email,
		Senha:  string(hashed),
		Status: entity.StatusActive,
		Area:   area,
	}
	return u.users.Create(ctx, user)
}
