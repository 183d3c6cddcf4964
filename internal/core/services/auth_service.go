package services

import (
	"context"
	"errors"
	"log"
	"time"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/adapters/persistence/repositories"
	"staffhub/internal/core/domain"
	"staffhub/internal/pkg/password"
	"staffhub/internal/pkg/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles the session-based authentication lifecycle:
// credential check, session establishment, CSRF token issuance and
// teardown. Raw passwords are verified against the stored bcrypt hash
// and never logged.
type AuthService struct {
	userRepo repositories.UserAccountRepository
	sessions session.Store
	idleTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserAccountRepository, sessions session.Store, idleTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		idleTTL:  idleTTL,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user and establishes a new server-side session
// bound to the principal. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*models.UserAccountResponse, *session.Session, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	sess := &session.Session{
		ID:        sessionID,
		Username:  user.Username,
		CSRFToken: uuid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.idleTTL),
	}

	if err := s.sessions.Create(sess); err != nil {
		return nil, nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)

	return user.ToResponse(), sess, nil
}

// CurrentUser returns the profile of the authenticated principal
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*models.UserAccountResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// Logout destroys the session. Idempotent: logging out without an
// active session is a no-op.
func (s *AuthService) Logout(sessionID string) {
	if sessionID == "" {
		return
	}
	_ = s.sessions.Delete(sessionID)
	log.Println("✅ User logged out")
}

// GetSession resolves a live session by its identifier
func (s *AuthService) GetSession(sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// TouchSession slides the session's idle expiry forward
func (s *AuthService) TouchSession(sessionID string) {
	_ = s.sessions.Touch(sessionID, s.idleTTL)
}

// CSRFToken returns the anti-forgery token bound to the session.
// Reading it forces issuance so the client can refresh its cookie.
func (s *AuthService) CSRFToken(sessionID string) (string, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", domain.ErrSessionNotFound
	}
	return sess.CSRFToken, nil
}

// IdleTTL exposes the configured session idle lifetime
func (s *AuthService) IdleTTL() time.Duration {
	return s.idleTTL
}
