package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

const sessionTokenBytes = 32 // 256 bits of entropy, rendered as 64 hex chars

type authService struct {
	userRepo    ports.UserRepository
	sessionRepo ports.SessionRepository
	now         func() time.Time
}

func NewAuthService(userRepo ports.UserRepository, sessionRepo ports.SessionRepository) ports.AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		// Same failure as a wrong password so callers cannot probe which
		// emails exist.
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	return token, user.Public(), nil
}

// issueSession replaces any previous sessions of the user with a fresh one.
// The delete must happen before the insert: a crash in between leaves the
// user with zero valid tokens rather than two.
func (s *authService) issueSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.sessionRepo.DeleteByUser(ctx, user.ID); err != nil {
		return "", fmt.Errorf("failed to revoke previous sessions: %w", err)
	}

	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: s.now(),
	}
	if err := s.sessionRepo.Store(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	// Opportunistic purge, standing in for a store-level TTL index. Failure
	// here must not fail the login.
	_ = s.sessionRepo.DeleteExpired(ctx, s.now().Add(-domain.SessionTTL))

	return token, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrInvalidToken
	}
	// The store already filters expired rows; re-check in case one slipped
	// through before the purge ran.
	if session.Expired(s.now()) {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}

	return user.Public(), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
