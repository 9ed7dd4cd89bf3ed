package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.Session{}}
}

func (r *fakeSessionRepo) Store(_ context.Context, session *domain.Session) error {
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *fakeSessionRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for token, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, token)
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context, before time.Time) error {
	for token, s := range r.sessions {
		if s.CreatedAt.Before(before) {
			delete(r.sessions, token)
		}
	}
	return nil
}

func setupAuthService(t *testing.T) (ports.AuthService, *fakeUserRepo, *fakeSessionRepo, *domain.User) {
	t.Helper()

	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	svc := NewAuthService(userRepo, sessionRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash)}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return svc, userRepo, sessionRepo, user
}

func TestLoginVerifyRoundtrip(t *testing.T) {
	svc, _, _, user := setupAuthService(t)
	ctx := context.Background()

	token, publicUser, err := svc.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Equal(t, user.Email, publicUser.Email)
	assert.Empty(t, publicUser.PasswordHash)

	verified, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
	assert.Empty(t, verified.PasswordHash)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	token, _, err := svc.Login(context.Background(), "  ALICE@Example.COM ", "s3cret!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginIndistinguishableFailures(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	_, _, unknownErr := svc.Login(ctx, "nobody@example.com", "s3cret!")
	_, _, wrongPassErr := svc.Login(ctx, "alice@example.com", "wrong")

	// Unknown email and wrong password must be the exact same error so the
	// endpoint cannot be used to enumerate accounts.
	assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	var vErr *domain.ValidationError
	_, _, err := svc.Login(ctx, "", "s3cret!")
	assert.ErrorAs(t, err, &vErr)

	_, _, err = svc.Login(ctx, "alice@example.com", "")
	assert.ErrorAs(t, err, &vErr)
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	first, _, err := svc.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)

	second, _, err := svc.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = svc.Verify(ctx, first)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.Verify(ctx, second)
	assert.NoError(t, err)
}

func TestVerifyExpiredSession(t *testing.T) {
	svc, _, sessionRepo, user := setupAuthService(t)
	ctx := context.Background()

	session := &domain.Session{
		Token:     "expiredtoken",
		UserID:    user.ID,
		CreatedAt: time.Now().Add(-domain.SessionTTL - time.Minute),
	}
	require.NoError(t, sessionRepo.Store(ctx, session))

	_, err := svc.Verify(ctx, "expiredtoken")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyMissingAndUnknownToken(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Verify(ctx, "")
	assert.ErrorIs(t, err, domain.ErrMissingToken)

	_, err = svc.Verify(ctx, "deadbeef")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogoutIdempotent(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	// Logging out an already-revoked token still succeeds.
	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogoutMissingToken(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	err := svc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestLoginPurgesExpiredSessions(t *testing.T) {
	svc, userRepo, sessionRepo, _ := setupAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("other"), bcrypt.MinCost)
	require.NoError(t, err)
	other := &domain.User{Name: "Bob", Email: "bob@example.com", PasswordHash: string(hash)}
	require.NoError(t, userRepo.Create(ctx, other))

	stale := &domain.Session{
		Token:     "staletoken",
		UserID:    other.ID,
		CreatedAt: time.Now().Add(-2 * domain.SessionTTL),
	}
	require.NoError(t, sessionRepo.Store(ctx, stale))

	_, _, err = svc.Login(ctx, "alice@example.com", "s3cret!")
	require.NoError(t, err)

	_, ok := sessionRepo.sessions["staletoken"]
	assert.False(t, ok, "expired sessions should be purged on login")
}
