package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/core/domain"
	"staffhub/internal/core/services"
	"staffhub/internal/pkg/password"
	"staffhub/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserAccountRepo is an in-memory UserAccountRepository
type fakeUserAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]models.UserAccount
}

func newFakeUserAccountRepo() *fakeUserAccountRepo {
	return &fakeUserAccountRepo{accounts: make(map[string]models.UserAccount)}
}

func (r *fakeUserAccountRepo) Create(_ context.Context, user *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uint(len(r.accounts) + 1)
	r.accounts[user.Username] = *user
	return nil
}

func (r *fakeUserAccountRepo) GetByUsername(_ context.Context, username string) (*models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &account, nil
}

func (r *fakeUserAccountRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.accounts)), nil
}

func newAuthFixture(t *testing.T) (*services.AuthService, *fakeUserAccountRepo, session.Store) {
	t.Helper()

	repo := newFakeUserAccountRepo()
	hash, err := password.Hash("pwd1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.UserAccount{
		Username:     "morgan",
		Email:        "morgan@email.com",
		PasswordHash: hash,
	}))

	sessions := session.NewInMemoryStore()
	return services.NewAuthService(repo, sessions, 30*time.Minute), repo, sessions
}

func TestLogin_WrongPassword(t *testing.T) {
	authService, _, _ := newAuthFixture(t)

	_, _, err := authService.Login(context.Background(), &services.LoginInput{
		Username: "morgan",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	authService, _, _ := newAuthFixture(t)

	_, _, err := authService.Login(context.Background(), &services.LoginInput{
		Username: "nobody",
		Password: "pwd1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"unknown user and wrong password must be indistinguishable")
}

func TestLogin_EstablishesSessionWithCSRFToken(t *testing.T) {
	authService, _, sessions := newAuthFixture(t)

	user, sess, err := authService.Login(context.Background(), &services.LoginInput{
		Username: "morgan",
		Password: "pwd1",
	})
	require.NoError(t, err)

	assert.Equal(t, "morgan", user.Username)
	assert.Equal(t, "morgan@email.com", user.Email)

	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, sess.CSRFToken)
	assert.Equal(t, "morgan", sess.Username)

	stored, err := sessions.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.CSRFToken, stored.CSRFToken)
}

func TestCurrentUser(t *testing.T) {
	authService, _, _ := newAuthFixture(t)

	user, err := authService.CurrentUser(context.Background(), "morgan")
	require.NoError(t, err)
	assert.Equal(t, "morgan@email.com", user.Email)

	_, err = authService.CurrentUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogout_DestroysSessionAndIsIdempotent(t *testing.T) {
	authService, _, _ := newAuthFixture(t)

	_, sess, err := authService.Login(context.Background(), &services.LoginInput{
		Username: "morgan",
		Password: "pwd1",
	})
	require.NoError(t, err)

	authService.Logout(sess.ID)
	_, err = authService.GetSession(sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// No active session: still a no-op
	authService.Logout(sess.ID)
	authService.Logout("")
}

func TestCSRFToken_RequiresLiveSession(t *testing.T) {
	authService, _, _ := newAuthFixture(t)

	_, sess, err := authService.Login(context.Background(), &services.LoginInput{
		Username: "morgan",
		Password: "pwd1",
	})
	require.NoError(t, err)

	token, err := authService.CSRFToken(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.CSRFToken, token)

	_, err = authService.CSRFToken("no-such-session")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
