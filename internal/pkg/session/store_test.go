package session_test

import (
	"sync"
	"testing"
	"time"

	"staffhub/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, ttl time.Duration) *session.Session {
	t.Helper()

	id, err := session.GenerateID()
	require.NoError(t, err)

	now := time.Now()
	return &session.Session{
		ID:        id,
		Username:  "morgan",
		CSRFToken: "token-1",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestGenerateID_IsUnique(t *testing.T) {
	a, err := session.GenerateID()
	require.NoError(t, err)
	b, err := session.GenerateID()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestStore_CreateAndGet(t *testing.T) {
	store := session.NewInMemoryStore()
	sess := newTestSession(t, time.Hour)

	require.NoError(t, store.Create(sess))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Username, got.Username)
	assert.Equal(t, sess.CSRFToken, got.CSRFToken)

	// Mutating the returned copy must not leak into the store
	got.Username = "intruder"
	again, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "morgan", again.Username)
}

func TestStore_GetUnknown(t *testing.T) {
	store := session.NewInMemoryStore()

	_, err := store.Get("no-such-session")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStore_ExpiredSessionIsGone(t *testing.T) {
	store := session.NewInMemoryStore()
	sess := newTestSession(t, -time.Minute)

	require.NoError(t, store.Create(sess))

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.Equal(t, 0, store.Len(), "expired session is removed on read")
}

func TestStore_TouchSlidesExpiry(t *testing.T) {
	store := session.NewInMemoryStore()
	sess := newTestSession(t, time.Second)
	require.NoError(t, store.Create(sess))

	require.NoError(t, store.Touch(sess.ID, time.Hour))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.True(t, got.ExpiresAt.After(time.Now().Add(30*time.Minute)))
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := session.NewInMemoryStore()
	sess := newTestSession(t, time.Hour)
	require.NoError(t, store.Create(sess))

	require.NoError(t, store.Delete(sess.ID))
	require.NoError(t, store.Delete(sess.ID))

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

// Two requests carrying the same cookie hit Get and Touch at the same
// time; run under -race this catches unsynchronized ExpiresAt access.
func TestStore_ConcurrentGetAndTouch(t *testing.T) {
	store := session.NewInMemoryStore()
	sess := newTestSession(t, time.Hour)
	require.NoError(t, store.Create(sess))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if _, err := store.Get(sess.ID); err != nil {
					assert.ErrorIs(t, err, session.ErrNotFound)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_ = store.Touch(sess.ID, time.Hour)
			}
		}()
	}
	wg.Wait()

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "morgan", got.Username)
}

func TestStore_DeleteExpired(t *testing.T) {
	store := session.NewInMemoryStore()

	live := newTestSession(t, time.Hour)
	require.NoError(t, store.Create(live))
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Create(newTestSession(t, -time.Minute)))
	}

	removed := store.DeleteExpired()

	assert.Equal(t, 3, removed)
	assert.Equal(t, 1, store.Len())
	_, err := store.Get(live.ID)
	assert.NoError(t, err)
}
