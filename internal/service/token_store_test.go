package service

import (
	"context"
	"testing"
	"time"

	"edoc-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestTokenStore() (*memoryTokenStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	s := NewMemoryTokenStore().(*memoryTokenStore)
	s.now = clock.now
	return s, clock
}

func TestMemoryTokenStore_SaveExistsExpire(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestTokenStore()
	userID := uuid.New()

	require.NoError(t, s.Save(ctx, userID, "t1", jwt.AccessToken, time.Hour))

	ok, err := s.Exists(ctx, userID, "t1", jwt.AccessToken)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = s.Exists(ctx, userID, "t1", jwt.RefreshToken)
	assert.False(t, ok, "token type is part of the key")

	clock.t = clock.t.Add(2 * time.Hour)
	ok, _ = s.Exists(ctx, userID, "t1", jwt.AccessToken)
	assert.False(t, ok, "expired token")
}

func TestMemoryTokenStore_Revoke(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestTokenStore()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, s.Save(ctx, alice, "a1", jwt.AccessToken, time.Hour))
	require.NoError(t, s.Save(ctx, alice, "a2", jwt.RefreshToken, time.Hour))
	require.NoError(t, s.Save(ctx, bob, "b1", jwt.AccessToken, time.Hour))

	require.NoError(t, s.Revoke(ctx, alice, "a1", jwt.AccessToken))
	ok, _ := s.Exists(ctx, alice, "a1", jwt.AccessToken)
	assert.False(t, ok)
	ok, _ = s.Exists(ctx, alice, "a2", jwt.RefreshToken)
	assert.True(t, ok)

	require.NoError(t, s.RevokeAll(ctx, alice))
	ok, _ = s.Exists(ctx, alice, "a2", jwt.RefreshToken)
	assert.False(t, ok)
	ok, _ = s.Exists(ctx, bob, "b1", jwt.AccessToken)
	assert.True(t, ok, "other users keep their tokens")
}

func TestMemoryTokenStore_FailedLogins(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestTokenStore()

	for i := 1; i <= 3; i++ {
		n, err := s.RecordFailedLogin(ctx, "jane@example.com", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(i), n)
	}

	n, err := s.FailedLogins(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, _ = s.FailedLogins(ctx, "other@example.com")
	assert.Zero(t, n)

	clock.t = clock.t.Add(16 * time.Minute)
	n, _ = s.FailedLogins(ctx, "jane@example.com")
	assert.Zero(t, n, "window elapsed")

	n, _ = s.RecordFailedLogin(ctx, "jane@example.com", 15*time.Minute)
	assert.Equal(t, int64(1), n, "count restarts after the window")

	require.NoError(t, s.ResetFailedLogins(ctx, "jane@example.com"))
	n, _ = s.FailedLogins(ctx, "jane@example.com")
	assert.Zero(t, n)
}

func TestMemoryTokenStore_OneTimeTokens(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestTokenStore()
	userID := uuid.New()

	require.NoError(t, s.SaveOneTime(ctx, PurposePasswordReset, "reset-1", userID, time.Hour))

	_, found, err := s.ConsumeOneTime(ctx, PurposeEmailVerification, "reset-1")
	require.NoError(t, err)
	assert.False(t, found, "purpose is part of the key")

	got, found, err := s.ConsumeOneTime(ctx, PurposePasswordReset, "reset-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, userID, got)

	_, found, _ = s.ConsumeOneTime(ctx, PurposePasswordReset, "reset-1")
	assert.False(t, found, "tokens are single use")

	require.NoError(t, s.SaveOneTime(ctx, PurposeEmailVerification, "verify-1", userID, time.Hour))
	clock.t = clock.t.Add(61 * time.Minute)
	_, found, _ = s.ConsumeOneTime(ctx, PurposeEmailVerification, "verify-1")
	assert.False(t, found, "expired token")
}
