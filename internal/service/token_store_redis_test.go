package service

import (
	"context"
	"testing"
	"time"

	"edoc-portal/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisTokenStore(t *testing.T) (TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisTokenStore(client, "edoc:"), mr
}

func TestRedisTokenStore_KeysUseNamespace(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisTokenStore(t)
	userID := uuid.New()

	require.NoError(t, s.Save(ctx, userID, "t1", jwt.AccessToken, time.Hour))
	_, err := s.RecordFailedLogin(ctx, "jane@example.com", 15*time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.SaveOneTime(ctx, PurposePasswordReset, "r1", userID, time.Hour))

	assert.True(t, mr.Exists("edoc:access_token:"+userID.String()+":t1"))
	assert.True(t, mr.Exists("edoc:login_attempts:jane@example.com"))
	assert.True(t, mr.Exists("edoc:password_reset:r1"))
	for _, key := range mr.Keys() {
		assert.Contains(t, key, "edoc:", "every key is namespaced")
	}
}

func TestRedisTokenStore_SaveExistsExpire(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisTokenStore(t)
	userID := uuid.New()

	require.NoError(t, s.Save(ctx, userID, "t1", jwt.AccessToken, time.Hour))

	ok, err := s.Exists(ctx, userID, "t1", jwt.AccessToken)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = s.Exists(ctx, userID, "t1", jwt.RefreshToken)
	assert.False(t, ok)

	mr.FastForward(2 * time.Hour)
	ok, _ = s.Exists(ctx, userID, "t1", jwt.AccessToken)
	assert.False(t, ok, "expired token")
}

func TestRedisTokenStore_RevokeAll(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestRedisTokenStore(t)
	alice, bob := uuid.New(), uuid.New()

	for _, id := range []string{"a1", "a2", "a3"} {
		require.NoError(t, s.Save(ctx, alice, id, jwt.AccessToken, time.Hour))
		require.NoError(t, s.Save(ctx, alice, id, jwt.RefreshToken, time.Hour))
	}
	require.NoError(t, s.Save(ctx, bob, "b1", jwt.RefreshToken, time.Hour))

	require.NoError(t, s.Revoke(ctx, alice, "a1", jwt.AccessToken))
	ok, _ := s.Exists(ctx, alice, "a1", jwt.AccessToken)
	assert.False(t, ok)

	require.NoError(t, s.RevokeAll(ctx, alice))
	for _, id := range []string{"a1", "a2", "a3"} {
		ok, _ = s.Exists(ctx, alice, id, jwt.AccessToken)
		assert.False(t, ok)
		ok, _ = s.Exists(ctx, alice, id, jwt.RefreshToken)
		assert.False(t, ok)
	}
	ok, _ = s.Exists(ctx, bob, "b1", jwt.RefreshToken)
	assert.True(t, ok, "other users keep their tokens")
}

func TestRedisTokenStore_OneTimeTokens(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisTokenStore(t)
	userID := uuid.New()

	require.NoError(t, s.SaveOneTime(ctx, PurposeEmailVerification, "v1", userID, time.Hour))

	got, found, err := s.ConsumeOneTime(ctx, PurposeEmailVerification, "v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, userID, got)

	_, found, err = s.ConsumeOneTime(ctx, PurposeEmailVerification, "v1")
	require.NoError(t, err)
	assert.False(t, found, "tokens are single use")

	require.NoError(t, s.SaveOneTime(ctx, PurposePasswordReset, "r1", userID, time.Hour))
	mr.FastForward(61 * time.Minute)
	_, found, err = s.ConsumeOneTime(ctx, PurposePasswordReset, "r1")
	require.NoError(t, err)
	assert.False(t, found, "expired token")
}

func TestRedisTokenStore_FailedLogins(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisTokenStore(t)

	for i := 1; i <= 3; i++ {
		n, err := s.RecordFailedLogin(ctx, "jane@example.com", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(i), n)
	}

	n, err := s.FailedLogins(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = s.FailedLogins(ctx, "other@example.com")
	require.NoError(t, err)
	assert.Zero(t, n)

	mr.FastForward(16 * time.Minute)
	n, _ = s.FailedLogins(ctx, "jane@example.com")
	assert.Zero(t, n, "window elapsed")

	_, _ = s.RecordFailedLogin(ctx, "jane@example.com", 15*time.Minute)
	require.NoError(t, s.ResetFailedLogins(ctx, "jane@example.com"))
	n, _ = s.FailedLogins(ctx, "jane@example.com")
	assert.Zero(t, n)
}
