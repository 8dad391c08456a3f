package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"edoc-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// TokenStore tracks issued tokens so they can be revoked, holds one-time
// tokens for password reset and email verification, and counts failed
// logins per email for lockout.
type TokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
	SaveOneTime(ctx context.Context, purpose OneTimePurpose, token string, userID uuid.UUID, ttl time.Duration) error
	// ConsumeOneTime deletes the token and returns its user. found is false
	// for unknown, expired or already used tokens.
	ConsumeOneTime(ctx context.Context, purpose OneTimePurpose, token string) (userID uuid.UUID, found bool, err error)
	RecordFailedLogin(ctx context.Context, email string, window time.Duration) (int64, error)
	FailedLogins(ctx context.Context, email string) (int64, error)
	ResetFailedLogins(ctx context.Context, email string) error
}

type OneTimePurpose string

const (
	PurposePasswordReset     OneTimePurpose = "password_reset"
	PurposeEmailVerification OneTimePurpose = "email_verification"
)

// tokenKeys builds every token store key under the record store namespace.
type tokenKeys struct {
	prefix string
}

func (k tokenKeys) token(userID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	return fmt.Sprintf("%s%s_token:%s:%s", k.prefix, tokenType, userID.String(), tokenID)
}

func (k tokenKeys) userTokens(userID uuid.UUID, tokenType jwt.TokenType) string {
	return fmt.Sprintf("%s%s_token:%s:*", k.prefix, tokenType, userID.String())
}

func (k tokenKeys) oneTime(purpose OneTimePurpose, token string) string {
	return k.prefix + string(purpose) + ":" + token
}

func (k tokenKeys) loginAttempts(email string) string {
	return k.prefix + "login_attempts:" + email
}

type redisTokenStore struct {
	redis *redis.Client
	keys  tokenKeys
}

// NewRedisTokenStore keeps tokens under prefix, the same namespace as the
// record store.
func NewRedisTokenStore(client *redis.Client, prefix string) TokenStore {
	return &redisTokenStore{redis: client, keys: tokenKeys{prefix: prefix}}
}

func (s *redisTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	if err := s.redis.Set(ctx, s.keys.token(userID, tokenID, tokenType), "valid", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store token")
	}
	return nil
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	n, err := s.redis.Exists(ctx, s.keys.token(userID, tokenID, tokenType)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check token")
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	if err := s.redis.Del(ctx, s.keys.token(userID, tokenID, tokenType)).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}
	return nil
}

// RevokeAll removes every token of the user. SCAN keeps redis responsive
// where KEYS would block.
func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		iter := s.redis.Scan(ctx, 0, s.keys.userTokens(userID, tokenType), 0).Iterator()
		for iter.Next(ctx) {
			if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
				return errors.Wrap(err, "failed to revoke tokens")
			}
		}
		if err := iter.Err(); err != nil {
			return errors.Wrap(err, "failed to iterate tokens")
		}
	}
	return nil
}

func (s *redisTokenStore) SaveOneTime(ctx context.Context, purpose OneTimePurpose, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.redis.Set(ctx, s.keys.oneTime(purpose, token), userID.String(), ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s token", purpose)
	}
	return nil
}

func (s *redisTokenStore) ConsumeOneTime(ctx context.Context, purpose OneTimePurpose, token string) (uuid.UUID, bool, error) {
	val, err := s.redis.GetDel(ctx, s.keys.oneTime(purpose, token)).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, errors.Wrapf(err, "failed to consume %s token", purpose)
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return userID, true, nil
}

func (s *redisTokenStore) RecordFailedLogin(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := s.keys.loginAttempts(email)
	var incr *redis.IntCmd
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to record login attempt")
	}
	return incr.Val(), nil
}

func (s *redisTokenStore) FailedLogins(ctx context.Context, email string) (int64, error) {
	n, err := s.redis.Get(ctx, s.keys.loginAttempts(email)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read login attempts")
	}
	return n, nil
}

func (s *redisTokenStore) ResetFailedLogins(ctx context.Context, email string) error {
	if err := s.redis.Del(ctx, s.keys.loginAttempts(email)).Err(); err != nil {
		return errors.Wrap(err, "failed to reset login attempts")
	}
	return nil
}

// memoryTokenStore is the in-process TokenStore used with the memory
// record backend and in tests.
type memoryTokenStore struct {
	mu       sync.Mutex
	keys     tokenKeys
	tokens   map[string]time.Time
	oneTime  map[string]oneTimeToken
	attempts map[string]attempt
	now      func() time.Time
}

type oneTimeToken struct {
	userID  uuid.UUID
	expires time.Time
}

type attempt struct {
	count   int64
	expires time.Time
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{
		tokens:   make(map[string]time.Time),
		oneTime:  make(map[string]oneTimeToken),
		attempts: make(map[string]attempt),
		now:      time.Now,
	}
}

func (s *memoryTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[s.keys.token(userID, tokenID, tokenType)] = s.now().Add(ttl)
	return nil
}

func (s *memoryTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expires, ok := s.tokens[s.keys.token(userID, tokenID, tokenType)]
	return ok && s.now().Before(expires), nil
}

func (s *memoryTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, s.keys.token(userID, tokenID, tokenType))
	return nil
}

func (s *memoryTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	suffix := ":" + userID.String() + ":"
	for key := range s.tokens {
		if strings.Contains(key, suffix) {
			delete(s.tokens, key)
		}
	}
	return nil
}

func (s *memoryTokenStore) SaveOneTime(ctx context.Context, purpose OneTimePurpose, token string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oneTime[s.keys.oneTime(purpose, token)] = oneTimeToken{userID: userID, expires: s.now().Add(ttl)}
	return nil
}

func (s *memoryTokenStore) ConsumeOneTime(ctx context.Context, purpose OneTimePurpose, token string) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.keys.oneTime(purpose, token)
	t, ok := s.oneTime[key]
	delete(s.oneTime, key)
	if !ok || !s.now().Before(t.expires) {
		return uuid.Nil, false, nil
	}
	return t.userID, true, nil
}

func (s *memoryTokenStore) RecordFailedLogin(ctx context.Context, email string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.attempts[email]
	if s.now().After(a.expires) {
		a = attempt{}
	}
	a.count++
	a.expires = s.now().Add(window)
	s.attempts[email] = a
	return a.count, nil
}

func (s *memoryTokenStore) FailedLogins(ctx context.Context, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[email]
	if !ok || s.now().After(a.expires) {
		return 0, nil
	}
	return a.count, nil
}

func (s *memoryTokenStore) ResetFailedLogins(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, email)
	return nil
}
