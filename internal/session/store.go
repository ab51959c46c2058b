// Package session implements the server-side session store. The caller
// holds only an opaque token in a cookie; all state lives in Redis and
// expires after the configured TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sekolahfit/segak-api/internal/models"
)

// CookieName is the cookie carrying the session token.
const CookieName = "segak_session"

const keyPrefix = "session:"

// ErrNotFound indicates the token does not map to a live session.
var ErrNotFound = errors.New("session not found")

// Session is the per-caller state set at login and cleared at logout.
type Session struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name"`
}

// Store persists sessions in Redis keyed by an opaque token.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewStore builds a session store with the given TTL.
func NewStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "session_store").Logger(),
	}
}

// Create mints a fresh token and stores the session under it.
func (s *Store) Create(ctx context.Context, sess Session) (string, error) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Get resolves a token to its session, refreshing the TTL on hit.
func (s *Store) Get(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNotFound
	}

	payload, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return Session{}, fmt.Errorf("failed to decode session: %w", err)
	}

	if err := s.client.Expire(ctx, keyPrefix+token, s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to refresh session ttl")
	}

	return sess, nil
}

// Destroy removes the session bound to the token. Destroying an unknown
// token is not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
