package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"filesmanager/internal/cache"
	"filesmanager/internal/pkg/hash"
	"filesmanager/internal/repository"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "auth_"

// Service exchanges Basic credentials for opaque session tokens and resolves
// or revokes them against the TTL store.
type Service struct {
	users    UserRepository
	sessions cache.Store
	ttl      time.Duration
}

func NewService(users UserRepository, sessions cache.Store, ttl time.Duration) *Service {
	return &Service{users: users, sessions: sessions, ttl: ttl}
}

// Connect validates a Basic Authorization header value and returns a new
// session token. The header carries base64("email:password").
func (s *Service) Connect(ctx context.Context, authHeader string) (string, error) {
	email, password, ok := parseBasicAuth(authHeader)
	if !ok {
		return "", ErrUnauthorized
	}

	user, err := s.users.GetByCredentials(ctx, email, hash.SHA1Hex(password))
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}

	token := uuid.New().String()
	if err := s.sessions.Set(ctx, sessionKeyPrefix+token, user.ID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a token to the user id it was issued for.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	userID, err := s.sessions.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Disconnect revokes the session behind token. Revoking an unknown token is an
// authorization failure, not a no-op.
func (s *Service) Disconnect(ctx context.Context, token string) error {
	if _, err := s.Resolve(ctx, token); err != nil {
		return err
	}
	return s.sessions.Del(ctx, sessionKeyPrefix+token)
}

// parseBasicAuth accepts "Basic <base64>" and requires the decoded value to be
// exactly two colon-separated parts.
func parseBasicAuth(header string) (email, password string, ok bool) {
	if header == "" {
		return "", "", false
	}

	fields := strings.Split(header, " ")
	if len(fields) != 2 {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(fields[1])
	if err != nil {
		return "", "", false
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
