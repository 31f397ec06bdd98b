package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"minifeed/internal/pkg"
	"minifeed/internal/repository/db"
	rrepo "minifeed/internal/repository/redis"
	"minifeed/pkg/logging"
)

// SessionRegistry is the optional server-side record of live sessions.
type SessionRegistry interface {
	Add(ctx context.Context, tokenID, username string, ttl time.Duration) error
	Lookup(ctx context.Context, tokenID string) (string, error)
	Delete(ctx context.Context, tokenID string) error
}

type SessionService struct {
	signer   *pkg.SessionSigner
	registry SessionRegistry
	users    *db.UserRepository
	log      *zap.Logger
}

// NewSessionService builds the session service. registry may be nil, in
// which case sessions live only in the signed cookie.
func NewSessionService(signer *pkg.SessionSigner, registry SessionRegistry, users *db.UserRepository) *SessionService {
	return &SessionService{
		signer:   signer,
		registry: registry,
		users:    users,
		log:      logging.WithComponent("session-service"),
	}
}

func (s *SessionService) TTL() time.Duration { return s.signer.TTL() }

// Start issues a session token for username.
func (s *SessionService) Start(ctx context.Context, username string) (string, error) {
	token, claims, err := s.signer.Issue(username)
	if err != nil {
		return "", err
	}
	if s.registry != nil {
		if err := s.registry.Add(ctx, claims.ID, username, s.signer.TTL()); err != nil {
			return "", err
		}
	}
	return token, nil
}

// Resolve returns the user a token belongs to. The token must verify, be
// known to the registry when there is one, and name a user that still exists.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}
	claims, err := s.signer.Parse(token)
	if err != nil {
		return "", ErrNoSession
	}
	if s.registry != nil {
		owner, err := s.registry.Lookup(ctx, claims.ID)
		if err != nil {
			if errors.Is(err, rrepo.ErrSessionNotFound) {
				return "", ErrNoSession
			}
			// Registry down: the token may still be good, so keep it.
			return "", fmt.Errorf("session registry: %w", err)
		}
		if owner != claims.Username {
			return "", ErrNoSession
		}
	}
	ok, err := s.users.Exists(ctx, claims.Username)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoSession
	}
	return claims.Username, nil
}

// End revokes the token. It never fails: an unknown or malformed token is
// already as logged out as it can get.
func (s *SessionService) End(ctx context.Context, token string) {
	if s.registry == nil || token == "" {
		return
	}
	claims, err := s.signer.Parse(token)
	if err != nil {
		return
	}
	if err := s.registry.Delete(ctx, claims.ID); err != nil {
		s.log.Warn("session revoke failed", zap.Error(err))
	}
}
