package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"minifeed/internal/model"
	"minifeed/internal/pkg"
	"minifeed/internal/repository/db"
	"minifeed/pkg/logging"
	"minifeed/pkg/telemetry"
)

type UserService struct {
	repo     *db.UserRepository
	hasher   pkg.Hasher
	events   pkg.Publisher
	counters *telemetry.Counters
	log      *zap.Logger
	now      func() time.Time
}

func NewUserService(repo *db.UserRepository, hasher pkg.Hasher, events pkg.Publisher, counters *telemetry.Counters) *UserService {
	return &UserService{
		repo:     repo,
		hasher:   hasher,
		events:   events,
		counters: counters,
		log:      logging.WithComponent("user-service"),
		now:      time.Now,
	}
}

// Register creates the account and returns the stored username.
func (s *UserService) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrFieldsRequired
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkg.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateUser) {
			return "", ErrUsernameTaken
		}
		return "", err
	}

	s.counters.UsersRegistered.Add(ctx, 1)
	publish(ctx, s.events, s.log, pkg.Activity{
		Type:  pkg.ActivityUserRegistered,
		Actor: username,
		At:    user.CreatedAt,
	})
	return username, nil
}

// Login checks the credentials. A missing user and a wrong password give the
// same ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, db.ErrUserNotFound) {
		return "", err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		s.counters.LoginsFailed.Add(ctx, 1)
		return "", ErrInvalidCredentials
	}
	return user.Username, nil
}
