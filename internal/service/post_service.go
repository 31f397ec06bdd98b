package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"minifeed/internal/model"
	"minifeed/internal/pkg"
	"minifeed/internal/repository/db"
	"minifeed/pkg/logging"
	"minifeed/pkg/telemetry"
)

type PostService struct {
	repo     *db.PostRepository
	events   pkg.Publisher
	counters *telemetry.Counters
	log      *zap.Logger
	now      func() time.Time
}

func NewPostService(repo *db.PostRepository, events pkg.Publisher, counters *telemetry.Counters) *PostService {
	return &PostService{
		repo:     repo,
		events:   events,
		counters: counters,
		log:      logging.WithComponent("post-service"),
		now:      time.Now,
	}
}

// CreatePost stores a post stamped with the current UTC second. A body that
// is empty after trimming gives ErrEmptyBody and stores nothing.
func (s *PostService) CreatePost(ctx context.Context, author, body string) (*model.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	post := &model.Post{
		Author:  author,
		Body:    body,
		Created: s.now().UTC().Truncate(time.Second),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.counters.PostsCreated.Add(ctx, 1)
	publish(ctx, s.events, s.log, pkg.Activity{
		Type:   pkg.ActivityPostCreated,
		Actor:  author,
		PostID: post.ID,
		At:     post.Created,
	})
	return post, nil
}
