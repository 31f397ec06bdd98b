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

type CommentService struct {
	repo     *db.CommentRepository
	events   pkg.Publisher
	counters *telemetry.Counters
	log      *zap.Logger
	now      func() time.Time
}

func NewCommentService(repo *db.CommentRepository, events pkg.Publisher, counters *telemetry.Counters) *CommentService {
	return &CommentService{
		repo:     repo,
		events:   events,
		counters: counters,
		log:      logging.WithComponent("comment-service"),
		now:      time.Now,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, author string, postID uint64, body string) (*model.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	comment := &model.Comment{
		PostID:  postID,
		Author:  author,
		Body:    body,
		Created: s.now().UTC().Truncate(time.Second),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		if errors.Is(err, db.ErrReferenceMissing) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	s.counters.CommentsCreated.Add(ctx, 1)
	publish(ctx, s.events, s.log, pkg.Activity{
		Type:      pkg.ActivityCommentCreated,
		Actor:     author,
		PostID:    postID,
		CommentID: comment.ID,
		At:        comment.Created,
	})
	return comment, nil
}
