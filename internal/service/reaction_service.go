package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"minifeed/internal/model"
	"minifeed/internal/pkg"
	"minifeed/internal/repository/db"
	"minifeed/pkg/logging"
	"minifeed/pkg/telemetry"
)

type ReactionService struct {
	repo     *db.ReactionRepository
	events   pkg.Publisher
	counters *telemetry.Counters
	log      *zap.Logger
	now      func() time.Time
}

func NewReactionService(repo *db.ReactionRepository, events pkg.Publisher, counters *telemetry.Counters) *ReactionService {
	return &ReactionService{
		repo:     repo,
		events:   events,
		counters: counters,
		log:      logging.WithComponent("reaction-service"),
		now:      time.Now,
	}
}

// React records author's emoji on the post. Reacting twice with the same
// emoji is a no-op reported as changed=false.
func (s *ReactionService) React(ctx context.Context, author string, postID uint64, emoji string) (bool, error) {
	if emoji == "" {
		return false, ErrEmojiRequired
	}
	if len(emoji) > model.MaxEmojiLen {
		return false, ErrEmojiTooLong
	}

	changed, err := s.repo.Add(ctx, &model.Reaction{PostID: postID, Author: author, Emoji: emoji})
	if err != nil {
		if errors.Is(err, db.ErrReferenceMissing) {
			return false, ErrPostNotFound
		}
		return false, err
	}
	if !changed {
		return false, nil
	}

	s.counters.ReactionsCreated.Add(ctx, 1)
	publish(ctx, s.events, s.log, pkg.Activity{
		Type:   pkg.ActivityReactionCreated,
		Actor:  author,
		PostID: postID,
		Emoji:  emoji,
		At:     s.now().UTC().Truncate(time.Second),
	})
	return true, nil
}
