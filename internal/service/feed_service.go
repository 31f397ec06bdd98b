package service

import (
	"context"

	"minifeed/internal/model"
	"minifeed/internal/repository/db"
)

// FeedItem is a post with its comments (oldest first) and reaction counts
// (ordered by emoji).
type FeedItem struct {
	Post      model.Post
	Comments  []model.Comment
	Reactions []model.ReactionCount
}

type FeedService struct {
	posts     *db.PostRepository
	comments  *db.CommentRepository
	reactions *db.ReactionRepository
}

func NewFeedService(posts *db.PostRepository, comments *db.CommentRepository, reactions *db.ReactionRepository) *FeedService {
	return &FeedService{posts: posts, comments: comments, reactions: reactions}
}

// Load assembles the whole feed, newest post first. There is no paging.
func (s *FeedService) Load(ctx context.Context) ([]FeedItem, error) {
	posts, err := s.posts.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.reactions.CountGrouped(ctx)
	if err != nil {
		return nil, err
	}

	byPost := make(map[uint64][]model.Comment)
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	reactionsByPost := make(map[uint64][]model.ReactionCount)
	for _, rc := range counts {
		reactionsByPost[rc.PostID] = append(reactionsByPost[rc.PostID], rc)
	}

	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, FeedItem{
			Post:      p,
			Comments:  byPost[p.ID],
			Reactions: reactionsByPost[p.ID],
		})
	}
	return items, nil
}
