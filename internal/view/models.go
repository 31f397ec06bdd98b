package view

import (
	"minifeed/internal/service"
)

const timeLayout = "2006-01-02T15:04:05"

// ReactionEmojis are the quick-reaction buttons shown under each post.
var ReactionEmojis = []string{"👍", "❤️"}

type Page struct {
	Title       string
	CurrentUser string
	Error       string
	Next        string
}

type FeedPage struct {
	Page
	Posts  []PostView
	Emojis []string
}

type PostView struct {
	ID        uint64
	Author    string
	Body      string
	Created   string
	Comments  []CommentView
	Reactions []ReactionView
}

type CommentView struct {
	Author  string
	Body    string
	Created string
}

type ReactionView struct {
	Emoji string
	Count int64
}

func NewFeedPage(currentUser string, items []service.FeedItem) FeedPage {
	posts := make([]PostView, 0, len(items))
	for _, it := range items {
		pv := PostView{
			ID:      it.Post.ID,
			Author:  it.Post.Author,
			Body:    it.Post.Body,
			Created: it.Post.Created.UTC().Format(timeLayout),
		}
		for _, c := range it.Comments {
			pv.Comments = append(pv.Comments, CommentView{
				Author:  c.Author,
				Body:    c.Body,
				Created: c.Created.UTC().Format(timeLayout),
			})
		}
		for _, r := range it.Reactions {
			pv.Reactions = append(pv.Reactions, ReactionView{Emoji: r.Emoji, Count: r.Count})
		}
		posts = append(posts, pv)
	}
	return FeedPage{
		Page:   Page{CurrentUser: currentUser},
		Posts:  posts,
		Emojis: ReactionEmojis,
	}
}
