package pkg

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// Activity is one user action on the feed.
type Activity struct {
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	PostID    uint64    `json:"post_id,omitempty"`
	CommentID uint64    `json:"comment_id,omitempty"`
	Emoji     string    `json:"emoji,omitempty"`
	At        time.Time `json:"at"`
}

const (
	ActivityUserRegistered  = "user.registered"
	ActivityPostCreated     = "post.created"
	ActivityCommentCreated  = "comment.created"
	ActivityReactionCreated = "reaction.created"
)

// Publisher emits activities to an external stream.
type Publisher interface {
	Publish(ctx context.Context, a Activity) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) *KafkaProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  1,
		WriteTimeout: 2 * time.Second,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *KafkaProducer) Send(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Publish keys the message by post so that one post's events stay ordered
// on a single partition; registrations are keyed by user.
func (p *KafkaProducer) Publish(ctx context.Context, a Activity) error {
	value, err := json.Marshal(a)
	if err != nil {
		return err
	}
	key := a.Actor
	if a.PostID != 0 {
		key = MakeKeyFromID(a.PostID)
	}
	return p.Send(ctx, key, value)
}

func MakeKeyFromID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// NopPublisher drops every activity. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Activity) error { return nil }
func (NopPublisher) Close() error                            { return nil }
