package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classboard/classboard/internal/domain"
	pkgkafka "github.com/classboard/classboard/pkg/kafka"
)

// Kafka topic constants for classboard domain events.
const (
	TopicUserRegistered = "classboard.user.registered"
	TopicPostPublished  = "classboard.post.published"
	TopicCommentCreated = "classboard.comment.created"
)

// Aggregate type constants.
const (
	AggregateTypeUser    = "user"
	AggregateTypePost    = "post"
	AggregateTypeComment = "comment"
)

// Source identifier for events originating from this service.
const Source = "classboard"

// UserRegisteredData is the payload for a user.registered event.
type UserRegisteredData struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID string `json:"role_id"`
}

// PostPublishedData is the payload for a post.published event.
type PostPublishedData struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	AuthorID   string  `json:"author_id"`
	CategoryID *string `json:"category_id,omitempty"`
}

// CommentCreatedData is the payload for a comment.created event.
type CommentCreatedData struct {
	ID       string `json:"id"`
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
}

// Producer publishes classboard domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishUserRegistered publishes a user.registered event.
func (p *Producer) PublishUserRegistered(ctx context.Context, user *domain.User) error {
	data := UserRegisteredData{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RoleID: user.RoleID,
	}

	event, err := pkgkafka.NewEvent(TopicUserRegistered, user.ID, AggregateTypeUser, Source, data)
	if err != nil {
		return fmt.Errorf("create user.registered event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicUserRegistered, event); err != nil {
		return fmt.Errorf("publish user.registered event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.registered event",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}

// PublishPostPublished publishes a post.published event.
func (p *Producer) PublishPostPublished(ctx context.Context, post *domain.Post) error {
	data := PostPublishedData{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
	}

	event, err := pkgkafka.NewEvent(TopicPostPublished, post.ID, AggregateTypePost, Source, data)
	if err != nil {
		return fmt.Errorf("create post.published event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicPostPublished, event); err != nil {
		return fmt.Errorf("publish post.published event: %w", err)
	}

	p.logger.DebugContext(ctx, "published post.published event",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
	)

	return nil
}

// PublishCommentCreated publishes a comment.created event.
func (p *Producer) PublishCommentCreated(ctx context.Context, comment *domain.Comment) error {
	data := CommentCreatedData{
		ID:       comment.ID,
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
	}

	event, err := pkgkafka.NewEvent(TopicCommentCreated, comment.ID, AggregateTypeComment, Source, data)
	if err != nil {
		return fmt.Errorf("create comment.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCommentCreated, event); err != nil {
		return fmt.Errorf("publish comment.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published comment.created event",
		slog.String("comment_id", comment.ID),
		slog.String("post_id", comment.PostID),
	)

	return nil
}
