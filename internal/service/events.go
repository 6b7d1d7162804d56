package service

import (
	"context"

	"github.com/classboard/classboard/internal/domain"
)

// EventPublisher publishes domain events after state changes. Publish
// failures are logged by callers and never abort the operation.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, user *domain.User) error
	PublishPostPublished(ctx context.Context, post *domain.Post) error
	PublishCommentCreated(ctx context.Context, comment *domain.Comment) error
}
