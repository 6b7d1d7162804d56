package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/classboard/classboard/internal/domain"
	"github.com/classboard/classboard/internal/repository"
	apperrors "github.com/classboard/classboard/pkg/errors"
	"github.com/classboard/classboard/pkg/pagination"
)

// CommentService implements the business logic for comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	producer    EventPublisher
	logger      *slog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	producer EventPublisher,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		producer:    producer,
		logger:      logger,
	}
}

// Create adds a comment to a post. The post must exist.
func (s *CommentService) Create(ctx context.Context, authorID, postID, content string) (*domain.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("resolve post: %w", err)
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// Publish comment event (non-blocking on failure).
	if err := s.producer.PublishCommentCreated(ctx, comment); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish comment.created event",
			slog.String("comment_id", comment.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "comment created",
		slog.String("comment_id", comment.ID),
		slog.String("post_id", postID),
	)

	return comment, nil
}

// ListByPostID returns a page of comments for the post.
func (s *CommentService) ListByPostID(ctx context.Context, postID string, params pagination.Params) (pagination.Result[domain.Comment], error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return pagination.Result[domain.Comment]{}, fmt.Errorf("resolve post: %w", err)
	}

	comments, total, err := s.commentRepo.ListByPostID(ctx, postID, params)
	if err != nil {
		return pagination.Result[domain.Comment]{}, fmt.Errorf("list comments: %w", err)
	}
	return pagination.NewResult(comments, total, params), nil
}

// Delete removes a comment. The author may delete their own comment;
// teachers and admins may delete any.
func (s *CommentService) Delete(ctx context.Context, actorID, actorRole, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment for delete: %w", err)
	}

	if comment.AuthorID != actorID && actorRole != domain.RoleAdmin && actorRole != domain.RoleTeacher {
		return apperrors.NoPermission()
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.logger.InfoContext(ctx, "comment deleted",
		slog.String("comment_id", commentID),
	)

	return nil
}
