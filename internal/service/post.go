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
	"github.com/classboard/classboard/pkg/slug"
)

// PostService implements the business logic for posts.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	producer     EventPublisher
	logger       *slog.Logger
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	producer EventPublisher,
	logger *slog.Logger,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		producer:     producer,
		logger:       logger,
	}
}

// CreatePostInput holds the parameters for creating a post.
type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID *string
	Published  bool
}

// UpdatePostInput holds the parameters for updating a post. Nil fields
// are left unchanged.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	CategoryID *string
	Published  *bool
}

// Create creates a new post authored by authorID. The slug is derived
// from the title.
func (s *PostService) Create(ctx context.Context, authorID string, input CreatePostInput) (*domain.Post, error) {
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Slug:       slug.Generate(input.Title),
		Content:    input.Content,
		AuthorID:   authorID,
		CategoryID: input.CategoryID,
		Published:  input.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.Published {
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if post.Published {
		s.publishPostPublished(ctx, post)
	}

	s.logger.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.Bool("published", post.Published),
	)

	return post, nil
}

// GetByID retrieves a post by its ID.
func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// GetBySlug retrieves a post by its slug.
func (s *PostService) GetBySlug(ctx context.Context, slugValue string) (*domain.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return post, nil
}

// List returns a filtered page of posts.
func (s *PostService) List(ctx context.Context, filter domain.PostFilter, params pagination.Params) (pagination.Result[domain.Post], error) {
	posts, total, err := s.postRepo.List(ctx, filter, params)
	if err != nil {
		return pagination.Result[domain.Post]{}, fmt.Errorf("list posts: %w", err)
	}
	return pagination.NewResult(posts, total, params), nil
}

// Update modifies a post. Non-admin actors may only modify their own
// posts. Publishing for the first time stamps PublishedAt and emits a
// post.published event.
func (s *PostService) Update(ctx context.Context, actorID, actorRole, postID string, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post for update: %w", err)
	}

	if post.AuthorID != actorID && actorRole != domain.RoleAdmin {
		return nil, apperrors.NoPermission()
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperrors.InvalidInput("title must not be empty")
		}
		post.Title = *input.Title
		post.Slug = slug.Generate(*input.Title)
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.CategoryID != nil {
		if *input.CategoryID == "" {
			post.CategoryID = nil
		} else {
			if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
				return nil, fmt.Errorf("resolve category: %w", err)
			}
			post.CategoryID = input.CategoryID
		}
	}

	wasPublished := post.Published
	if input.Published != nil {
		post.Published = *input.Published
		if post.Published && post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	if post.Published && !wasPublished {
		s.publishPostPublished(ctx, post)
	}

	s.logger.InfoContext(ctx, "post updated",
		slog.String("post_id", post.ID),
	)

	return post, nil
}

// Delete removes a post. Non-admin actors may only delete their own posts.
func (s *PostService) Delete(ctx context.Context, actorID, actorRole, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post for delete: %w", err)
	}

	if post.AuthorID != actorID && actorRole != domain.RoleAdmin {
		return apperrors.NoPermission()
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.logger.InfoContext(ctx, "post deleted",
		slog.String("post_id", postID),
	)

	return nil
}

// publishPostPublished emits the post.published event, logging instead of
// failing the request when the broker is unavailable.
func (s *PostService) publishPostPublished(ctx context.Context, post *domain.Post) {
	if err := s.producer.PublishPostPublished(ctx, post); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish post.published event",
			slog.String("post_id", post.ID),
			slog.String("error", err.Error()),
		)
	}
}
