package repository

import (
	"context"

	"github.com/classboard/classboard/internal/domain"
	"github.com/classboard/classboard/pkg/pagination"
)

// UserRepository defines persistence operations for users (credentials).
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// FindByEmailOrName retrieves the user whose email or display name
	// equals identifier.
	FindByEmailOrName(ctx context.Context, identifier string) (*domain.User, error)

	// Update modifies an existing user.
	Update(ctx context.Context, user *domain.User) error

	// List returns a page of users plus the total count.
	List(ctx context.Context, params pagination.Params) ([]domain.User, int, error)

	// FindRoleForUser resolves the role name for the given role id and user
	// id pair. Both must match the same user row; a mismatch resolves to
	// nothing.
	FindRoleForUser(ctx context.Context, roleID, userID string) (string, error)
}

// RoleRepository defines read operations for the seeded roles.
type RoleRepository interface {
	// GetByName retrieves a role by its unique name.
	GetByName(ctx context.Context, name string) (*domain.Role, error)

	// List returns all roles.
	List(ctx context.Context) ([]domain.Role, error)
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error

	// List returns a filtered page of posts plus the total count matching
	// the filter.
	List(ctx context.Context, filter domain.PostFilter, params pagination.Params) ([]domain.Post, int, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Category, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error

	// ListByPostID returns a page of comments for the post plus the total count.
	ListByPostID(ctx context.Context, postID string, params pagination.Params) ([]domain.Comment, int, error)
}
