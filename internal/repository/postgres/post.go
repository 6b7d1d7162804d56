package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/classboard/classboard/internal/domain"
	"github.com/classboard/classboard/pkg/database"
	apperrors "github.com/classboard/classboard/pkg/errors"
	"github.com/classboard/classboard/pkg/pagination"
)

// PostRepository implements repository.PostRepository using PostgreSQL.
type PostRepository struct {
	db database.DBTX
}

// NewPostRepository creates a new PostgreSQL-backed post repository.
func NewPostRepository(db database.DBTX) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post into the database.
func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, slug, content, author_id, category_id, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Slug,
		p.Content,
		p.AuthorID,
		p.CategoryID,
		p.Published,
		p.PublishedAt,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("post", "slug", p.Slug)
		}
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by its ID.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `
		SELECT id, title, slug, content, author_id, category_id, published, published_at, created_at, updated_at
		FROM posts
		WHERE id = $1`

	return r.scanPost(ctx, query, id)
}

// GetBySlug retrieves a post by its slug.
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	query := `
		SELECT id, title, slug, content, author_id, category_id, published, published_at, created_at, updated_at
		FROM posts
		WHERE slug = $1`

	return r.scanPost(ctx, query, slug)
}

// List returns posts matching the given filter with the total count.
func (r *PostRepository) List(ctx context.Context, filter domain.PostFilter, params pagination.Params) ([]domain.Post, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.CategorySlug != "" {
		conditions = append(conditions, fmt.Sprintf("p.category_id = (SELECT id FROM categories WHERE slug = $%d)", argIndex))
		args = append(args, filter.CategorySlug)
		argIndex++
	}

	if filter.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", argIndex))
		args = append(args, filter.AuthorID)
		argIndex++
	}

	if filter.Published != nil {
		conditions = append(conditions, fmt.Sprintf("p.published = $%d", argIndex))
		args = append(args, *filter.Published)
		argIndex++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Use count(*) OVER() for total count in a single query.
	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.slug, p.content, p.author_id, p.category_id, p.published, p.published_at, p.created_at, p.updated_at,
			   count(*) OVER() AS total_count
		FROM posts p
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	args = append(args, params.PerPage, params.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var (
		posts      []domain.Post
		totalCount int
	)

	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Slug,
			&p.Content,
			&p.AuthorID,
			&p.CategoryID,
			&p.Published,
			&p.PublishedAt,
			&p.CreatedAt,
			&p.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan post row: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate post rows: %w", err)
	}

	if posts == nil {
		posts = []domain.Post{}
	}

	return posts, totalCount, nil
}

// Update modifies an existing post in the database.
func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE posts
		SET title = $1, slug = $2, content = $3, category_id = $4,
		    published = $5, published_at = $6, updated_at = $7
		WHERE id = $8`

	ct, err := r.db.Exec(ctx, query,
		p.Title,
		p.Slug,
		p.Content,
		p.CategoryID,
		p.Published,
		p.PublishedAt,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("post", "slug", p.Slug)
		}
		return fmt.Errorf("update post: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("post", p.ID)
	}

	return nil
}

// Delete removes a post from the database by its ID. Comments are removed
// by the ON DELETE CASCADE on comments.post_id.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("post", id)
	}

	return nil
}

// scanPost is a helper that executes a query expected to return a single post row.
func (r *PostRepository) scanPost(ctx context.Context, query string, args ...any) (*domain.Post, error) {
	var p domain.Post

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.AuthorID,
		&p.CategoryID,
		&p.Published,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	return &p, nil
}
