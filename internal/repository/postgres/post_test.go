package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classboard/classboard/internal/domain"
	apperrors "github.com/classboard/classboard/pkg/errors"
	"github.com/classboard/classboard/pkg/pagination"
)

// ─── Post column definitions ────────────────────────────────────────────────

var postColumns = []string{
	"id", "title", "slug", "content", "author_id", "category_id",
	"published", "published_at", "created_at", "updated_at",
}

var postColumnsWithCount = []string{
	"id", "title", "slug", "content", "author_id", "category_id",
	"published", "published_at", "created_at", "updated_at", "total_count",
}

func samplePost() domain.Post {
	publishedAt := now
	return domain.Post{
		ID:          "post-1",
		Title:       "Introdução à Programação",
		Slug:        "introducao-a-programacao",
		Content:     "Primeira aula do curso.",
		AuthorID:    "user-1",
		CategoryID:  strPtr("cat-1"),
		Published:   true,
		PublishedAt: &publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func postRow(p domain.Post) []any {
	return []any{
		p.ID, p.Title, p.Slug, p.Content, p.AuthorID, p.CategoryID,
		p.Published, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// PostRepository
// ─────────────────────────────────────────────────────────────────────────────

func TestPostRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	p := samplePost()

	mock.ExpectExec("INSERT INTO posts").
		WithArgs(
			p.ID, p.Title, p.Slug, p.Content, p.AuthorID, p.CategoryID,
			p.Published, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create_DuplicateSlug(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	p := samplePost()

	mock.ExpectExec("INSERT INTO posts").
		WithArgs(
			p.ID, p.Title, p.Slug, p.Content, p.AuthorID, p.CategoryID,
			p.Published, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
		).
		WillReturnError(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetBySlug_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	p := samplePost()
	mock.ExpectQuery("SELECT .+ FROM posts WHERE slug").
		WithArgs(p.Slug).
		WillReturnRows(
			pgxmock.NewRows(postColumns).AddRow(postRow(p)...),
		)

	result, err := repo.GetBySlug(context.Background(), p.Slug)
	require.NoError(t, err)
	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, p.Slug, result.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM posts WHERE id").
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), "missing-id")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List_NoFilter(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	p := samplePost()
	row := append(postRow(p), 1) // total_count = 1

	mock.ExpectQuery("SELECT .+ FROM posts p").
		WithArgs(20, 0). // limit, offset
		WillReturnRows(
			pgxmock.NewRows(postColumnsWithCount).AddRow(row...),
		)

	posts, total, err := repo.List(context.Background(), domain.PostFilter{}, pagination.DefaultParams())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, p.ID, posts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List_Filtered(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	p := samplePost()
	row := append(postRow(p), 1)

	filter := domain.PostFilter{
		AuthorID:  "user-1",
		Published: boolPtr(true),
		Search:    "programação",
	}

	mock.ExpectQuery("SELECT .+ FROM posts p WHERE").
		WithArgs("user-1", true, "%programação%", 20, 0).
		WillReturnRows(
			pgxmock.NewRows(postColumnsWithCount).AddRow(row...),
		)

	posts, total, err := repo.List(context.Background(), filter, pagination.DefaultParams())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM posts p").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(postColumnsWithCount))

	posts, total, err := repo.List(context.Background(), domain.PostFilter{}, pagination.DefaultParams())
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	p := samplePost()

	mock.ExpectExec("UPDATE posts").
		WithArgs(
			p.Title, p.Slug, p.Content, p.CategoryID,
			p.Published, p.PublishedAt, pgxmock.AnyArg(), p.ID,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("post-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "post-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewPostRepository(mock)

	mock.ExpectExec("DELETE FROM posts").
		WithArgs("missing-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
