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
)

var categoryColumns = []string{
	"id", "name", "slug", "description", "created_at", "updated_at",
}

func sampleCategory() domain.Category {
	return domain.Category{
		ID:          "cat-1",
		Name:        "Matemática",
		Slug:        "matematica",
		Description: "Posts sobre matemática",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func categoryRow(c domain.Category) []any {
	return []any{
		c.ID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt,
	}
}

func TestCategoryRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()

	mock.ExpectExec("INSERT INTO categories").
		WithArgs(c.ID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create_DuplicateSlug(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()

	mock.ExpectExec("INSERT INTO categories").
		WithArgs(c.ID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt).
		WillReturnError(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), &c)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetBySlug_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()
	mock.ExpectQuery("SELECT .+ FROM categories WHERE slug").
		WithArgs(c.Slug).
		WillReturnRows(
			pgxmock.NewRows(categoryColumns).AddRow(categoryRow(c)...),
		)

	result, err := repo.GetBySlug(context.Background(), c.Slug)
	require.NoError(t, err)
	assert.Equal(t, c.ID, result.ID)
	assert.Equal(t, c.Name, result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM categories WHERE id").
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), "missing-id")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()

	mock.ExpectExec("UPDATE categories").
		WithArgs(c.Name, c.Slug, c.Description, pgxmock.AnyArg(), c.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &c)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Delete_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs("cat-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "cat-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_ListAll_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	c := sampleCategory()
	mock.ExpectQuery("SELECT .+ FROM categories ORDER BY name").
		WillReturnRows(
			pgxmock.NewRows(categoryColumns).AddRow(categoryRow(c)...),
		)

	categories, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, c.Slug, categories[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_ListAll_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewCategoryRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM categories ORDER BY name").
		WillReturnRows(pgxmock.NewRows(categoryColumns))

	categories, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.NotNil(t, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
