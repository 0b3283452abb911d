// Package repository persists knowledge base articles.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booking_admin_backend/platform/apperr"
)

const articleColumns = "id, title, content, language, is_active, created_at, updated_at"

// Repo implements Repository with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new knowledge repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// Create inserts a new article.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Article, error) {
	query := fmt.Sprintf(`
		INSERT INTO knowledge (title, content, language, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, articleColumns)

	row := r.pool.QueryRow(ctx, query, params.Title, params.Content, params.Language, params.IsActive)
	article, err := scanArticle(row)
	if err != nil {
		return Article{}, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// GetByID loads one article.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Article, error) {
	query := fmt.Sprintf("SELECT %s FROM knowledge WHERE id = $1", articleColumns)

	article, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Article{}, apperr.NotFound("article not found")
	}
	if err != nil {
		return Article{}, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// List returns articles matching the filters, newest first, with the
// unpaginated total.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Article, int, error) {
	where := []string{"TRUE"}
	args := []any{}

	if params.Language != "" {
		args = append(args, params.Language)
		where = append(where, fmt.Sprintf("language = $%d", len(args)))
	}
	if params.ActiveOnly {
		where = append(where, "is_active")
	}
	clause := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM knowledge WHERE %s", clause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	args = append(args, params.Limit, params.Skip)
	query := fmt.Sprintf(`
		SELECT %s FROM knowledge
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, articleColumns, clause, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, total, rows.Err()
}

// Update applies the non-nil fields and returns the updated article.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Article, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Title != nil {
		set("title", *params.Title)
	}
	if params.Content != nil {
		set("content", *params.Content)
	}
	if params.Language != nil {
		set("language", *params.Language)
	}
	if params.IsActive != nil {
		set("is_active", *params.IsActive)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE knowledge SET %s
		WHERE id = $%d
		RETURNING %s`, strings.Join(sets, ", "), len(args), articleColumns)

	article, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Article{}, apperr.NotFound("article not found")
	}
	if err != nil {
		return Article{}, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete removes an article.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM knowledge WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("article not found")
	}
	return nil
}

func scanArticle(row pgx.Row) (Article, error) {
	var a Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Language, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
