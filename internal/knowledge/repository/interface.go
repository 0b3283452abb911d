package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Supported article languages.
const (
	LanguageEnglish = "en"
	LanguageNepali  = "ne"
	LanguageHindi   = "hi"
	LanguageMarathi = "mr"
)

// Article is a knowledge base entry shown to customers.
type Article struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Language  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CreateParams holds the fields for a new article.
type CreateParams struct {
	Title    string
	Content  string
	Language string
	IsActive bool
}

// UpdateParams holds the updatable fields; nil means leave unchanged.
type UpdateParams struct {
	Title    *string
	Content  *string
	Language *string
	IsActive *bool
}

// ListParams filters the article listing.
type ListParams struct {
	Language   string
	ActiveOnly bool
	Limit      int
	Skip       int
}

// Repository is the knowledge persistence contract.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (Article, error)
	List(ctx context.Context, params ListParams) ([]Article, int, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
