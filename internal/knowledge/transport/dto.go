// Package transport defines the knowledge API wire types.
package transport

import (
	"time"

	"booking_admin_backend/internal/knowledge/repository"
)

// CreateArticleRequest is the POST body for a new article.
type CreateArticleRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Content  string `json:"content" binding:"required,min=1"`
	Language string `json:"language" binding:"required,oneof=en ne hi mr"`
	IsActive *bool  `json:"is_active"`
}

// UpdateArticleRequest is the PUT body; omitted fields stay unchanged.
type UpdateArticleRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content  *string `json:"content" binding:"omitempty,min=1"`
	Language *string `json:"language" binding:"omitempty,oneof=en ne hi mr"`
	IsActive *bool   `json:"is_active"`
}

// ListArticlesRequest filters the listing.
type ListArticlesRequest struct {
	Language   string `form:"language" binding:"omitempty,oneof=en ne hi mr"`
	ActiveOnly bool   `form:"active_only"`
	Limit      int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Skip       int    `form:"skip" binding:"omitempty,min=0"`
}

// ArticleResponse is the wire form of an article.
type ArticleResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Language  string     `json:"language"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ArticleListResponse is the paginated listing reply.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Skip     int               `json:"skip"`
}

// FromArticle maps a repository article to its wire form.
func FromArticle(a repository.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Content:   a.Content,
		Language:  a.Language,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromArticles maps a slice, never returning nil.
func FromArticles(articles []repository.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, FromArticle(a))
	}
	return out
}
