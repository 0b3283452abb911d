// Package service contains the knowledge base business logic.
package service

import (
	"context"

	"github.com/google/uuid"

	"booking_admin_backend/internal/knowledge/repository"
	"booking_admin_backend/internal/knowledge/transport"
	"booking_admin_backend/platform/logger"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Service provides knowledge article operations.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new knowledge service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create stores a new article. New articles default to active unless
// the request says otherwise.
func (s *Service) Create(ctx context.Context, req transport.CreateArticleRequest) (transport.ArticleResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	article, err := s.repo.Create(ctx, repository.CreateParams{
		Title:    req.Title,
		Content:  req.Content,
		Language: req.Language,
		IsActive: isActive,
	})
	if err != nil {
		return transport.ArticleResponse{}, err
	}

	s.log.Info("knowledge article created", "id", article.ID, "language", article.Language)
	return transport.FromArticle(article), nil
}

// GetByID returns one article.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.ArticleResponse, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ArticleResponse{}, err
	}
	return transport.FromArticle(article), nil
}

// List returns articles matching the filters.
func (s *Service) List(ctx context.Context, req transport.ListArticlesRequest) (transport.ArticleListResponse, error) {
	limit := normalizeLimit(req.Limit)

	articles, total, err := s.repo.List(ctx, repository.ListParams{
		Language:   req.Language,
		ActiveOnly: req.ActiveOnly,
		Limit:      limit,
		Skip:       req.Skip,
	})
	if err != nil {
		return transport.ArticleListResponse{}, err
	}

	return transport.ArticleListResponse{
		Articles: transport.FromArticles(articles),
		Total:    total,
		Limit:    limit,
		Skip:     req.Skip,
	}, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateArticleRequest) (transport.ArticleResponse, error) {
	article, err := s.repo.Update(ctx, id, repository.UpdateParams{
		Title:    req.Title,
		Content:  req.Content,
		Language: req.Language,
		IsActive: req.IsActive,
	})
	if err != nil {
		return transport.ArticleResponse{}, err
	}
	return transport.FromArticle(article), nil
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
