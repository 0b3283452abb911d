// Package service contains the analytics business logic: SQL
// aggregation fronted by a short-lived Redis cache so dashboard polling
// does not hammer the bookings table.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"booking_admin_backend/internal/analytics/repository"
	"booking_admin_backend/platform/logger"
)

// cacheTTL bounds staleness of the dashboard counters.
const cacheTTL = 60 * time.Second

const (
	cacheKeyOverview  = "analytics:overview"
	cacheKeyByService = "analytics:by_service"
	cacheKeyByMonth   = "analytics:by_month"
)

// Service provides cached analytics aggregates. A nil Redis client
// disables caching and every call hits the database.
type Service struct {
	repo  repository.Repository
	cache *redis.Client
	log   *logger.Logger
}

// New creates a new analytics service.
func New(repo repository.Repository, cache *redis.Client, log *logger.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// Overview returns the dashboard counters.
func (s *Service) Overview(ctx context.Context) (repository.Overview, error) {
	var cached repository.Overview
	if s.fromCache(ctx, cacheKeyOverview, &cached) {
		return cached, nil
	}

	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return repository.Overview{}, err
	}
	s.toCache(ctx, cacheKeyOverview, overview)
	return overview, nil
}

// ByService returns booking counts per service.
func (s *Service) ByService(ctx context.Context) ([]repository.ServiceCount, error) {
	var cached []repository.ServiceCount
	if s.fromCache(ctx, cacheKeyByService, &cached) {
		return cached, nil
	}

	counts, err := s.repo.ByService(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyByService, counts)
	return counts, nil
}

// ByMonth returns booking counts per calendar month.
func (s *Service) ByMonth(ctx context.Context) ([]repository.MonthlyCount, error) {
	var cached []repository.MonthlyCount
	if s.fromCache(ctx, cacheKeyByMonth, &cached) {
		return cached, nil
	}

	counts, err := s.repo.ByMonth(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyByMonth, counts)
	return counts, nil
}

// fromCache loads a cached aggregate. Cache failures are treated as
// misses; the database stays the source of truth.
func (s *Service) fromCache(ctx context.Context, key string, target any) bool {
	if s.cache == nil {
		return false
	}

	payload, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Error("analytics cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		s.log.Error("analytics cache decode failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		s.log.Error("analytics cache write failed", "key", key, "error", err)
	}
}
