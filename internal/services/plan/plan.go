// Package services содержит бизнес-логику чтения каталога тарифных планов.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/user-plans/internal/lib/sl"
	"github.com/magabrotheeeer/user-plans/internal/models"
)

const (
	plansCacheKey = "plans:all"
	plansCacheTTL = time.Hour
)

// PlanRepository определяет методы для чтения тарифов из хранилища.
type PlanRepository interface {
	// GetPlanByID возвращает тариф по идентификатору или ErrPlanNotFound.
	GetPlanByID(ctx context.Context, id int) (*models.Plan, error)
	// ListPlans возвращает все тарифы.
	ListPlans(ctx context.Context) ([]*models.Plan, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// PlanService отдаёт каталог тарифов. Тарифы создаются миграциями,
// поэтому кеш инвалидируется только по TTL.
type PlanService struct {
	repo  PlanRepository
	cache Cache
	log   *slog.Logger
}

// NewPlanService создает новый экземпляр PlanService.
func NewPlanService(repo PlanRepository, cache Cache, log *slog.Logger) *PlanService {
	return &PlanService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все тарифные планы, используя кеш или хранилище.
func (s *PlanService) List(ctx context.Context) ([]*models.Plan, error) {
	var cached []*models.Plan
	found, err := s.cache.Get(plansCacheKey, &cached)
	if err != nil {
		return nil, err
	}
	if found {
		return cached, nil
	}

	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(plansCacheKey, plans, plansCacheTTL); err != nil {
		s.log.Warn("failed to cache plans", sl.Err(err))
	}
	return plans, nil
}

// Get возвращает тариф по идентификатору.
func (s *PlanService) Get(ctx context.Context, id int) (*models.Plan, error) {
	return s.repo.GetPlanByID(ctx, id)
}
