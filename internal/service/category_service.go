package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

const categoriesCacheKey = "categories:all"

// CategoryService предоставляет методы для чтения категорий.
// Категории заполняются извне и не меняются через API, поэтому
// кеш не инвалидируется, а только истекает по TTL.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	log          *slog.Logger
}

// NewCategoryService создает новый сервис категорий. cacheTTL <= 0 отключает кеш.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	log *slog.Logger,
) *CategoryService {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// List возвращает все категории в виде id → название (возможно, пустое)
func (s *CategoryService) List(ctx context.Context) (entity.CategoryMap, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := entity.NewCategoryMap(categories)

	// Пустой набор не кешируем: категории могут быть загружены позже
	if len(result) > 0 && s.cacheEnabled() {
		if err := s.cacheRepo.SetJSON(ctx, categoriesCacheKey, result, s.cacheTTL); err != nil {
			s.log.Warn("failed to cache categories", slog.Any("error", err))
		}
	}
	return result, nil
}

func (s *CategoryService) cacheEnabled() bool {
	return s.cacheRepo != nil && s.cacheTTL > 0
}

func (s *CategoryService) fromCache(ctx context.Context) (entity.CategoryMap, bool) {
	if !s.cacheEnabled() {
		return nil, false
	}
	var cached entity.CategoryMap
	err := s.cacheRepo.GetJSON(ctx, categoriesCacheKey, &cached)
	if err != nil {
		// Ошибка Redis не должна ломать запрос — идем в БД
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.log.Warn("failed to read categories from cache", slog.Any("error", err))
		}
		return nil, false
	}
	return cached, len(cached) > 0
}
