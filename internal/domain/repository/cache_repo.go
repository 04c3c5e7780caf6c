package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем.
// Отсутствующий ключ дает apperrors.ErrNotFound.
type CacheRepository interface {
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
}
