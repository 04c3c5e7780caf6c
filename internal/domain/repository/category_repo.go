package repository

import (
	"context"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	// List возвращает все категории, упорядоченные по id
	List(ctx context.Context) ([]entity.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
