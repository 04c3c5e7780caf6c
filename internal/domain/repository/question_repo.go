package repository

import (
	"context"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
)

// QuestionFilter задает условия выборки вопросов.
// Пустые поля не ограничивают выборку.
type QuestionFilter struct {
	// CategoryID — только вопросы указанной категории
	CategoryID *uint
	// Search — регистронезависимая подстрока текста вопроса
	Search string
	// ExcludeIDs — исключаемые идентификаторы (дубликаты допустимы)
	ExcludeIDs []uint
}

// QuestionRepository определяет методы для работы с вопросами.
// Все выборки упорядочены по id по возрастанию.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	CreateBatch(ctx context.Context, questions []entity.Question) error
	// GetByID возвращает apperrors.ErrNotFound, если вопроса нет
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	// Delete возвращает apperrors.ErrNotFound, если удалять нечего
	Delete(ctx context.Context, id uint) error
	// List возвращает страницу вопросов и общее число подходящих под фильтр
	List(ctx context.Context, filter QuestionFilter, page pagination.Page) ([]entity.Question, int64, error)
	// ListIDs возвращает идентификаторы всех подходящих вопросов
	ListIDs(ctx context.Context, filter QuestionFilter) ([]uint, error)
	Count(ctx context.Context) (int64, error)
}
