package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// AllCategories — идентификатор категории "любая" в запросе квиза
const AllCategories uint = 0

// NextQuestionResult — результат выбора следующего вопроса.
// Exhausted == true означает, что непоказанных вопросов не осталось; Question == nil.
type NextQuestionResult struct {
	Question  *entity.Question
	Exhausted bool
}

// QuizService выбирает случайные непоказанные вопросы для раунда квиза.
// Состояние сессии (список показанных вопросов) хранит клиент.
type QuizService struct {
	questionRepo repository.QuestionRepository
	intn         func(n int) int
	log          *slog.Logger
}

// NewQuizService создает новый сервис квиза
func NewQuizService(questionRepo repository.QuestionRepository, log *slog.Logger) *QuizService {
	if log == nil {
		log = slog.Default()
	}
	return &QuizService{
		questionRepo: questionRepo,
		intn:         rand.IntN,
		log:          log,
	}
}

// NextQuestion возвращает случайный вопрос категории categoryID (AllCategories — любой),
// id которого нет в previous. previous не изменяется; дубликаты и пустой список допустимы.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*NextQuestionResult, error) {
	filter := repository.QuestionFilter{ExcludeIDs: previous}
	if categoryID != AllCategories {
		filter.CategoryID = &categoryID
	}

	candidates, err := s.questionRepo.ListIDs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}

	// Вопрос могли удалить между выборкой id и загрузкой — пропускаем его
	for len(candidates) > 0 {
		i := s.intn(len(candidates))
		question, err := s.questionRepo.GetByID(ctx, candidates[i])
		if err == nil {
			return &NextQuestionResult{Question: question}, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load quiz question %d: %w", candidates[i], err)
		}
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}

	s.log.Debug("quiz exhausted", slog.Uint64("category", uint64(categoryID)), slog.Int("previous", len(previous)))
	return &NextQuestionResult{Exhausted: true}, nil
}
