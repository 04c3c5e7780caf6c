package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
)

// QuestionPage — страница вопросов и счетчик, который отдается клиенту как total_questions
type QuestionPage struct {
	Questions []entity.Question
	Total     int64
}

// CreateQuestionInput — данные нового вопроса
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

func (in CreateQuestionInput) toEntity() entity.Question {
	return entity.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	pageSize     int
	log          *slog.Logger
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	pageSize int,
	log *slog.Logger,
) *QuestionService {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	if log == nil {
		log = slog.Default()
	}
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pageSize:     pageSize,
		log:          log,
	}
}

// Browse возвращает страницу всех вопросов (по возрастанию id) без проверки на пустоту
func (s *QuestionService) Browse(ctx context.Context, page int) (*QuestionPage, error) {
	questions, total, err := s.questionRepo.List(ctx, repository.QuestionFilter{}, pagination.New(page, s.pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return &QuestionPage{Questions: questions, Total: total}, nil
}

// List возвращает страницу всех вопросов; пустая страница — ErrNotFound
func (s *QuestionService) List(ctx context.Context, page int) (*QuestionPage, error) {
	result, err := s.Browse(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(result.Questions) == 0 {
		return nil, fmt.Errorf("questions page %d: %w", page, apperrors.ErrNotFound)
	}
	return result, nil
}

// ListByCategory возвращает страницу вопросов категории.
// Total — общее количество вопросов в хранилище, как и в основном списке.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*QuestionPage, error) {
	filter := repository.QuestionFilter{CategoryID: &categoryID}
	questions, _, err := s.questionRepo.List(ctx, filter, pagination.New(page, s.pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("category %d page %d: %w", categoryID, page, apperrors.ErrNotFound)
	}

	total, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	return &QuestionPage{Questions: questions, Total: total}, nil
}

// Search ищет вопросы по подстроке без учета регистра.
// Отсутствие совпадений — не ошибка: возвращается пустая страница с Total = 0.
func (s *QuestionService) Search(ctx context.Context, term string, page int) (*QuestionPage, error) {
	questions, total, err := s.questionRepo.List(ctx, repository.QuestionFilter{Search: term}, pagination.New(page, s.pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return &QuestionPage{Questions: questions, Total: total}, nil
}

// Total возвращает общее количество вопросов
func (s *QuestionService) Total(ctx context.Context) (int64, error) {
	return s.questionRepo.Count(ctx)
}

// Create создает вопрос. Ошибки имеют тип *CreateError.
func (s *QuestionService) Create(ctx context.Context, in CreateQuestionInput) (*entity.Question, error) {
	question := in.toEntity()
	if err := s.validate(ctx, &question); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Create(ctx, &question); err != nil {
		return nil, classifyCreateError(err)
	}

	s.log.Info("question created", slog.Uint64("id", uint64(question.ID)), slog.Uint64("category", uint64(question.Category)))
	return &question, nil
}

// CreateBatch создает пакет вопросов: либо все, либо ни одного.
// Ошибки имеют тип *CreateError.
func (s *QuestionService) CreateBatch(ctx context.Context, inputs []CreateQuestionInput) ([]entity.Question, error) {
	if len(inputs) == 0 {
		return nil, &CreateError{
			Kind: CreateValidationFailed,
			Err:  fmt.Errorf("%w: no questions provided", apperrors.ErrValidation),
		}
	}

	questions := make([]entity.Question, len(inputs))
	for i, in := range inputs {
		questions[i] = in.toEntity()
		if err := s.validate(ctx, &questions[i]); err != nil {
			var createErr *CreateError
			if errors.As(err, &createErr) {
				createErr.Err = fmt.Errorf("question #%d: %w", i+1, createErr.Err)
			}
			return nil, err
		}
	}

	if err := s.questionRepo.CreateBatch(ctx, questions); err != nil {
		return nil, classifyCreateError(err)
	}

	s.log.Info("questions uploaded", slog.Int("count", len(questions)))
	return questions, nil
}

// Delete удаляет вопрос. Ошибки имеют тип *DeleteError.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		kind := DeleteStoreFailed
		if errors.Is(err, apperrors.ErrNotFound) {
			kind = DeleteNotFound
		}
		return &DeleteError{Kind: kind, ID: id, Err: err}
	}

	s.log.Info("question deleted", slog.Uint64("id", uint64(id)))
	return nil
}

// validate проверяет поля и существование категории
func (s *QuestionService) validate(ctx context.Context, question *entity.Question) error {
	if err := question.Validate(); err != nil {
		return &CreateError{Kind: CreateValidationFailed, Err: err}
	}

	exists, err := s.categoryRepo.Exists(ctx, question.Category)
	if err != nil {
		return &CreateError{Kind: CreateStoreWriteFailed, Err: err}
	}
	if !exists {
		return &CreateError{
			Kind: CreateValidationFailed,
			Err:  fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, question.Category),
		}
	}
	return nil
}

func classifyCreateError(err error) *CreateError {
	if errors.Is(err, apperrors.ErrValidation) {
		return &CreateError{Kind: CreateValidationFailed, Err: err}
	}
	return &CreateError{Kind: CreateStoreWriteFailed, Err: err}
}
