package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
)

// QuestionRepo реализует repository.QuestionRepository в памяти.
// Вопросы хранятся отсортированными по id; категории проверяются как внешний ключ.
type QuestionRepo struct {
	mu         sync.RWMutex
	questions  []entity.Question
	nextID     uint
	categories repository.CategoryRepository
}

// NewQuestionRepo создает репозиторий с начальным набором вопросов
func NewQuestionRepo(categories repository.CategoryRepository, questions ...entity.Question) *QuestionRepo {
	sorted := make([]entity.Question, len(questions))
	copy(sorted, questions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var maxID uint
	for _, q := range sorted {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	return &QuestionRepo{
		questions:  sorted,
		nextID:     maxID + 1,
		categories: categories,
	}
}

// Create сохраняет вопрос и присваивает ему новый id
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	if err := r.checkCategory(ctx, question.Category); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertLocked(question)
	return nil
}

// CreateBatch сохраняет все вопросы или ни одного
func (r *QuestionRepo) CreateBatch(ctx context.Context, questions []entity.Question) error {
	for _, q := range questions {
		if err := r.checkCategory(ctx, q.Category); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range questions {
		r.insertLocked(&questions[i])
	}
	return nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(_ context.Context, id uint) (*entity.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.indexLocked(id); ok {
		q := r.questions[i]
		return &q, nil
	}
	return nil, apperrors.ErrNotFound
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexLocked(id)
	if !ok {
		return apperrors.ErrNotFound
	}
	r.questions = append(r.questions[:i], r.questions[i+1:]...)
	return nil
}

// List возвращает страницу вопросов по фильтру и общее количество совпадений
func (r *QuestionRepo) List(_ context.Context, filter repository.QuestionFilter, page pagination.Page) ([]entity.Question, int64, error) {
	r.mu.RLock()
	matched := r.matchLocked(filter)
	r.mu.RUnlock()

	return pagination.Paginate(matched, page), int64(len(matched)), nil
}

// ListIDs возвращает идентификаторы вопросов по фильтру
func (r *QuestionRepo) ListIDs(_ context.Context, filter repository.QuestionFilter) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return entity.QuestionIDs(r.matchLocked(filter)), nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.questions)), nil
}

func (r *QuestionRepo) checkCategory(ctx context.Context, id uint) error {
	if r.categories == nil {
		return nil
	}
	ok, err := r.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, id)
	}
	return nil
}

func (r *QuestionRepo) insertLocked(question *entity.Question) {
	question.ID = r.nextID
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	r.nextID++
	r.questions = append(r.questions, *question)
}

func (r *QuestionRepo) indexLocked(id uint) (int, bool) {
	i := sort.Search(len(r.questions), func(i int) bool { return r.questions[i].ID >= id })
	if i < len(r.questions) && r.questions[i].ID == id {
		return i, true
	}
	return 0, false
}

func (r *QuestionRepo) matchLocked(filter repository.QuestionFilter) []entity.Question {
	excluded := make(map[uint]struct{}, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	matched := make([]entity.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if filter.CategoryID != nil && q.Category != *filter.CategoryID {
			continue
		}
		if filter.Search != "" && !q.MatchesSearch(filter.Search) {
			continue
		}
		if _, skip := excluded[q.ID]; skip {
			continue
		}
		matched = append(matched, q)
	}
	return matched
}
