package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
)

// likeEscaper экранирует спецсимволы LIKE, чтобы поиск был по подстроке
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	return classifyWriteError(r.db.WithContext(ctx).Create(question).Error)
}

// CreateBatch создает пакет вопросов в одной транзакции
func (r *QuestionRepo) CreateBatch(ctx context.Context, questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	return classifyWriteError(err)
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List возвращает страницу вопросов по фильтру и общее количество совпадений
func (r *QuestionRepo) List(ctx context.Context, filter repository.QuestionFilter, page pagination.Page) ([]entity.Question, int64, error) {
	query := r.filtered(ctx, filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	questions := []entity.Question{}
	if !page.IsAll() && !page.Valid() {
		return questions, total, nil
	}

	find := query.Session(&gorm.Session{}).Order("id")
	if !page.IsAll() {
		find = find.Offset(page.Offset()).Limit(page.Limit())
	}
	if err := find.Find(&questions).Error; err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// ListIDs возвращает идентификаторы вопросов по фильтру
func (r *QuestionRepo) ListIDs(ctx context.Context, filter repository.QuestionFilter) ([]uint, error) {
	ids := []uint{}
	err := r.filtered(ctx, filter).Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// filtered строит запрос с условиями фильтра
func (r *QuestionRepo) filtered(ctx context.Context, filter repository.QuestionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Question{})

	if filter.CategoryID != nil {
		query = query.Where("category = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		query = query.Where("question ILIKE ?", "%"+likeEscaper.Replace(filter.Search)+"%")
	}
	// Исключаем уже показанные вопросы
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	return query
}
