package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List возвращает все категории по возрастанию id
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	categories := []entity.Category{}
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Exists проверяет наличие категории
func (r *CategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
