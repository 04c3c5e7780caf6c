package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository в памяти
type CategoryRepo struct {
	mu         sync.RWMutex
	categories []entity.Category
}

// NewCategoryRepo создает репозиторий с заданными категориями
func NewCategoryRepo(categories ...entity.Category) *CategoryRepo {
	sorted := make([]entity.Category, len(categories))
	copy(sorted, categories)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &CategoryRepo{categories: sorted}
}

// List возвращает копию списка категорий по возрастанию id
func (r *CategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// Exists проверяет наличие категории
func (r *CategoryRepo) Exists(_ context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}
