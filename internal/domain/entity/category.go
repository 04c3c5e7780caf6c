package entity

// Category представляет категорию вопросов (только чтение для API)
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryMap — отображение id категории в ее название.
// encoding/json сериализует ключи строками: {"1": "Science"}.
type CategoryMap map[uint]string

// NewCategoryMap строит CategoryMap из списка категорий
func NewCategoryMap(categories []Category) CategoryMap {
	m := make(CategoryMap, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
