package entity

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// Границы допустимой сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	Category   uint      `gorm:"not null;index" json:"category"`
	Difficulty int       `gorm:"not null" json:"difficulty"`
	CreatedAt  time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Validate проверяет поля вопроса перед сохранением.
// Существование категории проверяет хранилище.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer is required", apperrors.ErrValidation)
	}
	if q.Category == 0 {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty must be between %d and %d", apperrors.ErrValidation, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// MatchesSearch проверяет вхождение term в текст вопроса без учета регистра
func (q *Question) MatchesSearch(term string) bool {
	return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
}

// QuestionIDs возвращает идентификаторы вопросов в исходном порядке
func QuestionIDs(questions []Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
