package dto

import (
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionList создает список DTO; результат никогда не nil, чтобы в JSON был []
func NewQuestionList(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		list = append(list, *NewQuestionResponse(&questions[i]))
	}
	return list
}

// QuestionRequest — тело POST /questions: либо поиск (searchTerm), либо новый вопрос
type QuestionRequest struct {
	SearchTerm *string      `json:"searchTerm"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Category   FlexibleUint `json:"category"`
	Difficulty FlexibleInt  `json:"difficulty"`
}

// IsSearch сообщает, что запрос является поиском
func (r *QuestionRequest) IsSearch() bool {
	return r.SearchTerm != nil && *r.SearchTerm != ""
}

// ToInput преобразует запрос в данные для сервиса
func (r *QuestionRequest) ToInput() service.CreateQuestionInput {
	return service.CreateQuestionInput{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   uint(r.Category),
		Difficulty: int(r.Difficulty),
	}
}

// BulkQuestionsRequest — тело POST /questions/bulk
type BulkQuestionsRequest struct {
	Questions []QuestionRequest `json:"questions" binding:"required,min=1"`
}

// ToInputs преобразует пакет в данные для сервиса
func (r *BulkQuestionsRequest) ToInputs() []service.CreateQuestionInput {
	inputs := make([]service.CreateQuestionInput, len(r.Questions))
	for i := range r.Questions {
		inputs[i] = r.Questions[i].ToInput()
	}
	return inputs
}

// CategoriesResponse — ответ GET /categories
type CategoriesResponse struct {
	Success    bool               `json:"success"`
	Categories entity.CategoryMap `json:"categories"`
}

// QuestionListResponse — страница вопросов.
// CurrentCategory: null для общего списка, "" для поиска, id для категории.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      entity.CategoryMap `json:"categories,omitempty"`
	CurrentCategory interface{}        `json:"current_category"`
}

// DeleteQuestionResponse — ответ DELETE /questions/:id
type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        uint               `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// CreateQuestionResponse — ответ POST /questions при создании
type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// BulkQuestionsResponse — ответ POST /questions/bulk
type BulkQuestionsResponse struct {
	Success        bool   `json:"success"`
	Created        []uint `json:"created"`
	CreatedCount   int    `json:"created_count"`
	TotalQuestions int64  `json:"total_questions"`
}

// ErrorResponse — единый формат ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// HealthResponse — ответ GET /health
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
