package dto

// QuizCategory — категория раунда; id 0 означает "все категории"
type QuizCategory struct {
	ID   *FlexibleUint `json:"id"`
	Type string        `json:"type"`
}

// QuizRequest — тело POST /quizzes. Состояние игры хранит клиент.
type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Valid проверяет обязательные поля
func (r *QuizRequest) Valid() bool {
	return r.QuizCategory != nil && r.QuizCategory.ID != nil
}

// QuizResponse — ответ POST /quizzes; Question == nil, когда вопросы закончились
type QuizResponse struct {
	Success           bool              `json:"success"`
	Question          *QuestionResponse `json:"question"`
	PreviousQuestions []uint            `json:"previous_questions"`
}
