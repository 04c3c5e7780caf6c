package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuizHandler обрабатывает раунды викторины
type QuizHandler struct {
	quizService *service.QuizService
	log         *slog.Logger
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService, log *slog.Logger) *QuizHandler {
	if log == nil {
		log = slog.Default()
	}
	return &QuizHandler{quizService: quizService, log: log}
}

// NextQuestion возвращает случайный еще не показанный вопрос.
// Когда вопросы закончились, question == null.
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		respondError(c, errBadRequest)
		return
	}

	previous := req.PreviousQuestions
	if previous == nil {
		previous = []uint{}
	}

	result, err := h.quizService.NextQuestion(c.Request.Context(), uint(*req.QuizCategory.ID), previous)
	if err != nil {
		middleware.Logger(c, h.log).Error("failed to pick quiz question", slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:           true,
		Question:          dto.NewQuestionResponse(result.Question),
		PreviousQuestions: previous,
	})
}
