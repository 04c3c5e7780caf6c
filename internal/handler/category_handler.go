package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
	log             *slog.Logger
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
	log *slog.Logger,
) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		log:             log,
	}
}

// ListCategories возвращает все категории
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		middleware.Logger(c, h.log).Error("failed to list categories", slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}
	if len(categories) == 0 {
		respondError(c, errNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// ListCategoryQuestions возвращает страницу вопросов категории
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.ListByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, errNotFound)
			return
		}
		middleware.Logger(c, h.log).Error("failed to list category questions",
			slog.Uint64("category", uint64(categoryID)), slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.NewQuestionList(result.Questions),
		TotalQuestions:  result.Total,
		CurrentCategory: categoryID,
	})
}
