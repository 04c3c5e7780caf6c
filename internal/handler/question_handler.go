package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
	log             *slog.Logger
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
	log *slog.Logger,
) *QuestionHandler {
	if log == nil {
		log = slog.Default()
	}
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		log:             log,
	}
}

// ListQuestions возвращает страницу вопросов вместе со списком категорий
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.List(ctx, page)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, errNotFound)
			return
		}
		middleware.Logger(c, h.log).Error("failed to list questions", slog.Int("page", page), slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		middleware.Logger(c, h.log).Error("failed to list categories", slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.NewQuestionList(result.Questions),
		TotalQuestions:  result.Total,
		Categories:      categories,
		CurrentCategory: nil,
	})
}

// DeleteQuestion удаляет вопрос и возвращает текущую страницу
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	ctx := c.Request.Context()
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.Delete(ctx, questionID); err != nil {
		var deleteErr *service.DeleteError
		if errors.As(err, &deleteErr) && deleteErr.Kind == service.DeleteStoreFailed {
			middleware.Logger(c, h.log).Error("failed to delete question", slog.Any("error", err))
		}
		respondError(c, errBadRequest)
		return
	}

	result, err := h.questionService.Browse(ctx, pagination.ParsePage(c.Query("page")))
	if err != nil {
		middleware.Logger(c, h.log).Error("failed to list questions after delete", slog.Any("error", err))
		respondError(c, errBadRequest)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      dto.NewQuestionList(result.Questions),
		TotalQuestions: result.Total,
	})
}

// CreateOrSearchQuestions создает вопрос или, если передан searchTerm, ищет вопросы
// POST /questions
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errUnprocessable)
		return
	}

	if req.IsSearch() {
		h.searchQuestions(c, *req.SearchTerm)
		return
	}
	h.createQuestion(c, &req)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	result, err := h.questionService.Search(c.Request.Context(), term, pagination.ParsePage(c.Query("page")))
	if err != nil {
		middleware.Logger(c, h.log).Error("failed to search questions", slog.String("term", term), slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.NewQuestionList(result.Questions),
		TotalQuestions:  result.Total,
		CurrentCategory: "",
	})
}

func (h *QuestionHandler) createQuestion(c *gin.Context, req *dto.QuestionRequest) {
	ctx := c.Request.Context()

	question, err := h.questionService.Create(ctx, req.ToInput())
	if err != nil {
		h.logCreateError(c, err)
		respondError(c, errUnprocessable)
		return
	}

	result, err := h.questionService.Browse(ctx, pagination.ParsePage(c.Query("page")))
	if err != nil {
		middleware.Logger(c, h.log).Error("failed to list questions after create", slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      dto.NewQuestionList(result.Questions),
		TotalQuestions: result.Total,
	})
}

// BulkCreateQuestions загружает пакет вопросов целиком или не загружает ничего
// POST /questions/bulk
func (h *QuestionHandler) BulkCreateQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BulkQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errUnprocessable)
		return
	}

	created, err := h.questionService.CreateBatch(ctx, req.ToInputs())
	if err != nil {
		h.logCreateError(c, err)
		respondError(c, errUnprocessable)
		return
	}

	total, err := h.questionService.Total(ctx)
	if err != nil {
		middleware.Logger(c, h.log).Error("failed to count questions", slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	ids := make([]uint, len(created))
	for i := range created {
		ids[i] = created[i].ID
	}
	c.JSON(http.StatusCreated, dto.BulkQuestionsResponse{
		Success:        true,
		Created:        ids,
		CreatedCount:   len(created),
		TotalQuestions: total,
	})
}

// ExportQuestions выгружает все вопросы в CSV или XLSX
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		respondError(c, errBadRequest)
		return
	}

	// Пишем в буфер, чтобы при ошибке отдать JSON, а не обрезанный файл
	var buf bytes.Buffer
	if err := h.questionService.Export(c.Request.Context(), &buf, format); err != nil {
		middleware.Logger(c, h.log).Error("failed to export questions", slog.String("format", string(format)), slog.Any("error", err))
		respondError(c, errUnprocessable)
		return
	}

	filename := fmt.Sprintf("questions_%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// logCreateError пишет в лог только сбои хранилища; ошибки валидации — вина клиента
func (h *QuestionHandler) logCreateError(c *gin.Context, err error) {
	var createErr *service.CreateError
	if errors.As(err, &createErr) && createErr.Kind == service.CreateValidationFailed {
		middleware.Logger(c, h.log).Debug("question rejected", slog.Any("error", err))
		return
	}
	middleware.Logger(c, h.log).Error("failed to create question", slog.Any("error", err))
}
