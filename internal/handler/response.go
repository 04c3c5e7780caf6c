package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
)

// apiError — вид ошибки API с фиксированным статусом и текстом.
// Детали внутренних ошибок клиенту не передаются.
type apiError struct {
	status  int
	message string
}

var (
	errNotFound         = apiError{http.StatusNotFound, "Not found"}
	errBadRequest       = apiError{http.StatusBadRequest, "Bad request"}
	errUnprocessable    = apiError{http.StatusUnprocessableEntity, "Unprocessable"}
	errMethodNotAllowed = apiError{http.StatusMethodNotAllowed, "Method not allowed"}
)

// respondError отправляет ошибку в едином формате и прерывает цепочку обработчиков
func respondError(c *gin.Context, e apiError) {
	c.AbortWithStatusJSON(e.status, dto.ErrorResponse{
		Success: false,
		Error:   e.status,
		Message: e.message,
	})
}

// NotFound — обработчик для неизвестных маршрутов и нечисловых id категорий
func NotFound(c *gin.Context) {
	respondError(c, errNotFound)
}

// BadRequest — обработчик для некорректных параметров запроса
func BadRequest(c *gin.Context) {
	respondError(c, errBadRequest)
}

// MethodNotAllowed — обработчик для неподдерживаемых методов
func MethodNotAllowed(c *gin.Context) {
	respondError(c, errMethodNotAllowed)
}
