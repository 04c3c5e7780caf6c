package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader — заголовок с идентификатором запроса
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
	maxRequestIDLen = 128
)

// RequestID берет X-Request-ID из запроса или генерирует новый и возвращает его в ответе
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID возвращает идентификатор текущего запроса (пустая строка, если middleware не подключен)
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger возвращает логгер с request_id текущего запроса
func Logger(c *gin.Context, log *slog.Logger) *slog.Logger {
	if id := GetRequestID(c); id != "" {
		return log.With(slog.String("request_id", id))
	}
	return log
}
