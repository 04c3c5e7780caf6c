package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractUintParam(t *testing.T) {
	router := gin.New()
	router.GET("/items/:id",
		ExtractUintParam("id", "itemID", func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		}),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.MustGet("itemID").(uint)})
		},
	)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"число", "/items/42", http.StatusOK, `{"id":42}`},
		{"не число", "/items/abc", http.StatusBadRequest, `{"error":"bad id"}`},
		{"отрицательное", "/items/-1", http.StatusBadRequest, `{"error":"bad id"}`},
		{"переполнение uint32", "/items/4294967296", http.StatusBadRequest, `{"error":"bad id"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get(RequestIDHeader)
	assert.Equal(t, seen, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err, "сгенерированный id должен быть UUID")
}

func TestRequestID_EchoesIncoming(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
}
