package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/middleware"
)

// Handlers — набор обработчиков API
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// NewRouter создает gin.Engine со всеми маршрутами API.
// allowOrigins пустой или содержащий "*" разрешает любой источник.
func NewRouter(h Handlers, allowOrigins []string) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(allowOrigins)))

	router.GET("/health", h.Health.Health)

	router.GET("/categories", h.Category.ListCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID", NotFound),
		h.Category.ListCategoryQuestions,
	)

	questions := router.Group("/questions")
	{
		questions.GET("", h.Question.ListQuestions)
		questions.POST("", h.Question.CreateOrSearchQuestions)
		questions.POST("/bulk", h.Question.BulkCreateQuestions)
		questions.GET("/export", h.Question.ExportQuestions)
		questions.DELETE("/:id",
			middleware.ExtractUintParam("id", "questionID", BadRequest),
			h.Question.DeleteQuestion,
		)
	}

	router.POST("/quizzes", h.Quiz.NextQuestion)

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(allowOrigins) == 0
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cfg
}
