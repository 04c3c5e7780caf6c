package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	"github.com/yourusername/trivia-quiz-api/internal/handler"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/logger"
	"github.com/yourusername/trivia-quiz-api/internal/repository/memory"
	pgRepo "github.com/yourusername/trivia-quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-quiz-api/internal/repository/redis"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	log := logger.New(cfg.Server.Mode, os.Stdout)
	slog.SetDefault(log)
	log.Info("config loaded", slog.String("path", configPath), slog.String("driver", cfg.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Хранилище вопросов и категорий
	var (
		questionRepo repository.QuestionRepository
		categoryRepo repository.CategoryRepository
		healthChecks []handler.HealthCheck
		db           *gorm.DB
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		categories, questions := memory.NewSeeded()
		categoryRepo, questionRepo = categories, questions
		log.Warn("using in-memory store, data will be lost on restart")
	default:
		db, err = database.NewPostgresDB(ctx, cfg.Database.PostgresConnectionString(), database.GormLogLevel(cfg.Server.Mode))
		if err != nil {
			return err
		}
		defer func() {
			if err := database.ClosePostgres(db); err != nil {
				log.Error("failed to close database", slog.Any("error", err))
			}
		}()

		if err := database.MigrateDB(db, cfg.Database.MigrationsPath, log); err != nil {
			return err
		}

		categoryRepo = pgRepo.NewCategoryRepo(db)
		questionRepo = pgRepo.NewQuestionRepo(db)
		healthChecks = append(healthChecks, handler.HealthCheck{Name: "database", Ping: database.PingPostgres(db)})
	}

	// Кеш категорий (необязателен)
	var cacheRepo repository.CacheRepository = redisRepo.NoopCache{}
	if cfg.Redis.Enabled() {
		var redisClient redis.UniversalClient
		redisClient, err = database.NewUniversalRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		cacheRepo, err = redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			return err
		}
		healthChecks = append(healthChecks, handler.HealthCheck{Name: "redis", Ping: database.PingRedis(redisClient)})
		log.Info("connected to redis", slog.String("mode", cfg.Redis.Mode))
	}

	// Сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo, cfg.Pagination.QuestionsPerPage, log)
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Redis.CacheDuration(), log)
	quizService := service.NewQuizService(questionRepo, log)

	router := handler.NewRouter(handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService, questionService, log),
		Question: handler.NewQuestionHandler(questionService, categoryService, log),
		Quiz:     handler.NewQuizHandler(quizService, log),
		Health:   handler.NewHealthHandler(log, healthChecks...),
	}, cfg.CORS.AllowOrigins)

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", slog.Any("error", err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server exited properly")
	return nil
}
