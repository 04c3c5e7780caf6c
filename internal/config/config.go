package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Драйверы хранилища вопросов
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config хранит все настройки приложения
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Pagination PaginationConfig
	CORS       CORSConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port            string
	Mode            string // debug | release | test (режим gin и формат логов)
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig содержит настройки хранилища.
// Для драйвера memory остальные поля не используются.
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RedisConfig содержит настройки подключения к Redis.
// Поддерживает режимы: single, sentinel, cluster. Без адресов кеш отключен.
type RedisConfig struct {
	Mode       string   `mapstructure:"mode"`
	Addrs      []string `mapstructure:"addrs"`
	Addr       string   `mapstructure:"addr"`
	Password   string   `mapstructure:"password"`
	DB         int      `mapstructure:"db"`
	MasterName string   `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - бесконечно)
	MaxRetries int `mapstructure:"max_retries"`

	// CacheTTL: время жизни кеша категорий в секундах; 0 отключает кеш
	CacheTTL int `mapstructure:"cache_ttl"`
}

// PaginationConfig содержит настройки постраничной выдачи
type PaginationConfig struct {
	QuestionsPerPage int `mapstructure:"questions_per_page"`
}

// CORSConfig содержит список разрешенных источников ("*" — любой)
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL формирует URL для golang-migrate
func (d *DatabaseConfig) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Enabled сообщает, задан ли хотя бы один адрес Redis
func (r *RedisConfig) Enabled() bool {
	return len(r.Addrs) > 0 || r.Addr != ""
}

// CacheDuration возвращает TTL кеша категорий
func (r *RedisConfig) CacheDuration() time.Duration {
	return time.Duration(r.CacheTTL) * time.Second
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.mode", "debug")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)
	vip.SetDefault("server.shutdown_timeout", 10)
	vip.SetDefault("database.driver", DriverPostgres)
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.migrations_path", "file://migrations")
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.cache_ttl", 300)
	vip.SetDefault("pagination.questions_per_page", 10)
	vip.SetDefault("cors.allow_origins", []string{"*"})

	// 2. Привязываем переменные окружения ЯВНО
	bindings := map[string]string{
		"server.port":                   "SERVER_PORT",
		"server.mode":                   "GIN_MODE",
		"database.driver":               "DATABASE_DRIVER",
		"database.host":                 "DATABASE_HOST",
		"database.port":                 "DATABASE_PORT",
		"database.user":                 "DATABASE_USER",
		"database.password":             "DATABASE_PASSWORD",
		"database.dbname":               "DATABASE_DBNAME",
		"database.sslmode":              "DATABASE_SSLMODE",
		"database.migrations_path":      "DATABASE_MIGRATIONS_PATH",
		"redis.mode":                    "REDIS_MODE",
		"redis.addrs":                   "REDIS_ADDRS",
		"redis.addr":                    "REDIS_ADDR",
		"redis.password":                "REDIS_PASSWORD",
		"redis.db":                      "REDIS_DB",
		"redis.master_name":             "REDIS_MASTER_NAME",
		"redis.cache_ttl":               "REDIS_CACHE_TTL",
		"pagination.questions_per_page": "QUESTIONS_PER_PAGE",
		"cors.allow_origins":            "CORS_ALLOW_ORIGINS",
	}
	for key, env := range bindings {
		if err := vip.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	// 3. Файл конфигурации не обязателен: все можно задать через окружение
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			slog.Warn("config file not loaded, using env and defaults", slog.String("path", configPath), slog.Any("error", err))
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q (check GIN_MODE)", c.Server.Mode)
	}

	if c.Pagination.QuestionsPerPage < 1 {
		return errors.New("pagination.questions_per_page must be positive (check QUESTIONS_PER_PAGE)")
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
			return errors.New("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
		}
		if c.Server.Mode == "release" && c.Database.Password == "" {
			return errors.New("database password is required in release mode (check DATABASE_PASSWORD env var)")
		}
	default:
		return fmt.Errorf("unsupported database driver %q (check DATABASE_DRIVER)", c.Database.Driver)
	}

	if c.Redis.Enabled() && c.Redis.Mode == "sentinel" && c.Redis.MasterName == "" {
		return errors.New("redis sentinel mode requires master_name (check REDIS_MASTER_NAME)")
	}
	return nil
}
