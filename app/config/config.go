package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	Env            string
	Port           string
	DatabaseURL    string
	Redis          RedisConfig
	JWTSecret      string
	SessionTTL     time.Duration
	QueryTimeout   time.Duration
	LogLevel       string
	TemplateReload bool

	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

const defaultJWTSecret = "student-dashboard-secret-key"

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	envFileErr := godotenv.Load()

	redisDB, err := strconv.Atoi(GetEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	sessionTTL, err := time.ParseDuration(GetEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	queryTimeout, err := time.ParseDuration(GetEnv("QUERY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("QUERY_TIMEOUT: %w", err)
	}
	reload, err := strconv.ParseBool(GetEnv("TEMPLATE_RELOAD", "false"))
	if err != nil {
		return nil, fmt.Errorf("TEMPLATE_RELOAD: %w", err)
	}

	cfg := &Config{
		Env:         GetEnv("APP_ENV", "production"),
		Port:        GetEnv("PORT", "8080"),
		DatabaseURL: GetEnv("DATABASE_URL", "postgres://postgres@localhost:5432/student_dashboard?sslmode=disable"),
		Redis: RedisConfig{
			Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
			Password: GetEnv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		JWTSecret:      GetEnv("JWT_SECRET", defaultJWTSecret),
		SessionTTL:     sessionTTL,
		QueryTimeout:   queryTimeout,
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		TemplateReload: reload,
		EnvFileLoaded:  envFileErr == nil,
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.QueryTimeout <= 0 {
		return nil, fmt.Errorf("QUERY_TIMEOUT must be positive, got %s", cfg.QueryTimeout)
	}
	if cfg.Env != "development" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set outside development")
	}

	return cfg, nil
}

// GetEnv returns the variable's value, or the first default when it is unset.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsDevelopment reports whether APP_ENV is "development".
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// InitDB opens the PostgreSQL pool and verifies connectivity.
func InitDB(ctx context.Context, cfg *Config, log *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	log.Info("testing database connection")
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connected successfully")
	return db, nil
}

// InitRedis builds the session store client and verifies connectivity.
func InitRedis(ctx context.Context, cfg *Config, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Redis.Addr, err)
	}

	log.Info("redis connected", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
	return client, nil
}
