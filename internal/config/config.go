package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// dataset + reports
	DatasetPath string
	ReportDir   string
	StaticDir   string

	JWTSecret string
	JWTTTL    time.Duration

	// optional redis report cache; empty addr disables it
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ReportCacheTTL time.Duration

	// optional async report jobs; empty RabbitURL disables them
	DBDSN       string
	RabbitURL   string
	RabbitQueue string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	datasetPath := os.Getenv("DATASET_PATH")
	if datasetPath == "" {
		datasetPath = "DATASET.csv"
	}

	reportDir := os.Getenv("REPORT_DIR")
	if reportDir == "" {
		reportDir = "."
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	jwtTTL := 24 * time.Hour
	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			jwtTTL = d
		}
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	cacheTTL := 10 * time.Minute
	if v := os.Getenv("REPORT_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cacheTTL = d
		}
	}

	// DSN demo:
	// sqlite:data/elix.db
	// app:apppass@tcp(127.0.0.1:3306)/elix?charset=utf8mb4&parseTime=true&loc=Local
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "sqlite:data/elix.db"
	}

	rabbitQueue := os.Getenv("RABBIT_QUEUE")
	if rabbitQueue == "" {
		rabbitQueue = "report_jobs"
	}

	return Config{
		Port:        port,
		Environment: strings.ToLower(env),
		LogLevel:    logLevel,

		DatasetPath: datasetPath,
		ReportDir:   reportDir,
		StaticDir:   os.Getenv("STATIC_DIR"),

		JWTSecret: secret,
		JWTTTL:    jwtTTL,

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		ReportCacheTTL: cacheTTL,

		DBDSN:       dsn,
		RabbitURL:   os.Getenv("RABBIT_URL"),
		RabbitQueue: rabbitQueue,
	}
}

// AsyncReportsEnabled reports whether report jobs can be queued.
func (c Config) AsyncReportsEnabled() bool {
	return c.RabbitURL != ""
}
