package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	mongoURIEnvKey      = "MONGO_URI"
	dbNameEnvKey        = "DB_NAME"
	logLevelEnvKey      = "LOG_LEVEL"
	shutdownEnvKey      = "SHUTDOWN_TIMEOUT"
	corsOriginEnvKey    = "CORS_ALLOWED_ORIGIN"
	defaultPort         = "3000"
	defaultDBName       = "exercise_tracker"
	defaultLogLevel     = "info"
	defaultCORSOrigin   = "*"
	defaultShutdownWait = 15 * time.Second
)

// Backend identifies which store implementation the connection URL points at.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
)

type App struct {
	Port              string
	DBConnectionURL   string
	DBName            string
	LogLevel          string
	ShutdownTimeout   time.Duration
	CORSAllowedOrigin string
}

// NewApp reads the process environment. When envFile is not empty the file
// is loaded first; variables already present in the environment win.
func NewApp(envFile string) (App, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return App{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	dbConn, ok := lookupEnv(dbConnEnvKey)
	if !ok {
		dbConn, ok = lookupEnv(mongoURIEnvKey)
	}
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	shutdown := defaultShutdownWait
	if raw, ok := lookupEnv(shutdownEnvKey); ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", shutdownEnvKey, err)
		}
		shutdown = parsed
	}

	return App{
		Port:              getEnv(apiPortEnvKey, defaultPort),
		DBConnectionURL:   dbConn,
		DBName:            getEnv(dbNameEnvKey, defaultDBName),
		LogLevel:          getEnv(logLevelEnvKey, defaultLogLevel),
		ShutdownTimeout:   shutdown,
		CORSAllowedOrigin: getEnv(corsOriginEnvKey, defaultCORSOrigin),
	}, nil
}

// Backend picks the store implementation from the connection URL scheme.
func (a App) Backend() Backend {
	url := strings.ToLower(a.DBConnectionURL)
	if strings.HasPrefix(url, "mongodb://") || strings.HasPrefix(url, "mongodb+srv://") {
		return BackendMongo
	}
	return BackendPostgres
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func getEnv(key, fallback string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return fallback
}
