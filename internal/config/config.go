package config

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	PasswordSchemeBcrypt = "bcrypt"
	PasswordSchemeSHA256 = "sha256"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	DBDriver       string
	DatabaseFile   string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	AccessTokenTTL time.Duration
	PasswordScheme string
	SwaggerHost    string
	ResetDB        bool

	// JWTSecretGenerated is set when no JWT_SECRET_KEY was configured and a
	// random one was made for this process. Tokens do not survive a restart.
	JWTSecretGenerated bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		DBDriver:       getEnv("DB_DRIVER", DriverSQLite),
		DatabaseFile:   getEnv("DATABASE_FILE", "db.sqlite3"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/programador?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
		AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_EXPIRES", 15*time.Minute),
		PasswordScheme: getEnv("PASSWORD_SCHEME", PasswordSchemeBcrypt),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
		ResetDB:        os.Getenv("RESET_DB") == "true",
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.NewString()
		cfg.JWTSecretGenerated = true
	}

	return cfg
}

// DatabaseLocation describes where data is stored, without credentials.
func (c *Config) DatabaseLocation() string {
	if c.DBDriver == DriverMySQL {
		return "mysql"
	}
	return c.DBDriver + ":" + c.DatabaseFile
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
