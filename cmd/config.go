package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBLockTimeout     time.Duration
	DBAutoMigrate     bool

	UploadRoot     string
	UploadMaxBytes int64

	// AMQPURL is optional; without it status events are not published.
	AMQPURL      string
	AMQPExchange string

	SchemaRefreshCron string
	LogLevel          slog.Level
}

// Defaults for keys left unset.
const (
	DefaultHTTPPort          = "8080"
	DefaultDBSslMode         = "disable"
	DefaultDBMaxOpenConns    = 20
	DefaultDBMaxIdleConns    = 5
	DefaultDBConnMaxLifetime = 30 * time.Minute
	DefaultDBLockTimeout     = 5 * time.Second
	DefaultUploadRoot        = "uploads"
	DefaultUploadMaxBytes    = 10 << 20
	DefaultAMQPExchange      = "driver.events"
)

// ConfigFromEnv reads the configuration through getenv, normally os.Getenv
// after godotenv has loaded an optional .env file.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	p := envParser{getenv: getenv}

	config := Config{
		HTTPPort:          p.stringOr("HTTP_PORT", DefaultHTTPPort),
		DBHost:            p.stringOr("DB_HOST", "localhost"),
		DBPort:            p.stringOr("DB_PORT", "5432"),
		DBUser:            p.stringOr("DB_USER", ""),
		DBPassword:        p.stringOr("DB_PASSWORD", ""),
		DBName:            p.stringOr("DB_NAME", ""),
		DBSslMode:         p.stringOr("DB_SSLMODE", DefaultDBSslMode),
		DBMaxOpenConns:    p.intOr("DB_MAX_OPEN_CONNS", DefaultDBMaxOpenConns),
		DBMaxIdleConns:    p.intOr("DB_MAX_IDLE_CONNS", DefaultDBMaxIdleConns),
		DBConnMaxLifetime: p.durationOr("DB_CONN_MAX_LIFETIME", DefaultDBConnMaxLifetime),
		DBLockTimeout:     p.durationOr("DB_LOCK_TIMEOUT", DefaultDBLockTimeout),
		DBAutoMigrate:     p.boolOr("DB_AUTO_MIGRATE", false),
		UploadRoot:        p.stringOr("UPLOAD_ROOT", DefaultUploadRoot),
		UploadMaxBytes:    int64(p.intOr("UPLOAD_MAX_BYTES", DefaultUploadMaxBytes)),
		AMQPURL:           p.stringOr("AMQP_URL", ""),
		AMQPExchange:      p.stringOr("AMQP_EXCHANGE", DefaultAMQPExchange),
		SchemaRefreshCron: p.stringOr("SCHEMA_REFRESH_CRON", ""),
		LogLevel:          p.levelOr("LOG_LEVEL", slog.LevelInfo),
	}

	if p.err != nil {
		return Config{}, p.err
	}
	if config.DBName == "" || config.DBUser == "" {
		return Config{}, errors.New("DB_NAME and DB_USER are required")
	}
	return config, nil
}

// DSN is the connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// envParser keeps the first parse error so every key can be read in one pass.
type envParser struct {
	getenv func(string) string
	err    error
}

func (p *envParser) lookup(key string) (string, bool) {
	v := strings.TrimSpace(p.getenv(key))
	return v, v != ""
}

func (p *envParser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
}

func (p *envParser) stringOr(key, def string) string {
	if v, ok := p.lookup(key); ok {
		return v
	}
	return def
}

func (p *envParser) intOr(key string, def int) int {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *envParser) boolOr(key string, def bool) bool {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return b
}

func (p *envParser) durationOr(key string, def time.Duration) time.Duration {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *envParser) levelOr(key string, def slog.Level) slog.Level {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.fail(key, v, err)
		return def
	}
	return l
}
