package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// defaultAdminUserID is the built-in privileged account. It gates /list and
// /register and can be overridden with ADMIN_USER_ID.
const defaultAdminUserID int64 = 353435199

type Config struct {
	TelegramToken string

	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBConnLimit int32

	DepartmentNames []string
	AdminUserID     int64

	AssetsDir      string
	PDFOutputDir   string
	MigrationsPath string

	LogLevel  string
	LogFormat string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_DATABASE"),
		AssetsDir:      envOr("ASSETS_DIR", "assets"),
		PDFOutputDir:   envOr("PDF_OUTPUT_DIR", "pdfs"),
		MigrationsPath: envOr("MIGRATIONS_PATH", "migrations"),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogFormat:      envOr("LOG_FORMAT", "console"),
		AdminUserID:    defaultAdminUserID,
	}

	for _, name := range strings.Split(os.Getenv("DEPARTMENT_NAMES"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.DepartmentNames = append(cfg.DepartmentNames, name)
		}
	}

	if raw := os.Getenv("DB_CONNECTION_LIMIT"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("config: DB_CONNECTION_LIMIT must be a positive integer, got %q", raw)
		}
		cfg.DBConnLimit = int32(limit)
	}

	if raw := os.Getenv("ADMIN_USER_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: ADMIN_USER_ID must be a numeric user id, got %q", raw)
		}
		cfg.AdminUserID = id
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all startup rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.TelegramToken) == "" {
		return fmt.Errorf("config: TELEGRAM_BOT_TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.DBHost) == "" {
		return fmt.Errorf("config: DB_HOST is required and cannot be empty")
	}
	if strings.TrimSpace(c.DBUser) == "" {
		return fmt.Errorf("config: DB_USER is required and cannot be empty")
	}
	if strings.TrimSpace(c.DBName) == "" {
		return fmt.Errorf("config: DB_DATABASE is required and cannot be empty")
	}

	if len(c.DepartmentNames) == 0 {
		return fmt.Errorf("config: DEPARTMENT_NAMES is required (comma-separated department list)")
	}

	return nil
}

// DatabaseURL assembles a postgres DSN from the DB_* variables.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   c.DBHost,
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	q := url.Values{}
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
