package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the teamplay bot
type Config struct {
	Bot         BotConfig
	Database    DatabaseConfig
	Tasks       TasksConfig
	Display     DisplayConfig
	Session     SessionConfig
	Application ApplicationConfig
}

// BotConfig holds Telegram bot configuration
type BotConfig struct {
	Token       string        `env:"TEAMPLAY_BOT_TOKEN"`
	PollTimeout time.Duration `env:"TEAMPLAY_BOT_POLL_TIMEOUT"`
	Debug       bool          `env:"TEAMPLAY_BOT_DEBUG"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TEAMPLAY_DB_DIR"`
	Filename       string        `env:"TEAMPLAY_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TEAMPLAY_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TEAMPLAY_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TEAMPLAY_DB_DIR_PERMISSIONS"`
}

// TasksConfig holds the task category enumeration and validation rules
type TasksConfig struct {
	Categories      []string `env:"TEAMPLAY_CATEGORIES"`
	DefaultCategory string   `env:"TEAMPLAY_DEFAULT_CATEGORY"`
	TextMaxLength   int      `env:"TEAMPLAY_TASK_TEXT_MAX"`
}

// DisplayConfig holds list rendering configuration
type DisplayConfig struct {
	ChunkLimit int    `env:"TEAMPLAY_CHUNK_LIMIT"`
	TimeFormat string `env:"TEAMPLAY_TIME_DISPLAY_FORMAT"`
}

// SessionConfig holds conversation session lifecycle configuration
type SessionConfig struct {
	TTL           time.Duration `env:"TEAMPLAY_SESSION_TTL"`
	SweepInterval time.Duration `env:"TEAMPLAY_SESSION_SWEEP_INTERVAL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Development bool `env:"TEAMPLAY_DEV"`
}

// DefaultCategories is the fixed category enumeration offered when the user
// adds a task. Overridable via TEAMPLAY_CATEGORIES.
var DefaultCategories = []string{
	"💼 Work",
	"🏠 Home",
	"📚 Study",
	"💪 Sport",
	"🎯 Personal",
	"📞 Meetings",
}

// DefaultCategoryName is the category recorded when a task is committed
// without an explicit selection. It is also the schema-level default for
// rows that predate the category column.
const DefaultCategoryName = "default-personal"

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".teamplay")

	return &Config{
		Bot: BotConfig{
			PollTimeout: 30 * time.Second,
			Debug:       false,
		},
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "teamplay.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Tasks: TasksConfig{
			Categories:      append([]string(nil), DefaultCategories...),
			DefaultCategory: DefaultCategoryName,
			TextMaxLength:   1000,
		},
		Display: DisplayConfig{
			// Telegram caps messages at 4096 characters; leave headroom
			// the way the original bot did.
			ChunkLimit: 4000,
			TimeFormat: "2006-01-02 15:04:05",
		},
		Session: SessionConfig{
			TTL:           time.Hour,
			SweepInterval: 5 * time.Minute,
		},
		Application: ApplicationConfig{
			Development: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Bot configuration
	if token := os.Getenv("TEAMPLAY_BOT_TOKEN"); token != "" {
		c.Bot.Token = token
	}
	if timeout := os.Getenv("TEAMPLAY_BOT_POLL_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Bot.PollTimeout = d
		}
	}
	if debug := os.Getenv("TEAMPLAY_BOT_DEBUG"); debug != "" {
		if b, err := strconv.ParseBool(debug); err == nil {
			c.Bot.Debug = b
		}
	}

	// Database configuration
	if dir := os.Getenv("TEAMPLAY_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TEAMPLAY_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TEAMPLAY_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TEAMPLAY_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TEAMPLAY_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Tasks configuration
	if categories := os.Getenv("TEAMPLAY_CATEGORIES"); categories != "" {
		c.Tasks.Categories = splitCategories(categories)
	}
	if category := os.Getenv("TEAMPLAY_DEFAULT_CATEGORY"); category != "" {
		c.Tasks.DefaultCategory = category
	}
	if maxLen := os.Getenv("TEAMPLAY_TASK_TEXT_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Tasks.TextMaxLength = n
		}
	}

	// Display configuration
	if limit := os.Getenv("TEAMPLAY_CHUNK_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Display.ChunkLimit = n
		}
	}
	if format := os.Getenv("TEAMPLAY_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	// Session configuration
	if ttl := os.Getenv("TEAMPLAY_SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Session.TTL = d
		}
	}
	if interval := os.Getenv("TEAMPLAY_SESSION_SWEEP_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Session.SweepInterval = d
		}
	}

	// Application configuration
	if dev := os.Getenv("TEAMPLAY_DEV"); dev != "" {
		if b, err := strconv.ParseBool(dev); err == nil {
			c.Application.Development = b
		}
	}

	return nil
}

// splitCategories parses a comma-separated category list, trimming
// whitespace and dropping empty entries
func splitCategories(s string) []string {
	parts := strings.Split(s, ",")
	categories := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate tasks configuration
	if len(c.Tasks.Categories) == 0 {
		return &ConfigError{Field: "tasks.categories", Message: "at least one category must be configured"}
	}
	if c.Tasks.DefaultCategory == "" {
		return &ConfigError{Field: "tasks.default_category", Message: "default category cannot be empty"}
	}
	if c.Tasks.TextMaxLength < 1 {
		return &ConfigError{Field: "tasks.text_max_length", Message: "task text maximum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.ChunkLimit < 100 {
		return &ConfigError{Field: "display.chunk_limit", Message: "chunk limit must be at least 100"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time display format cannot be empty"}
	}

	// Validate session configuration
	if c.Session.TTL <= 0 {
		return &ConfigError{Field: "session.ttl", Message: "session TTL must be positive"}
	}
	if c.Session.SweepInterval <= 0 {
		return &ConfigError{Field: "session.sweep_interval", Message: "session sweep interval must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
