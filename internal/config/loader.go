package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Read a .env file into the environment if one exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Bot overrides
	BotToken       *string
	BotPollTimeout *time.Duration
	BotDebug       *bool

	// Database overrides
	DBDir      *string
	DBFilename *string

	// Tasks overrides
	Categories      *[]string
	DefaultCategory *string

	// Display overrides
	ChunkLimit *int
	TimeFormat *string

	// Session overrides
	SessionTTL    *time.Duration
	SweepInterval *time.Duration

	// Application overrides
	Development *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.BotToken != nil {
		config.Bot.Token = *overrides.BotToken
	}
	if overrides.BotPollTimeout != nil {
		config.Bot.PollTimeout = *overrides.BotPollTimeout
	}
	if overrides.BotDebug != nil {
		config.Bot.Debug = *overrides.BotDebug
	}

	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}

	if overrides.Categories != nil {
		config.Tasks.Categories = *overrides.Categories
	}
	if overrides.DefaultCategory != nil {
		config.Tasks.DefaultCategory = *overrides.DefaultCategory
	}

	if overrides.ChunkLimit != nil {
		config.Display.ChunkLimit = *overrides.ChunkLimit
	}
	if overrides.TimeFormat != nil {
		config.Display.TimeFormat = *overrides.TimeFormat
	}

	if overrides.SessionTTL != nil {
		config.Session.TTL = *overrides.SessionTTL
	}
	if overrides.SweepInterval != nil {
		config.Session.SweepInterval = *overrides.SweepInterval
	}

	if overrides.Development != nil {
		config.Application.Development = *overrides.Development
	}
}
