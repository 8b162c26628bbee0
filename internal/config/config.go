// Package config loads the assistant configuration from config.yaml,
// ASSISTANT_* environment variables and command-line flags using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/assistant/internal/logger"
	"github.com/mesh-intelligence/assistant/internal/paths"
	"github.com/mesh-intelligence/assistant/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "ASSISTANT"
)

// Config keys.
const (
	KeyPrompt       = "prompt"
	KeyUpcomingDays = "upcoming_days"
	KeyToday        = "today"
	KeyJSON         = "json"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyLogFile      = "log.file"
)

// DefaultPrompt is printed before every command is read.
const DefaultPrompt = "Enter a command: "

// Config validation errors.
var (
	ErrUpcomingDaysInvalid = errors.New("upcoming_days must not be negative")
	ErrTodayInvalid        = errors.New("today must be a DD.MM.YYYY date")
	ErrLogLevelUnknown     = errors.New("unknown log level")
	ErrLogFormatUnknown    = errors.New("unknown log format")
)

// Config is the resolved assistant configuration.
type Config struct {
	Prompt       string         `mapstructure:"prompt" yaml:"prompt"`
	UpcomingDays int            `mapstructure:"upcoming_days" yaml:"upcoming_days"`
	Today        string         `mapstructure:"today" yaml:"today,omitempty"` // fixed current date, DD.MM.YYYY
	JSON         bool           `mapstructure:"json" yaml:"json"`
	Log          logger.Options `mapstructure:"log" yaml:"log"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Prompt:       DefaultPrompt,
		UpcomingDays: types.DefaultUpcomingDays,
		Log: logger.Options{
			Level:  "warn",
			Format: "text",
		},
	}
}

// NewViper returns a Viper instance reading config.yaml from configDir with
// defaults and ASSISTANT_ environment overrides registered. Callers may bind
// flags to it before calling Read.
func NewViper(configDir string) *viper.Viper {
	def := Default()

	v := viper.New()
	v.SetDefault(KeyPrompt, def.Prompt)
	v.SetDefault(KeyUpcomingDays, def.UpcomingDays)
	v.SetDefault(KeyToday, def.Today)
	v.SetDefault(KeyJSON, def.JSON)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFormat, def.Log.Format)
	v.SetDefault(KeyLogFile, def.Log.File)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file into v, decodes and validates the result.
// A missing config.yaml is not an error.
func Read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the configuration for configDir without flag bindings.
func Load(configDir string) (*Config, error) {
	return Read(NewViper(configDir))
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.UpcomingDays < 0 {
		return ErrUpcomingDaysInvalid
	}
	if _, _, err := c.TodayDate(); err != nil {
		return err
	}
	if _, ok := logger.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w %q", ErrLogLevelUnknown, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w %q", ErrLogFormatUnknown, c.Log.Format)
	}
	return nil
}

// TodayDate returns the configured fixed current date, if any.
func (c Config) TodayDate() (time.Time, bool, error) {
	if c.Today == "" {
		return time.Time{}, false, nil
	}
	b, err := types.NewBirthday(c.Today)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", ErrTodayInvalid, c.Today)
	}
	return b.Date(), true, nil
}

// WriteDefault creates configDir and writes a default config.yaml into it.
// It returns false without touching anything if the file already exists.
func WriteDefault(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := paths.ConfigFile(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := Default()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
