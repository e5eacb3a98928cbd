package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/prioritisation-matrix/models"
)

type Config struct {
	DatabaseURL  string `yaml:"database_url" validate:"required"`
	DatabaseType string `yaml:"database_type" validate:"required,oneof=sqlite postgres"`
	StorageKey   string `yaml:"storage_key" validate:"required"`
	Variant      string `yaml:"variant" validate:"required,oneof=grid sequential"`
	LogLevel     string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	AssumeYes    bool   `yaml:"assume_yes"`
}

var validate = validator.New()

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		DatabaseURL:  "prioritisation-matrix.db",
		DatabaseType: "sqlite",
		StorageKey:   models.StorageKey,
		Variant:      models.VariantGrid,
		LogLevel:     "warn",
	}
}

// ParseFlags builds the config. Precedence, lowest first: defaults, YAML
// file (-c or CONFIG_FILE), environment (including .env), CLI flags.
func ParseFlags(args []string) (Config, error) {
	var flags Config
	var configPath, envPath string

	fs := flag.NewFlagSet("prioritisation-matrix", flag.ContinueOnError)

	fs.StringVar(&configPath, "c", "", "YAML config file")
	fs.StringVar(&envPath, "env", ".env", "dotenv file to load")

	// Storage
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&flags.StorageKey, "k", "", "Key the state is stored under")

	// Session
	fs.StringVar(&flags.Variant, "variant", "", "Comparison flow (grid or sequential)")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&flags.AssumeYes, "y", false, "Answer yes to confirmation prompts")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over .env entries
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envPath, err)
	}

	cfg := Defaults()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_FILE")
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	applyFlags(&cfg, flags)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("DATABASE_TYPE"); v != "" {
		cfg.DatabaseType = v
	}
	if v := os.Getenv("STORAGE_KEY"); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv("MATRIX_VARIANT"); v != "" {
		cfg.Variant = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ASSUME_YES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New("invalid ASSUME_YES env variable")
		}
		cfg.AssumeYes = b
	}
	return nil
}

func applyFlags(cfg *Config, flags Config) {
	if flags.DatabaseURL != "" {
		cfg.DatabaseURL = flags.DatabaseURL
	}
	if flags.DatabaseType != "" {
		cfg.DatabaseType = flags.DatabaseType
	}
	if flags.StorageKey != "" {
		cfg.StorageKey = flags.StorageKey
	}
	if flags.Variant != "" {
		cfg.Variant = flags.Variant
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.AssumeYes {
		cfg.AssumeYes = true
	}
}

// Validate checks required fields and enumerated values
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to warn
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
