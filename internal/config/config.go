// Package config loads coursekit settings from defaults, a global and a
// local JSON file, and COURSEKIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COURSEKIT_"

// SiteConfig holds the descriptive site constants consumed by the
// rendering layer and checked by `coursekit stats`.
type SiteConfig struct {
	CourseID      int    `koanf:"course_id" json:"course_id" validate:"min=0"`
	Title         string `koanf:"title" json:"title" validate:"required"`
	Description   string `koanf:"description" json:"description"`
	TotalSections int    `koanf:"total_sections" json:"total_sections" validate:"min=1"`
	TotalLectures int    `koanf:"total_lectures" json:"total_lectures" validate:"min=0"`
	TotalQuizzes  int    `koanf:"total_quizzes" json:"total_quizzes" validate:"min=0"` // 0 disables the quiz count check
}

// Configuration represents the coursekit configuration.
type Configuration struct {
	ContentDir       string     `koanf:"content_dir" json:"content_dir" validate:"required"`
	Extensions       []string   `koanf:"extensions" json:"extensions" validate:"min=1,dive,required,startswith=."`
	Jobs             int        `koanf:"jobs" json:"jobs" validate:"min=0,max=256"` // 0 means GOMAXPROCS
	Strict           bool       `koanf:"strict" json:"strict"`
	WarningsAsErrors bool       `koanf:"warnings_as_errors" json:"warnings_as_errors"`
	ShowProgress     bool       `koanf:"show_progress" json:"show_progress"`
	Site             SiteConfig `koanf:"site" json:"site"`
}

// GlobalConfigPath returns ~/.coursekit/config.json, or "" when the home
// directory cannot be determined.
func GlobalConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".coursekit", "config.json")
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k, err := layered(localConfigPath)
	if err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.ContentDir = expandHomePath(cfg.ContentDir)

	return &cfg, nil
}

// GetValue returns the effective value of a known key after all sources
// are merged.
func GetValue(localConfigPath, key string) (interface{}, error) {
	if _, err := LookupKey(key); err != nil {
		return nil, err
	}
	k, err := layered(localConfigPath)
	if err != nil {
		return nil, err
	}
	return k.Get(key), nil
}

func layered(localConfigPath string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %s: %w", key, err)
		}
	}

	if globalPath := GlobalConfigPath(); globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return k, nil
}

// envTransform converts environment variable names to config keys.
// A double underscore separates nesting levels:
// COURSEKIT_SITE__TOTAL_LECTURES -> site.total_lectures
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
