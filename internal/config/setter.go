package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SetValue parses value for key and writes it into the JSON config file
// at path, creating the file and its directory if needed. Other keys in
// the file are preserved.
func SetValue(path, key, value string) error {
	parsed, err := ParseValue(key, value)
	if err != nil {
		return err
	}

	k := koanf.New(".")
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	if err := k.Set(key, parsed); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if err := checkMerged(k); err != nil {
		return err
	}

	data, err := k.Marshal(json.Parser())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// checkMerged validates the file's values layered over the defaults so a
// bad value is rejected before it is written.
func checkMerged(file *koanf.Koanf) error {
	merged := koanf.New(".")
	for key, value := range GetDefaults() {
		if err := merged.Set(key, value); err != nil {
			return err
		}
	}
	if err := merged.Merge(file); err != nil {
		return err
	}

	var cfg Configuration
	if err := merged.Unmarshal("", &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
