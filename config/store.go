package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const DefaultWorksheet = "Sheet1"

var ErrNotConfigured = errors.New("google sheets sync is not configured")

// Store reads and writes the sync configuration at a single file path.
type Store struct {
	Path string
}

func NewStore(path string) Store {
	return Store{Path: path}
}

// DefaultPath is ~/.claude/google-sheets-config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "google-sheets-config.json"), nil
}

func (s Store) Load() (Config, error) {
	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("unable to stat config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(s.Path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("unable to read config file %s: %w", s.Path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config file %s: %w", s.Path, err)
	}
	return cfg, nil
}

func (s Store) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("credentials_path", cfg.CredentialsPath)
	v.Set("sheet_id", cfg.SheetID)
	v.Set("worksheet_name", cfg.WorksheetName)
	v.Set("enabled", cfg.Enabled)

	// viper picks the encoder from the extension
	if err := v.WriteConfigAs(s.Path); err != nil {
		return fmt.Errorf("unable to write config file %s: %w", s.Path, err)
	}
	return nil
}

// SetEnabled flips only the enabled flag. Nothing is written when the
// config file does not exist.
func (s Store) SetEnabled(enabled bool) (Config, error) {
	cfg, err := s.Load()
	if err != nil {
		return Config{}, err
	}

	cfg.Enabled = enabled
	if err := s.Save(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Guidance is printed whenever the config file is missing.
func (s Store) Guidance(program string) string {
	return fmt.Sprintf("Configuration not found: %s\n   Run setup: %s --setup\n", s.Path, program)
}
