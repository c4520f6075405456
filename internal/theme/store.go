package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type settings struct {
	Theme Mode `json:"theme"`
}

// Store persists the theme preference across sessions as a small JSON
// file in the user's config directory.
type Store struct {
	filePath string
}

// NewStore creates a store rooted at dir. An empty dir resolves to
// ~/.config/frontend-bank.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".config", "frontend-bank")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return &Store{filePath: filepath.Join(dir, "settings.json")}, nil
}

// Load reads the persisted preference, defaulting to Light when nothing
// usable has been saved yet.
func (s *Store) Load() Mode {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return Light
	}

	var cfg settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Light
	}
	if cfg.Theme != Dark && cfg.Theme != Light {
		return Light
	}
	return cfg.Theme
}

// Save writes the preference to disk.
func (s *Store) Save(m Mode) error {
	data, err := json.MarshalIndent(settings{Theme: m}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
