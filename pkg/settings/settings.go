// Package settings manages persistent user settings for the ribtrace CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// DatasetPath is the routing dataset file to use when --dataset is not specified
	DatasetPath string `json:"dataset_path,omitempty"`

	// RedisAddr is the collector Redis instance to load routes from
	RedisAddr string `json:"redis_addr,omitempty"`

	// RedisDB is the Redis database number holding the routes table
	RedisDB int `json:"redis_db,omitempty"`

	// DefaultVRF overrides the built-in "default" VRF for traces
	DefaultVRF string `json:"default_vrf,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ribtrace_settings.json"
	}
	return filepath.Join(home, ".ribtrace", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetDefaultVRF returns the default VRF (with fallback)
func (s *Settings) GetDefaultVRF() string {
	if s.DefaultVRF != "" {
		return s.DefaultVRF
	}
	return "default"
}
