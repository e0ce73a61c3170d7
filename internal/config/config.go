package config

import (
	"fmt"
	"os"
	"path/filepath"

	serr "peruse/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// A configuration source is mandatory: the browser refuses to start
// without one, so that page size and editor choice are always explicit.
type Config struct {
	Browser struct {
		PageSize   int  `yaml:"page_size"`   // Entries per page (1-100)
		ShowHidden bool `yaml:"show_hidden"` // Include dotfiles in listings
	} `yaml:"browser"`
	Editor struct {
		Command string `yaml:"command"` // Editor program invoked with the file path
		Elevate string `yaml:"elevate"` // Privilege escalation prefix for elevated edits
	} `yaml:"editor"`
	Theme struct {
		Name string `yaml:"name"` // Theme name (default, dark, light, monochrome)
	} `yaml:"theme"`
}

// DefaultPath returns the default configuration file location
// (~/.config/peruse/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "peruse", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, serr.NewConfigError("cannot resolve config path", "", serr.ConfigNotFound, err)
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// A missing file is a fatal condition for the caller: the interactive
// loop must not start on invented defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewConfigError("configuration file not found (run 'peruse init')", path, serr.ConfigNotFound, err)
		}
		return nil, serr.NewConfigError("error reading config file", path, serr.InvalidConfig, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, serr.NewConfigError("error parsing config file", path, serr.InvalidConfig, err)
	}

	// Merge the loaded config with defaults
	cfg := defaultConfig()
	if tempCfg.Browser.PageSize != 0 {
		cfg.Browser.PageSize = tempCfg.Browser.PageSize
	}
	cfg.Browser.ShowHidden = tempCfg.Browser.ShowHidden
	if tempCfg.Editor.Command != "" {
		cfg.Editor.Command = tempCfg.Editor.Command
	}
	if tempCfg.Editor.Elevate != "" {
		cfg.Editor.Elevate = tempCfg.Editor.Elevate
	}
	if tempCfg.Theme.Name != "" {
		cfg.Theme.Name = tempCfg.Theme.Name
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the baseline configuration merged under a loaded file.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Browser.PageSize = 20
	cfg.Browser.ShowHidden = false
	cfg.Editor.Command = "vi"
	cfg.Editor.Elevate = "sudo"
	cfg.Theme.Name = "default"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return serr.NewConfigError("nil config", "", serr.InvalidConfig, nil)
	}

	if c.Browser.PageSize < 1 || c.Browser.PageSize > 100 {
		return serr.NewConfigError(
			fmt.Sprintf("page_size must be between 1 and 100, got %d", c.Browser.PageSize),
			"browser.page_size", serr.InvalidConfig, nil)
	}

	if c.Editor.Command == "" {
		return serr.NewConfigError("editor command is required", "editor.command", serr.InvalidConfig, nil)
	}

	if c.Editor.Elevate == "" {
		return serr.NewConfigError("elevate command is required", "editor.elevate", serr.InvalidConfig, nil)
	}

	return nil
}

// GetTheme returns a predefined theme palette by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"dir":      "39",  // Blue
			"comment":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"muted":    "245", // Grey
			"emphasis": "212", // Light Pink
		},
		"dark": {
			"primary":  "105", // Dark Blue
			"dir":      "33",  // Dark Blue
			"comment":  "78",  // Dark Green
			"warning":  "214", // Dark Yellow
			"error":    "160", // Dark Red
			"muted":    "241", // Medium Grey
			"emphasis": "147", // Light Blue
		},
		"light": {
			"primary":  "135", // Light Purple
			"dir":      "117", // Light Blue
			"comment":  "150", // Light Green
			"warning":  "222", // Light Yellow
			"error":    "210", // Light Red
			"muted":    "248", // Grey
			"emphasis": "219", // Very Light Pink
		},
		"monochrome": {
			"primary":  "245", // Light Grey
			"dir":      "252", // White
			"comment":  "248", // Grey
			"warning":  "241", // Medium Grey
			"error":    "232", // Black
			"muted":    "241", // Medium Grey
			"emphasis": "255", // Bright White
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
