package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"leapview/internal/eventbus"
)

// DefaultLabels is the label alphabet used when none is configured.
// Home-row and easy-reach keys come first.
const DefaultLabels = "sklyuiopnm,qwertzxcvbahdgjf;"

// ErrInvalidConfig is returned (wrapped) when a config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	Jump       JumpSettings `toml:"jump"`
	UISettings UISettings   `toml:"ui"`
}

// JumpSettings configures the jump-label motion
type JumpSettings struct {
	Enabled       bool   `toml:"enabled"`
	Labels        string `toml:"labels"`
	IgnoreCase    bool   `toml:"ignore_case"`
	Bidirectional bool   `toml:"bidirectional"`
	Dim           bool   `toml:"dim"`
	Colors        Colors `toml:"colors"`
}

// Colors are lipgloss color strings (ANSI numbers or hex)
type Colors struct {
	Match     string `toml:"match"`
	NextMatch string `toml:"next_match"`
	Label     string `toml:"label"`
	LabelText string `toml:"label_text"`
	Dim       string `toml:"dim"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowLineNumbers bool `toml:"show_line_numbers"`
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "leapview", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit path.
// An empty path selects DefaultPath.
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		logrus.Debugf("No config at %s, using defaults", cs.filePath)
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Fields missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the fields the engine and renderer rely on
func (c *Config) Validate() error {
	labels := []rune(c.Jump.Labels)
	if len(labels) == 0 {
		return fmt.Errorf("%w: jump.labels must not be empty", ErrInvalidConfig)
	}
	seen := make(map[rune]bool, len(labels))
	for _, r := range labels {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: jump.labels contains unprintable character %q", ErrInvalidConfig, r)
		}
		if seen[r] {
			return fmt.Errorf("%w: jump.labels repeats %q", ErrInvalidConfig, r)
		}
		seen[r] = true
	}
	if c.UISettings.TabWidth <= 0 {
		return fmt.Errorf("%w: ui.tab_width must be positive, got %d", ErrInvalidConfig, c.UISettings.TabWidth)
	}
	if c.UISettings.ScrollOff < 0 {
		return fmt.Errorf("%w: ui.scroll_off must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Jump: JumpSettings{
			Enabled:       true,
			Labels:        DefaultLabels,
			IgnoreCase:    false,
			Bidirectional: false,
			Dim:           true,
			Colors: Colors{
				Match:     "238",
				NextMatch: "214",
				Label:     "156",
				LabelText: "0",
				Dim:       "244",
			},
		},
		UISettings: UISettings{
			ShowLineNumbers: true,
			TabWidth:        4,
			ScrollOff:       3,
		},
	}
}
