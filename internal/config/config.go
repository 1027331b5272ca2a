package config

import (
	"fmt"
	"os"
	"path/filepath"

	"comboselect/internal/eventbus"
	"comboselect/internal/matcher"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up in the working directory
const FileName = ".comboselect.toml"

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	OptionsFile string     `toml:"options_file"`
	Matcher     string     `toml:"matcher"`
	Label       string     `toml:"label"`
	Selected    string     `toml:"selected,omitempty"` // overrides the option file's initial selection
	LogFile     string     `toml:"log_file"`
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxVisible int  `toml:"max_visible"` // candidate rows shown before scrolling
	ShowStatus bool `toml:"show_status"` // render the live-region line
	Mouse      bool `toml:"mouse"`
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

// NewConfigService creates a config service for ~/.config/comboselect/config.toml
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "comboselect", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus makes the service publish load/save events on bus
func WithBus(cs ConfigService, bus eventbus.EventBus) ConfigService {
	if c, ok := cs.(*configService); ok {
		c.bus = bus
	}
	return cs
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, or the defaults if there is none
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:        cs.filePath,
			OptionsFile: cfg.OptionsFile,
		})
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

// LoadFromPath loads configuration from a specific path. Missing keys keep their defaults.
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

	// Relative paths are resolved next to the config
	if cfg.OptionsFile != "" && !filepath.IsAbs(cfg.OptionsFile) {
		cfg.OptionsFile = filepath.Join(filepath.Dir(path), cfg.OptionsFile)
	}
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(filepath.Dir(path), cfg.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

// Validate checks values a widget cannot recover from at attach time
func (c *Config) Validate() error {
	if _, err := matcher.Named(c.Matcher); err != nil {
		return err
	}
	if c.UISettings.MaxVisible < 1 {
		return fmt.Errorf("ui.max_visible must be at least 1, got %d", c.UISettings.MaxVisible)
	}
	return nil
}

// DefaultLogFile is comboselect.log under the user cache directory, or empty
// (logging off) when there is none
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "comboselect", "comboselect.log")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Matcher: matcher.PolicySubstring,
		Label:   "Select",
		LogFile: DefaultLogFile(),
		UISettings: UISettings{
			MaxVisible: 8,
			ShowStatus: true,
			Mouse:      true,
		},
	}
}
