package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"comboselect/internal/config"
	"comboselect/internal/eventbus"
	"comboselect/internal/options"
)

const configFileName = config.FileName

// session is what every command needs: the effective config and the option store
type session struct {
	cfg      *config.Config
	store    *options.MemoryStore
	closeLog func()
}

// Close releases the log file
func (s *session) Close() {
	s.closeLog()
}

// loadConfig resolves the config from --config, the working directory, or the user config dir
func loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	switch {
	case path != "":
		cfg, err = config.WithBus(config.NewConfigServiceAt(path), bus).LoadFromPath(path)
	case fileExists(configFileName):
		cfg, err = config.WithBus(config.NewConfigServiceAt(configFileName), bus).Load()
	default:
		cfg, err = config.WithBus(config.NewConfigService(), bus).Load()
	}
	if err != nil {
		return nil, err
	}

	// Flags override the file
	if v, _ := cmd.Flags().GetString("options"); v != "" {
		cfg.OptionsFile = v
	}
	if v, _ := cmd.Flags().GetString("match"); v != "" {
		cfg.Matcher = v
	}
	if v, _ := cmd.Flags().GetString("selected"); v != "" {
		cfg.Selected = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSession loads config and options. Selection changes are published on bus.
func loadSession(cmd *cobra.Command, bus eventbus.EventBus) (*session, error) {
	cfg, err := loadConfig(cmd, bus)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, closeLog: setupLogging(cfg.LogFile)}
	if err := s.loadOptions(bus); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) loadOptions(bus eventbus.EventBus) error {
	cfg := s.cfg
	if cfg.OptionsFile == "" {
		return fmt.Errorf("no option file: pass --options or set options_file in %s", configFileName)
	}

	file, err := options.LoadFile(cfg.OptionsFile)
	if err != nil {
		return err
	}

	store := options.NewStoreFromFile(file, bus)
	if cfg.Selected != "" && !store.Select(cfg.Selected) {
		return fmt.Errorf("selected value %q is not in %s", cfg.Selected, cfg.OptionsFile)
	}
	log.Printf("Loaded %d options from %s", store.Len(), cfg.OptionsFile)

	s.store = store
	return nil
}

// setupLogging sends the standard logger to path and returns a func closing the file
func setupLogging(path string) func() {
	if path == "" {
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("Could not create log directory: %v", err)
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(io.Discard)
		logFile.Close()
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
