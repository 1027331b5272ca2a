package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for option files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported option file format")

// File is the on-disk shape of an option source
type File struct {
	Selected string       `toml:"selected" yaml:"selected" json:"selected"`
	Options  []FileOption `toml:"options" yaml:"options" json:"options"`
}

// FileOption is one option entry in a File
type FileOption struct {
	Text  string `toml:"text" yaml:"text" json:"text"`
	Value string `toml:"value" yaml:"value" json:"value"`
	Alias string `toml:"alias,omitempty" yaml:"alias,omitempty" json:"alias,omitempty"`
}

// DomainOptions converts the file entries in order
func (f *File) DomainOptions() []domain.Option {
	opts := make([]domain.Option, 0, len(f.Options))
	for _, o := range f.Options {
		opts = append(opts, domain.Option{Text: o.Text, Value: o.Value, Alias: o.Alias})
	}
	return opts
}

// LoadFile reads an option source, picking the decoder from the file extension
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option file: %w", err)
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data according to ext (".toml", ".yaml", ".yml" or ".json")
func Parse(data []byte, ext string) (*File, error) {
	var f File
	var err error

	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// validate rejects duplicate values, which would make Commit ambiguous
func (f *File) validate() error {
	seen := make(map[string]int, len(f.Options))
	for i, o := range f.Options {
		if o.Value == "" {
			continue
		}
		if j, ok := seen[o.Value]; ok {
			return fmt.Errorf("option %d duplicates value %q of option %d", i, o.Value, j)
		}
		seen[o.Value] = i
	}
	return nil
}

// NewStoreFromFile builds a MemoryStore seeded with the file's initial selection
func NewStoreFromFile(f *File, bus eventbus.EventBus) *MemoryStore {
	store := NewMemoryStore(f.DomainOptions(), bus)
	if f.Selected != "" && !store.Select(f.Selected) {
		log.Printf("Initial selection %q is not an option value, ignoring", f.Selected)
	}
	return store
}
