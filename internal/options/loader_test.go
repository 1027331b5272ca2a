package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlFruit = `
selected = "b"

[[options]]
text = "Pick a fruit"
value = ""

[[options]]
text = "Apple"
value = "a"

[[options]]
text = "Banana"
value = "b"
alias = "plantain"
`

const yamlFruit = `
selected: a
options:
  - text: Apple
    value: a
  - text: Banana
    value: b
    alias: plantain
`

const jsonFruit = `{"options":[{"text":"Apple","value":"a"},{"text":"Banana","value":"b"}]}`

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		data     string
		selected string
		count    int
	}{
		{name: "toml", ext: ".toml", data: tomlFruit, selected: "b", count: 3},
		{name: "yaml", ext: ".yaml", data: yamlFruit, selected: "a", count: 2},
		{name: "yml", ext: ".YML", data: yamlFruit, selected: "a", count: 2},
		{name: "json", ext: ".json", data: jsonFruit, selected: "", count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data), tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.selected, f.Selected)
			assert.Len(t, f.Options, tt.count)
		})
	}
}

func TestParseKeepsAlias(t *testing.T) {
	f, err := Parse([]byte(tomlFruit), ".toml")
	require.NoError(t, err)

	opts := f.DomainOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, "plantain", opts[2].Alias)
	assert.True(t, opts[0].IsPlaceholder())
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse([]byte("x"), ".ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseRejectsDuplicateValues(t *testing.T) {
	_, err := Parse([]byte(`{"options":[{"text":"A","value":"x"},{"text":"B","value":"x"}]}`), ".json")
	assert.Error(t, err)
}

func TestLoadFileAndSeedSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlFruit), 0644))

	f, err := LoadFile(path)
	require.NoError(t, err)

	store := NewStoreFromFile(f, nil)
	opt, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "Banana", opt.Text)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
