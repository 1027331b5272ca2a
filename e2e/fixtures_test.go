//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Values never appear on screen before a commit, so tests can look for them in the
// output to see what pick printed
const fruitOptions = `[[options]]
text = "Choose a fruit"
value = ""

[[options]]
text = "Apple"
value = "fruit-a"

[[options]]
text = "Banana"
value = "fruit-b"

[[options]]
text = "Cherry"
value = "fruit-c"

[[options]]
text = "Kiwi"
value = "fruit-k"
alias = "Chinese gooseberry"
`

// CreateTestWorkspace creates a temporary directory holding a config and an option file
func (tf *TUITestFramework) CreateTestWorkspace(extraConfig ...string) (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	if err := os.WriteFile(filepath.Join(tmpDir, "fruit.toml"), []byte(fruitOptions), 0644); err != nil {
		return "", fmt.Errorf("failed to write options: %w", err)
	}

	cfg := "options_file = \"fruit.toml\"\nlabel = \"Fruit\"\nlog_file = \"" +
		filepath.Join(tmpDir, "comboselect.log") + "\"\n"
	for _, extra := range extraConfig {
		cfg += extra + "\n"
	}
	if err := os.WriteFile(tf.ConfigPath(), []byte(cfg), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return tmpDir, nil
}

// ConfigPath is the config file inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, ".comboselect.toml")
}
