package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"comboselect/internal/config"
	"comboselect/internal/options"
)

const sampleOptionsFile = "options.toml"

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and a sample option file",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = configFileName
	}
	force, _ := cmd.Flags().GetBool("force")

	if fileExists(path) && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	cfg := config.DefaultConfig()
	cfg.OptionsFile = sampleOptionsFile
	if err := config.NewConfigServiceAt(path).Save(cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

	optsPath := filepath.Join(filepath.Dir(path), sampleOptionsFile)
	if fileExists(optsPath) {
		return nil
	}
	if err := writeSampleOptions(optsPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", optsPath)
	return nil
}

func writeSampleOptions(path string) error {
	sample := options.File{
		Options: []options.FileOption{
			{Text: "Choose a fruit", Value: ""},
			{Text: "Apple", Value: "apple"},
			{Text: "Banana", Value: "banana"},
			{Text: "Cherry", Value: "cherry"},
			{Text: "Kiwi", Value: "kiwi", Alias: "Chinese gooseberry"},
		},
	}

	data, err := toml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write option file: %w", err)
	}
	return nil
}
