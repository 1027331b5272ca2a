package commands

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd builds the comboselect command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "comboselect",
		Short:         "Filterable dropdown picker for the terminal",
		Long:          "comboselect shows a list of options in a filterable combobox and prints the value you pick.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Quiet until a session opens the configured log file
			log.SetOutput(io.Discard)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (default ./"+configFileName+" or the user config)")
	flags.StringP("options", "o", "", "Option file (.toml, .yaml, .yml or .json)")
	flags.StringP("match", "m", "", "Matching policy: substring, prefix or fuzzy")
	flags.String("selected", "", "Initially selected value")

	rootCmd.AddCommand(
		newPickCmd(),
		newMatchCmd(),
		newListCmd(),
		newInitCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
