package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	"comboselect/internal/eventbus"
	"comboselect/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the options in a pager",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
	cmd.Flags().Bool("plain", false, "Write to stdout instead of the pager")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd, eventbus.NullBus{})
	if err != nil {
		return err
	}
	defer s.Close()

	selected, _ := s.store.Selected()
	var data [][]string
	for _, opt := range s.store.AllOptions() {
		mark := ""
		if opt.Value == selected.Value {
			mark = "*"
		}
		data = append(data, []string{mark, opt.Text, opt.Value, opt.Alias})
	}
	header := []string{"", "TEXT", "VALUE", "ALIAS"}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		renderTable(cmd.OutOrStdout(), header, data)
		return nil
	}

	var buf bytes.Buffer
	renderTable(&buf, header, data)
	return ui.NewPager(nil).Show(buf.String())
}
