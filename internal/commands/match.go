package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"comboselect/internal/combobox"
	"comboselect/internal/eventbus"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <query>",
		Short: "Print the candidates a query would show",
		Args:  cobra.ExactArgs(1),
		RunE:  runMatch,
	}
}

func runMatch(cmd *cobra.Command, args []string) error {
	bus := eventbus.NullBus{}

	s, err := loadSession(cmd, bus)
	if err != nil {
		return err
	}
	defer s.Close()

	w, err := combobox.Attach(s.store, bus, combobox.WithMatcherName(s.cfg.Matcher))
	if err != nil {
		return err
	}
	defer w.Detach()

	w.Dispatch(combobox.TextChanged{Text: args[0]})

	out := cmd.OutOrStdout()
	menu := w.Menu()
	if !menu.NoResults {
		var data [][]string
		for _, item := range menu.Items {
			data = append(data, []string{string(item.ID), item.Option.Text, item.Option.Value})
		}
		renderTable(out, []string{"ID", "TEXT", "VALUE"}, data)
	}

	status := w.State().Status
	if status == "" {
		// Blank queries close the list without a rebuild
		status = "No query."
	}
	fmt.Fprintln(out, status)
	return nil
}

// renderTable prints rows as a borderless, left-aligned table
func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
