package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"comboselect/internal/combobox"
	"comboselect/internal/eventbus"
	"comboselect/internal/ui"
)

func newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick an option interactively",
		Long:  "Open the combobox. ctrl+s prints the selected value and exits, ctrl+c exits without printing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd)
		},
	}
	cmd.Flags().Bool("text", false, "Print the option text instead of its value")
	return cmd
}

func runPick(cmd *cobra.Command) error {
	// Terminate cleanly on SIGTERM; ctrl+c arrives as a key in raw mode
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

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

	w.OnChange(func(value string) {
		log.Printf("Committed value %q", value)
	})

	model := ui.NewModel(w, s.cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if s.cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Forward selection changes so the footer follows commits made elsewhere
	defer bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Printf("UI terminated")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	if !model.Accepted() {
		return nil
	}
	sel, ok := s.store.Selected()
	if !ok {
		return nil
	}

	out := sel.Value
	if asText, _ := cmd.Flags().GetBool("text"); asText {
		out = sel.Text
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
