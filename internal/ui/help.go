package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// Render generates help content with colors for the pager
func (r *HelpRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(10)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("comboselect Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keys"))
	help.WriteString("\n")
	for _, b := range r.keys.Bindings() {
		h := b.Help()
		help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Typing"))
	help.WriteString("\n")
	help.WriteString("  Any other key edits the text box and filters the list.\n")
	help.WriteString("  If the text already names an option, ↓ shows the whole list again.\n")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString("  Click the box or ▼ to open the list, click an option to select it,\n")
	help.WriteString("  click anywhere else to close it.")

	return help.String()
}

// Pager shows text in ov. With a program set, the terminal is handed over while it runs.
type Pager struct {
	program *tea.Program
}

// NewPager creates a pager. program may be nil when no Bubble Tea program is running.
func NewPager(program *tea.Program) *Pager {
	return &Pager{program: program}
}

// Show runs ov over content until the user quits it
func (p *Pager) Show(content string) error {
	if p.program != nil {
		// Release terminal control to run ov
		if err := p.program.ReleaseTerminal(); err != nil {
			return err
		}

		// Ensure terminal is restored even if ov fails
		defer func() {
			// Small delay to ensure ov has fully exited before restoring terminal
			time.Sleep(100 * time.Millisecond)
			_ = p.program.RestoreTerminal()
		}()
	}

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
