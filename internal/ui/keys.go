package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"comboselect/internal/combobox"
)

// KeyMap holds the host-level bindings. Everything else is typed into the text box.
type KeyMap struct {
	Down   key.Binding
	Up     key.Binding
	Enter  key.Binding
	Space  key.Binding
	Escape key.Binding
	Tab    key.Binding
	Left   key.Binding
	Right  key.Binding
	Accept key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "open / next option")),
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous option")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select highlighted option")),
		Space:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select highlighted option")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close list")),
		Tab:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "leave the box")),
		Left:   key.NewBinding(key.WithKeys("left")),
		Right:  key.NewBinding(key.WithKeys("right")),
		Accept: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "accept selection and exit")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without selecting")),
	}
}

// ControllerKey maps a key message to the controller key it stands for
func (k KeyMap) ControllerKey(msg tea.KeyMsg) (combobox.Key, bool) {
	switch {
	case key.Matches(msg, k.Down):
		return combobox.KeyDown, true
	case key.Matches(msg, k.Up):
		return combobox.KeyUp, true
	case key.Matches(msg, k.Enter):
		return combobox.KeyEnter, true
	case msg.Type == tea.KeySpace, key.Matches(msg, k.Space):
		return combobox.KeySpace, true
	case key.Matches(msg, k.Escape):
		return combobox.KeyEscape, true
	case key.Matches(msg, k.Tab):
		return combobox.KeyTab, true
	case key.Matches(msg, k.Left):
		return combobox.KeyLeft, true
	case key.Matches(msg, k.Right):
		return combobox.KeyRight, true
	}
	return 0, false
}

// Bindings lists the documented bindings, in help order
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Enter, k.Space, k.Escape, k.Tab, k.Accept, k.Help, k.Quit}
}
