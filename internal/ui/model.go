package ui

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"comboselect/internal/combobox"
	"comboselect/internal/config"
	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
	"comboselect/internal/ui/views"
)

const (
	minBoxWidth = 20
	maxBoxWidth = 48
)

// Model is the Bubble Tea host for one combobox widget
type Model struct {
	widget   *combobox.Widget
	cfg      *config.Config
	input    textinput.Model
	keys     KeyMap
	renderer *views.Renderer
	help     *HelpRenderer
	program  *tea.Program

	layout     views.Layout
	offset     int
	generation int
	width      int
	height     int
	boxWidth   int

	selected    string
	message     string
	isError     bool
	accepted    bool
	inPagerMode bool
	e2e         bool
}

// NewModel creates the UI around an attached widget
func NewModel(w *combobox.Widget, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Type to filter"
	ti.SetValue(w.State().Query)
	ti.Focus()

	keys := DefaultKeyMap()
	m := &Model{
		widget:   w,
		cfg:      cfg,
		input:    ti,
		keys:     keys,
		renderer: views.NewRenderer(views.NewStyles()),
		help:     NewHelpRenderer(keys),
		boxWidth: minBoxWidth + 10,
		e2e:      os.Getenv("COMBOSELECT_E2E_TEST") == "1",
	}
	m.input.Width = m.boxWidth - 1
	m.widget.Dispatch(combobox.TextBoxFocused{})
	m.refreshSelected()
	return m
}

// SetProgram sets the program reference used to hand the terminal to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Accepted reports whether the user left with ctrl+s rather than quitting
func (m *Model) Accepted() bool {
	return m.accepted
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.inPagerMode || !m.cfg.UISettings.Mouse {
			return m, nil
		}
		return m.handleMouse(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Help failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m, m.fetchHelpPager(m.help.Render())
	}

	m.message = ""

	// A key on a blurred box brings focus back first
	if !m.widget.State().Focused {
		m.widget.Dispatch(combobox.TextBoxFocused{})
		m.sync()
	}

	declined := false
	if k, ok := m.keys.ControllerKey(msg); ok {
		if m.widget.Dispatch(combobox.KeyPressed{Key: k}) {
			m.sync()
			return m, nil
		}
		declined = true
	}

	// Not a control key, or the controller left it to the text box.
	// A declined control key only types; it never refilters.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		if declined {
			m.widget.Dispatch(combobox.TextEdited{Text: after})
		} else {
			m.widget.Dispatch(combobox.TextChanged{Text: after})
		}
	}
	m.sync()
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	hit := m.layout.HitTest(msg.X, msg.Y)
	switch hit.Kind {
	case views.HitTextBox:
		m.widget.Dispatch(combobox.TextBoxActivated{})
	case views.HitCaret:
		m.widget.Dispatch(combobox.CaretClicked{})
	case views.HitItem:
		items := m.widget.Menu().Items
		if hit.Index >= 0 && hit.Index < len(items) {
			m.widget.Dispatch(combobox.ItemClicked{ID: items[hit.Index].ID})
		}
	case views.HitNoResults:
		m.widget.Dispatch(combobox.NoResultsClicked{})
	default:
		m.widget.Dispatch(combobox.OutsideClicked{})
	}
	m.sync()
	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	if e, ok := event.(eventbus.SelectionChangedEvent); ok {
		// Read the store, not the payload
		m.refreshSelected()
		log.Printf("Selection changed to %q", e.Value)
	}
}

// refreshSelected takes the footer selection from the store
func (m *Model) refreshSelected() {
	opt, ok := m.widget.Selected()
	if !ok || opt.Value == "" {
		m.selected = ""
		return
	}
	m.selected = fmt.Sprintf("%s (%s)", opt.Text, opt.Value)
}

// sync copies controller state into the text input and keeps the active row visible
func (m *Model) sync() {
	st := m.widget.State()
	if m.input.Value() != st.Query {
		m.input.SetValue(st.Query)
		m.input.CursorEnd()
	}
	if st.Focused {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.refreshSelected()

	menu := m.widget.Menu()
	if menu.Generation != m.generation {
		m.generation = menu.Generation
		m.offset = 0
	}
	m.ensureActiveVisible(menu)
}

func (m *Model) ensureActiveVisible(menu domain.MenuState) {
	maxVisible := m.cfg.UISettings.MaxVisible
	idx := -1
	for i, item := range menu.Items {
		if item.ID == menu.ActiveID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if idx < m.offset {
		m.offset = idx
	}
	if idx >= m.offset+maxVisible {
		m.offset = idx - maxVisible + 1
	}
}

func (m *Model) resize() {
	w := m.width - views.PadLeft*2 - 4
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	if w < minBoxWidth {
		w = minBoxWidth
	}
	m.boxWidth = w
	m.input.Width = w - 1
}

func (m *Model) setError(msg string) {
	m.message = msg
	m.isError = true
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewPager(m.program).Show(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	footer := "F1 help • ctrl+s accept • ctrl+c quit"
	if m.e2e {
		footer += " __READY__"
	}

	out, layout := m.renderer.Render(views.ViewData{
		Title:      "comboselect",
		Label:      m.cfg.Label,
		Input:      m.input.View(),
		State:      m.widget.State(),
		Menu:       m.widget.Menu(),
		Offset:     m.offset,
		MaxVisible: m.cfg.UISettings.MaxVisible,
		BoxWidth:   m.boxWidth,
		ShowStatus: m.cfg.UISettings.ShowStatus,
		Selected:   m.selected,
		Message:    m.message,
		IsError:    m.isError,
		Footer:     footer,
	})
	m.layout = layout
	return out
}
