package combobox

import (
	"log"
	"strings"

	"comboselect/internal/a11y"
	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
	"comboselect/internal/matcher"
	"comboselect/internal/menu"
	"comboselect/internal/options"
)

// Controller is the combobox state machine. It is not safe for concurrent use;
// the host delivers events one at a time.
type Controller struct {
	store    options.Store
	menu     *menu.Model
	reporter *a11y.Reporter
	bus      eventbus.EventBus
	state    WidgetState
}

// NewController wires a controller over store. The text box starts with the
// text of the current selection, if any.
func NewController(store options.Store, match matcher.Func, bus eventbus.EventBus) *Controller {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	c := &Controller{
		store:    store,
		menu:     menu.New(store, match),
		reporter: a11y.NewReporter(bus),
		bus:      bus,
	}
	if opt, ok := store.Selected(); ok {
		c.state.Query = opt.Text
	}
	return c
}

// State returns the current widget state
func (c *Controller) State() WidgetState {
	return c.state
}

// Menu returns a snapshot of the visible candidates
func (c *Controller) Menu() domain.MenuState {
	return c.menu.State()
}

// Selected returns the authoritative selection from the store
func (c *Controller) Selected() (domain.Option, bool) {
	return c.store.Selected()
}

// Dispatch applies one event. It reports false when the host should let the
// text box handle the key itself.
func (c *Controller) Dispatch(ev Event) bool {
	next, consumed := c.transition(c.state, ev)
	c.state = next
	return consumed
}

func (c *Controller) transition(s WidgetState, ev Event) (WidgetState, bool) {
	switch ev := ev.(type) {
	case TextBoxActivated:
		return c.activate(s), true
	case CaretClicked:
		s = c.activate(s)
		s.Focus = FocusTextBox
		return s, true
	case TextBoxFocused:
		s.Focused = true
		return s, true
	case TextChanged:
		return c.typed(s, ev.Text), true
	case TextEdited:
		s.Query = ev.Text
		return s, true
	case KeyPressed:
		return c.key(s, ev.Key)
	case ItemClicked:
		return c.clickItem(s, ev.ID), true
	case NoResultsClicked:
		return s, true
	case OutsideClicked:
		s = c.close(s)
		s.Focused = false
		return s, true
	default:
		log.Printf("combobox: ignoring unknown event %T", ev)
		return s, false
	}
}

// activate opens the full list, as on a click on the text box
func (c *Controller) activate(s WidgetState) WidgetState {
	s = c.rebuilt(s, c.menu.BuildAll())
	s.Open = true
	s.Focused = true
	s.Focus = FocusTextBox
	return s
}

// typed filters on the new text, or closes when it is blank
func (c *Controller) typed(s WidgetState, text string) WidgetState {
	if text == s.Query {
		return s
	}
	s.Query = text
	s.Focus = FocusTextBox

	query := strings.TrimSpace(text)
	if query == "" {
		return c.close(s)
	}

	s = c.rebuilt(s, c.menu.BuildMatching(query))
	s.Open = true
	return s
}

func (c *Controller) key(s WidgetState, k Key) (WidgetState, bool) {
	switch k {
	case KeyDown:
		return c.down(s), true
	case KeyUp:
		return c.up(s), true
	case KeyEnter:
		if s.Open && s.HasActive() {
			return c.commitActive(s), true
		}
		return s, true
	case KeySpace:
		if s.Open && s.HasActive() {
			return c.commitActive(s), true
		}
		// Let the text box type the space
		return s, false
	case KeyEscape:
		if !s.Open {
			return s, true
		}
		s = c.close(s)
		s.Focus = FocusTextBox
		return s, true
	case KeyTab:
		s = c.close(s)
		s.Focused = false
		return s, true
	default:
		// Cursor movement belongs to the text box
		return s, false
	}
}

func (c *Controller) down(s WidgetState) WidgetState {
	if !s.Open {
		return c.openHighlighted(s)
	}
	if !s.HasActive() {
		if first, ok := c.menu.FirstItem(); ok {
			return c.highlight(s, first)
		}
		return s
	}
	if next, ok := c.menu.NextItem(s.ActiveID); ok {
		return c.highlight(s, next)
	}
	return s
}

// openHighlighted opens from the text box with the first item highlighted.
// Text that already names an option shows the whole list so a user with a
// valid selection can browse again without retyping.
func (c *Controller) openHighlighted(s WidgetState) WidgetState {
	_, named := c.store.FindByDisplayText(s.Query)
	showAll := s.Query == "" || named

	var count int
	if showAll {
		count = len(c.store.AllOptions())
	} else {
		count = len(c.menu.Matching(s.Query))
	}
	if count == 0 {
		return s
	}

	var built domain.MenuState
	if showAll {
		built = c.menu.BuildAll()
	} else {
		built = c.menu.BuildMatching(s.Query)
	}
	s = c.rebuilt(s, built)
	s.Open = true

	first, _ := c.menu.FirstItem()
	return c.highlight(s, first)
}

func (c *Controller) up(s WidgetState) WidgetState {
	if !s.Open || !s.HasActive() {
		return s
	}
	if prev, ok := c.menu.PreviousItem(s.ActiveID); ok {
		return c.highlight(s, prev)
	}
	s = c.close(s)
	s.Focus = FocusTextBox
	return s
}

func (c *Controller) clickItem(s WidgetState, id domain.ItemID) WidgetState {
	item, ok := c.menu.Item(id)
	if !ok {
		return s
	}
	return c.commit(s, item.Option)
}

func (c *Controller) commitActive(s WidgetState) WidgetState {
	item, ok := c.menu.Item(s.ActiveID)
	if !ok {
		return s
	}
	return c.commit(s, item.Option)
}

// commit sets the authoritative value and closes with focus on the text box
func (c *Controller) commit(s WidgetState, opt domain.Option) WidgetState {
	c.store.Commit(opt.Value)
	if selected, ok := c.store.Selected(); ok {
		s.Query = selected.Text
	} else {
		s.Query = ""
	}

	s = c.closeMenu(s)
	s.Focus = FocusTextBox
	s.Focused = true
	c.bus.Publish(eventbus.WidgetClosedEvent{Committed: true})
	return s
}

func (c *Controller) highlight(s WidgetState, id domain.ItemID) WidgetState {
	if err := c.menu.SetActive(id); err != nil {
		log.Printf("combobox: highlight %s: %v", id, err)
		return s
	}
	s.ActiveID = id
	s.Focus = FocusMenu
	return s
}

func (c *Controller) rebuilt(s WidgetState, built domain.MenuState) WidgetState {
	s.ActiveID = domain.NoItem
	s.Status = c.reporter.Report(built.Count())
	c.bus.Publish(eventbus.MenuRebuiltEvent{Generation: built.Generation, Count: built.Count()})
	return s
}

// close hides the menu without committing
func (c *Controller) close(s WidgetState) WidgetState {
	wasOpen := s.Open
	s = c.closeMenu(s)
	if wasOpen {
		c.bus.Publish(eventbus.WidgetClosedEvent{})
	}
	return s
}

func (c *Controller) closeMenu(s WidgetState) WidgetState {
	c.menu.Clear()
	s.Open = false
	s.ActiveID = domain.NoItem
	return s
}
