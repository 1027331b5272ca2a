package combobox

import "comboselect/internal/domain"

// Focus says which part of the widget receives keyboard input
type Focus int

const (
	FocusTextBox Focus = iota
	FocusMenu
)

func (f Focus) String() string {
	if f == FocusMenu {
		return "menu"
	}
	return "textbox"
}

// WidgetState is the controller's owned state. ActiveID is set only while Open.
type WidgetState struct {
	Open     bool
	ActiveID domain.ItemID
	Query    string // text box contents
	Focused  bool   // text box shows active styling
	Focus    Focus
	Status   string // live-region text
}

// HasActive reports whether an item is highlighted
func (s WidgetState) HasActive() bool {
	return s.ActiveID != domain.NoItem
}
