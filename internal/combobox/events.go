package combobox

import "comboselect/internal/domain"

// Key is a navigation or control key the controller understands
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyShift
)

var keyNames = map[Key]string{
	KeyDown:   "down",
	KeyUp:     "up",
	KeyEnter:  "enter",
	KeySpace:  "space",
	KeyEscape: "esc",
	KeyTab:    "tab",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyShift:  "shift",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is an input the rendering collaborator forwards to the controller
type Event interface {
	event()
}

// TextBoxActivated is a click or tap on the text box
type TextBoxActivated struct{}

// CaretClicked is a click on the dropdown affordance
type CaretClicked struct{}

// TextBoxFocused is the text box gaining focus
type TextBoxFocused struct{}

// TextChanged carries the text box contents after an edit
type TextChanged struct {
	Text string
}

// TextEdited records text the text box typed after the controller declined a
// key. The menu is left as it is.
type TextEdited struct {
	Text string
}

// KeyPressed is a navigation or control key
type KeyPressed struct {
	Key Key
}

// ItemClicked is a click on a rendered candidate
type ItemClicked struct {
	ID domain.ItemID
}

// NoResultsClicked is a click on the "no results" row
type NoResultsClicked struct{}

// OutsideClicked is a click anywhere outside the widget
type OutsideClicked struct{}

func (TextBoxActivated) event() {}
func (CaretClicked) event()     {}
func (TextBoxFocused) event()   {}
func (TextChanged) event()      {}
func (TextEdited) event()       {}
func (KeyPressed) event()       {}
func (ItemClicked) event()      {}
func (NoResultsClicked) event() {}
func (OutsideClicked) event()   {}
