package views

import (
	"strings"

	"comboselect/internal/combobox"
	"comboselect/internal/domain"
	"github.com/mattn/go-runewidth"
)

// ViewData is everything the renderer needs for one frame
type ViewData struct {
	Title      string
	Label      string
	Input      string // rendered text input
	State      combobox.WidgetState
	Menu       domain.MenuState
	Offset     int
	MaxVisible int
	BoxWidth   int
	ShowStatus bool
	Selected   string
	Message    string
	IsError    bool
	Footer     string
}

// Renderer draws the widget
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render returns the frame and where its parts landed
func (r *Renderer) Render(d ViewData) (string, Layout) {
	var b strings.Builder

	// Row 0: title and label
	b.WriteString(r.styles.Title.Render(d.Title))
	if d.Label != "" {
		b.WriteString("  ")
		b.WriteString(r.styles.Label.Render(d.Label))
	}
	b.WriteString("\n")

	// Row 1: text box and caret
	boxStyle := r.styles.TextBox
	if d.State.Focused {
		boxStyle = r.styles.TextBoxFocus
	}
	b.WriteString(boxStyle.Width(d.BoxWidth).MaxWidth(d.BoxWidth).Render(d.Input))
	b.WriteString(" ")
	if d.State.Open {
		b.WriteString(r.styles.CaretOpen.Render("▲"))
	} else {
		b.WriteString(r.styles.Caret.Render("▼"))
	}
	b.WriteString("\n")

	layout := Layout{
		TextBoxRow:   PadTop + 1,
		TextBoxStart: PadLeft,
		TextBoxEnd:   PadLeft + d.BoxWidth,
		CaretCol:     PadLeft + d.BoxWidth + 1,
		FirstItemRow: PadTop + 2,
		Offset:       d.Offset,
		NoResults:    d.Menu.NoResults,
	}

	// Candidate rows
	if d.State.Open {
		rows := r.renderMenu(d)
		layout.Rows = len(rows)
		for _, row := range rows {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if d.ShowStatus && d.State.Status != "" {
		b.WriteString(r.styles.Status.Render(d.State.Status))
		b.WriteString("\n")
	}
	if d.Selected != "" {
		b.WriteString(r.styles.Selected.Render("Selected: " + d.Selected))
		b.WriteString("\n")
	}
	if d.Message != "" {
		style := r.styles.Status
		if d.IsError {
			style = r.styles.Error
		}
		b.WriteString(style.Render(d.Message))
		b.WriteString("\n")
	}
	if d.Footer != "" {
		b.WriteString(r.styles.Help.Render(d.Footer))
	}

	return r.styles.Main.Render(b.String()), layout
}

func (r *Renderer) renderMenu(d ViewData) []string {
	if d.Menu.NoResults {
		return []string{r.styles.ItemEmpty.Render(fit("  No results", d.BoxWidth))}
	}

	items := d.Menu.Items
	end := d.Offset + d.MaxVisible
	if end > len(items) {
		end = len(items)
	}

	rows := make([]string, 0, end-d.Offset)
	for i := d.Offset; i < end; i++ {
		item := items[i]
		prefix := "  "
		style := r.styles.Item
		if item.Active {
			prefix = "› "
			style = r.styles.ItemActive
		}
		row := style.Render(fit(prefix+item.Option.Text, d.BoxWidth))

		// Scroll hints sit right of the list so row positions stay fixed
		switch {
		case i == d.Offset && d.Offset > 0:
			row += r.styles.Scroll.Render(" ↑")
		case i == end-1 && end < len(items):
			row += r.styles.Scroll.Render(" ↓")
		}
		rows = append(rows, row)
	}
	return rows
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}
