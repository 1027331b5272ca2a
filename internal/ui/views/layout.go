package views

// HitKind classifies a mouse position
type HitKind int

const (
	HitOutside HitKind = iota
	HitTextBox
	HitCaret
	HitItem
	HitNoResults
)

// Hit is the result of a hit test. Index is the candidate index for HitItem.
type Hit struct {
	Kind  HitKind
	Index int
}

// Layout records where the last render put each part, in screen cells
type Layout struct {
	TextBoxRow   int
	TextBoxStart int
	TextBoxEnd   int // exclusive
	CaretCol     int
	FirstItemRow int
	Rows         int // rendered menu rows
	Offset       int // index of the first rendered candidate
	NoResults    bool
}

// HitTest maps a screen cell to the part of the widget under it
func (l Layout) HitTest(x, y int) Hit {
	switch {
	case y == l.TextBoxRow && x >= l.TextBoxStart && x < l.TextBoxEnd:
		return Hit{Kind: HitTextBox}
	case y == l.TextBoxRow && x == l.CaretCol:
		return Hit{Kind: HitCaret}
	case l.Rows > 0 && y >= l.FirstItemRow && y < l.FirstItemRow+l.Rows &&
		x >= l.TextBoxStart && x < l.TextBoxEnd:
		if l.NoResults {
			return Hit{Kind: HitNoResults}
		}
		return Hit{Kind: HitItem, Index: l.Offset + y - l.FirstItemRow}
	default:
		return Hit{Kind: HitOutside}
	}
}
