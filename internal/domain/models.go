package domain

import "fmt"

// Option is one entry of the authoritative option source
type Option struct {
	Text  string
	Value string
	Alias string // secondary match text, empty if none
}

// IsPlaceholder reports whether the option has no value and so can never be offered
func (o Option) IsPlaceholder() bool {
	return o.Value == ""
}

// ItemID identifies a candidate item within one menu build
type ItemID string

// NoItem is the zero ItemID
const NoItem ItemID = ""

// NoResultsID identifies the "no results" row. It is never a candidate.
const NoResultsID ItemID = "option-none"

// ItemIDAt returns the identifier of the candidate at index
func ItemIDAt(index int) ItemID {
	return ItemID(fmt.Sprintf("option-%d", index))
}

// CandidateItem is a rendered entry for one option
type CandidateItem struct {
	ID     ItemID
	Option Option
	Active bool
}

// MenuState is a snapshot of the visible candidates
type MenuState struct {
	Generation int
	Items      []CandidateItem
	ActiveID   ItemID
	NoResults  bool // true when the build matched nothing and the placeholder row is shown
}

// Count returns the number of real candidates
func (s MenuState) Count() int {
	return len(s.Items)
}

// IsEmpty reports whether nothing, not even the placeholder row, is rendered
func (s MenuState) IsEmpty() bool {
	return len(s.Items) == 0 && !s.NoResults
}
