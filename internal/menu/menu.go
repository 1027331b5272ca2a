package menu

import (
	"errors"
	"fmt"

	"comboselect/internal/domain"
	"comboselect/internal/matcher"
	"comboselect/internal/options"
)

// ErrUnknownItem is returned by SetActive for an id outside the current build
var ErrUnknownItem = errors.New("item is not in the current menu")

// Model holds the visible candidate items and the active item
type Model struct {
	source     options.Source
	match      matcher.Func
	items      []domain.CandidateItem
	activeID   domain.ItemID
	noResults  bool
	generation int
}

// New creates an empty menu over source. A nil matcher selects matcher.Substring.
func New(source options.Source, match matcher.Func) *Model {
	if match == nil {
		match = matcher.Substring
	}
	return &Model{
		source: source,
		match:  match,
	}
}

// BuildAll replaces the menu with every candidate option
func (m *Model) BuildAll() domain.MenuState {
	m.rebuild(m.source.AllOptions())
	return m.State()
}

// BuildMatching replaces the menu with the options matching query, in source order
func (m *Model) BuildMatching(query string) domain.MenuState {
	matches := m.Matching(query)
	m.rebuild(matches)
	m.noResults = len(matches) == 0
	return m.State()
}

// Matching returns the options a BuildMatching(query) would show, without touching the menu
func (m *Model) Matching(query string) []domain.Option {
	var matches []domain.Option
	for _, opt := range m.source.AllOptions() {
		if m.match(opt, query) {
			matches = append(matches, opt)
		}
	}
	return matches
}

// Clear empties the menu
func (m *Model) Clear() {
	m.items = nil
	m.activeID = domain.NoItem
	m.noResults = false
	m.generation++
}

func (m *Model) rebuild(opts []domain.Option) {
	m.generation++
	m.activeID = domain.NoItem
	m.noResults = false
	m.items = make([]domain.CandidateItem, len(opts))
	for i, opt := range opts {
		m.items[i] = domain.CandidateItem{
			ID:     domain.ItemIDAt(i),
			Option: opt,
		}
	}
}

// SetActive highlights id and un-highlights the previous active item.
// The "no results" row is ignored.
func (m *Model) SetActive(id domain.ItemID) error {
	if id == domain.NoResultsID {
		return nil
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	if prev := m.indexOf(m.activeID); prev >= 0 {
		m.items[prev].Active = false
	}
	m.items[idx].Active = true
	m.activeID = id
	return nil
}

// ActiveID returns the highlighted item, NoItem if none
func (m *Model) ActiveID() domain.ItemID {
	return m.activeID
}

// Item returns the candidate with the given id
func (m *Model) Item(id domain.ItemID) (domain.CandidateItem, bool) {
	if idx := m.indexOf(id); idx >= 0 {
		return m.items[idx], true
	}
	return domain.CandidateItem{}, false
}

// FirstItem returns the first candidate
func (m *Model) FirstItem() (domain.ItemID, bool) {
	if len(m.items) == 0 {
		return domain.NoItem, false
	}
	return m.items[0].ID, true
}

// NextItem returns the candidate after id. There is no wraparound.
func (m *Model) NextItem(id domain.ItemID) (domain.ItemID, bool) {
	idx := m.indexOf(id)
	if idx < 0 || idx+1 >= len(m.items) {
		return domain.NoItem, false
	}
	return m.items[idx+1].ID, true
}

// PreviousItem returns the candidate before id. There is no wraparound.
func (m *Model) PreviousItem(id domain.ItemID) (domain.ItemID, bool) {
	idx := m.indexOf(id)
	if idx <= 0 {
		return domain.NoItem, false
	}
	return m.items[idx-1].ID, true
}

// Len returns the number of real candidates
func (m *Model) Len() int {
	return len(m.items)
}

// NoResults reports whether the placeholder row is shown
func (m *Model) NoResults() bool {
	return m.noResults
}

// Generation increases on every rebuild or clear
func (m *Model) Generation() int {
	return m.generation
}

// State returns a copy of the menu
func (m *Model) State() domain.MenuState {
	items := make([]domain.CandidateItem, len(m.items))
	copy(items, m.items)
	return domain.MenuState{
		Generation: m.generation,
		Items:      items,
		ActiveID:   m.activeID,
		NoResults:  m.noResults,
	}
}

func (m *Model) indexOf(id domain.ItemID) int {
	if id == domain.NoItem {
		return -1
	}
	for i, item := range m.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
