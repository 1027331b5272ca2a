package options

import (
	"strings"
	"sync"

	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
)

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu       sync.RWMutex
	options  []domain.Option
	selected string
	bus      eventbus.EventBus
}

// NewMemoryStore creates a store over a copy of opts. A nil bus disables change notification.
func NewMemoryStore(opts []domain.Option, bus eventbus.EventBus) *MemoryStore {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	cp := make([]domain.Option, len(opts))
	copy(cp, opts)
	return &MemoryStore{
		options: cp,
		bus:     bus,
	}
}

// AllOptions returns every non-placeholder option in source order
func (s *MemoryStore) AllOptions() []domain.Option {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Option, 0, len(s.options))
	for _, opt := range s.options {
		if !opt.IsPlaceholder() {
			result = append(result, opt)
		}
	}
	return result
}

// FindByDisplayText returns the first option whose text equals text, ignoring case
func (s *MemoryStore) FindByDisplayText(text string) (domain.Option, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(text)
	for _, opt := range s.options {
		if strings.ToLower(opt.Text) == needle {
			return opt, true
		}
	}
	return domain.Option{}, false
}

// Commit sets the authoritative selection and notifies listeners.
// An unknown value clears the selection.
func (s *MemoryStore) Commit(value string) {
	s.mu.Lock()
	opt, ok := s.findByValue(value)
	if ok {
		s.selected = opt.Value
	} else {
		s.selected = ""
	}
	s.mu.Unlock()

	s.bus.Publish(eventbus.SelectionChangedEvent{
		Value: opt.Value,
		Text:  opt.Text,
	})
}

// Selected returns the authoritative selection, false when nothing is selected
func (s *MemoryStore) Selected() (domain.Option, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == "" {
		return domain.Option{}, false
	}
	return s.findByValue(s.selected)
}

// Select sets the initial selection without notifying listeners
func (s *MemoryStore) Select(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	opt, ok := s.findByValue(value)
	if !ok {
		return false
	}
	s.selected = opt.Value
	return true
}

// Len returns the number of options including placeholders
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.options)
}

// findByValue assumes the lock is held
func (s *MemoryStore) findByValue(value string) (domain.Option, bool) {
	if value == "" {
		return domain.Option{}, false
	}
	for _, opt := range s.options {
		if opt.Value == value {
			return opt, true
		}
	}
	return domain.Option{}, false
}
