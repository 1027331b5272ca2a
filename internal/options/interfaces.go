package options

import "comboselect/internal/domain"

// Source provides the candidate options in source order
type Source interface {
	AllOptions() []domain.Option
}

// Store is the authoritative option source behind a widget
type Store interface {
	Source
	FindByDisplayText(text string) (domain.Option, bool)
	Commit(value string)
	Selected() (domain.Option, bool)
}
