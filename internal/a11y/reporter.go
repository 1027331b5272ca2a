// Package a11y derives the live-region text announced to assistive technology.
package a11y

import (
	"fmt"

	"comboselect/internal/eventbus"
)

// StatusFor describes a menu of count candidates
func StatusFor(count int) string {
	if count == 0 {
		return "No results."
	}
	return fmt.Sprintf("%d results available.", count)
}

// Reporter keeps the current live-region text and announces changes on the bus
type Reporter struct {
	bus    eventbus.EventBus
	status string
}

// NewReporter creates a reporter. A nil bus disables announcements.
func NewReporter(bus eventbus.EventBus) *Reporter {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Reporter{bus: bus}
}

// Report updates the status for a rebuilt menu and returns it
func (r *Reporter) Report(count int) string {
	r.status = StatusFor(count)
	r.bus.Publish(eventbus.StatusChangedEvent{Status: r.status})
	return r.status
}

// Status returns the last reported text
func (r *Reporter) Status() string {
	return r.status
}
