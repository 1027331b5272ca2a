package combobox

import (
	"fmt"

	"comboselect/internal/eventbus"
	"comboselect/internal/matcher"
	"comboselect/internal/options"
)

type attachConfig struct {
	match     any
	matchName string
}

// AttachOption configures a widget at attach time
type AttachOption func(*attachConfig)

// WithMatcher overrides the matching policy. v must be a func(domain.Option, string) bool.
func WithMatcher(v any) AttachOption {
	return func(c *attachConfig) {
		c.match = v
	}
}

// WithMatcherName selects a built-in policy by name, see matcher.Named
func WithMatcherName(name string) AttachOption {
	return func(c *attachConfig) {
		c.matchName = name
	}
}

// Widget is an attached combobox. Detach releases every subscription it registered.
// Like Controller it belongs to the host's event goroutine; only OnChange
// listeners run elsewhere.
type Widget struct {
	*Controller

	bus      eventbus.EventBus
	subs     []func()
	detached bool
}

// Attach validates the configuration and binds a widget to store. bus must be
// the bus store publishes selection changes on; nil disables OnChange.
func Attach(store options.Store, bus eventbus.EventBus, opts ...AttachOption) (*Widget, error) {
	if store == nil {
		return nil, fmt.Errorf("attach: option store is required")
	}

	cfg := &attachConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	match, err := resolveMatcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("attach: %w", err)
	}

	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Widget{
		Controller: NewController(store, match, bus),
		bus:        bus,
	}, nil
}

func resolveMatcher(cfg *attachConfig) (matcher.Func, error) {
	if cfg.match != nil {
		return matcher.FromValue(cfg.match)
	}
	return matcher.Named(cfg.matchName)
}

// OnChange registers fn for value-change notifications. fn runs on a bus
// goroutine and sees committed values in commit order.
func (w *Widget) OnChange(fn func(value string)) func() {
	if w.detached {
		return func() {}
	}

	unsubscribe := w.bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionChangedEvent); ok {
			fn(ev.Value)
		}
	})
	w.subs = append(w.subs, unsubscribe)
	return unsubscribe
}

// Dispatch forwards to the controller until the widget is detached
func (w *Widget) Dispatch(ev Event) bool {
	if w.detached {
		return false
	}
	return w.Controller.Dispatch(ev)
}

// Detached reports whether Detach has run
func (w *Widget) Detached() bool {
	return w.detached
}

// Detach closes the menu and drops all subscriptions. It is safe to call more than once.
func (w *Widget) Detach() {
	if w.detached {
		return
	}
	w.detached = true

	for _, unsubscribe := range w.subs {
		unsubscribe()
	}
	w.subs = nil
	w.Controller.state = w.Controller.closeMenu(w.Controller.state)
}
