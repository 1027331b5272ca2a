package eventbus

import (
	"comboselect/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged = domain.EventSelectionChanged
	EventMenuRebuilt      = domain.EventMenuRebuilt
	EventStatusChanged    = domain.EventStatusChanged
	EventWidgetClosed     = domain.EventWidgetClosed
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type MenuRebuiltEvent = domain.MenuRebuiltEvent
type StatusChangedEvent = domain.StatusChangedEvent
type WidgetClosedEvent = domain.WidgetClosedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// Each subscription drains its own queue, so a handler sees events in publish
// order and a slow handler only delays itself.
type subscription struct {
	id      uint64
	handler EventHandler
	queue   chan DomainEvent
	done    chan struct{}
}

func (s *subscription) run(quit <-chan struct{}) {
	for {
		select {
		case event := <-s.queue:
			s.call(event)
		case <-s.done:
			return
		case <-quit:
			return
		}
	}
}

func (s *subscription) call(event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	s.handler(event)
}

func (s *subscription) deliver(event DomainEvent) {
	select {
	case s.queue <- event:
	case <-s.done:
	default:
		log.Printf("Subscriber %d queue full, dropping event: %v", s.id, event.Type())
	}
}

// Bus is the asynchronous EventBus implementation. Publish never waits for handlers.
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]*subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() *Bus {
	b := &Bus{
		handlers:  make(map[EventType][]*subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *Bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventStatusChanged, EventMenuRebuilt:
		// Too frequent to log, one per keystroke
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function, safe to call more than once
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	sub := &subscription{
		id:      id,
		handler: handler,
		queue:   make(chan DomainEvent, 256),
		done:    make(chan struct{}),
	}
	b.handlers[eventType] = append(b.handlers[eventType], sub)
	go sub.run(b.quit)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				close(s.done)
				break
			}
		}
		if len(b.handlers[eventType]) == 0 {
			delete(b.handlers, eventType)
		}
	}
}

// HandlerCount returns the number of live subscriptions for an event type
func (b *Bus) HandlerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// Close stops the dispatcher. Pending events are discarded.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]*subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				s.deliver(event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// NullBus drops every event
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}

func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() { return func() {} }
