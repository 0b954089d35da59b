package events

import (
	"context"
	"sync"
)

// MockPublisher is a Publisher for tests that records every published event
type MockPublisher struct {
	mu     sync.RWMutex
	events []Event
	err    error
}

// NewMockPublisher creates a new MockPublisher instance
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		events: make([]Event, 0),
	}
}

// FailWith makes every following Publish call return err without recording
func (m *MockPublisher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *MockPublisher) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.events = append(m.events, event)

	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}

// Events returns a copy of all published events
func (m *MockPublisher) Events() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]Event, len(m.events))
	copy(events, m.events)
	return events
}

// Reset clears the record of published events
func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = make([]Event, 0)
	m.err = nil
}
