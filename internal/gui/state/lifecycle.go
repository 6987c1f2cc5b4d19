package state

import "sync"

// Lifecycle is the state of a top-level window.
type Lifecycle int

const (
	Open Lifecycle = iota
	Closed
)

func (l Lifecycle) String() string {
	switch l {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// WindowState tracks the Open -> Closed transition of a window.
// Closed is terminal.
type WindowState struct {
	mu        sync.RWMutex
	lifecycle Lifecycle
}

// NewWindowState creates a state in Open.
func NewWindowState() *WindowState {
	return &WindowState{lifecycle: Open}
}

func (s *WindowState) Lifecycle() Lifecycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lifecycle
}

// MarkClosed moves the state to Closed. It reports false if the state was
// already Closed.
func (s *WindowState) MarkClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lifecycle == Closed {
		return false
	}
	s.lifecycle = Closed
	return true
}
