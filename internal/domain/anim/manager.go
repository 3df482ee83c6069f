package anim

// Status is the playback status of the active animation
type Status int

const (
	StatusRunning Status = iota
	StatusDone
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}

// Manager owns a fixed set of named animations and the active state.
//
// SetState is an idempotent request: asking for the active state again
// does not restart it. Update is the tick.
type Manager struct {
	animations map[string]*Animation
	state      string
	status     Status
}

// NewManager creates a manager starting in the initial state.
// The animations map is copied; its keys are fixed from here on.
func NewManager(initial string, animations map[string]*Animation) (*Manager, error) {
	m := &Manager{
		animations: make(map[string]*Animation, len(animations)),
	}
	for name, a := range animations {
		m.animations[name] = a
	}
	if _, ok := m.animations[initial]; !ok {
		return nil, &UnknownStateError{State: initial}
	}
	m.state = initial
	return m, nil
}

// SetState requests a transition to name.
// Re-entering a different state always starts it from frame 0.
func (m *Manager) SetState(name string) error {
	next, ok := m.animations[name]
	if !ok {
		return &UnknownStateError{State: name}
	}
	if name == m.state {
		return nil
	}
	m.state = name
	m.status = StatusRunning
	next.Reset()
	return nil
}

// Update advances the active animation and refreshes the status.
func (m *Manager) Update() {
	a := m.animations[m.state]
	a.Advance()
	if a.Finished() {
		m.status = StatusDone
	} else {
		m.status = StatusRunning
	}
}

// Current returns the active animation
func (m *Manager) Current() *Animation {
	return m.animations[m.state]
}

// State returns the active state name
func (m *Manager) State() string { return m.state }

// Status returns the playback status as of the last Update
func (m *Manager) Status() Status { return m.status }

// Done reports whether the active one-shot animation has completed
func (m *Manager) Done() bool { return m.status == StatusDone }

// Has reports whether name is a known state
func (m *Manager) Has(name string) bool {
	_, ok := m.animations[name]
	return ok
}

// Require returns an UnknownStateError for the first missing name.
func (m *Manager) Require(names ...string) error {
	for _, name := range names {
		if !m.Has(name) {
			return &UnknownStateError{State: name}
		}
	}
	return nil
}
