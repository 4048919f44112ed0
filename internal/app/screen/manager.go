package screen

// Manager keeps the stack of open modals. Only the top one receives keys.
type Manager struct {
	current Screen
	stack   []Screen
}

// NewManager creates an empty screen manager.
func NewManager() *Manager {
	return &Manager{}
}

// Push shows s on top of the current screen.
func (m *Manager) Push(s Screen) {
	if s == nil {
		return
	}
	if m.current != nil {
		m.stack = append(m.stack, m.current)
	}
	m.current = s
}

// Pop closes the current screen and returns it, restoring the one below.
func (m *Manager) Pop() Screen {
	removed := m.current
	if n := len(m.stack); n > 0 {
		m.current = m.stack[n-1]
		m.stack = m.stack[:n-1]
	} else {
		m.current = nil
	}
	return removed
}

// Current returns the top screen, or nil.
func (m *Manager) Current() Screen {
	return m.current
}

// IsActive reports whether any screen is open.
func (m *Manager) IsActive() bool {
	return m.current != nil
}

// Type returns the type of the top screen, or TypeNone.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// Dismiss removes every open screen of type t, keeping the others in order.
// It is used to close a loading screen once its work finishes, even if a
// dialog was pushed above it meanwhile.
func (m *Manager) Dismiss(t Type) {
	kept := m.stack[:0]
	for _, s := range m.stack {
		if s.Type() != t {
			kept = append(kept, s)
		}
	}
	m.stack = kept
	if m.current != nil && m.current.Type() == t {
		m.Pop()
	}
}

// Remove closes s wherever it is in the stack. A screen callback may push a
// follow-up dialog before its own screen is closed, so the closing screen is
// not necessarily on top.
func (m *Manager) Remove(s Screen) {
	if s == nil {
		return
	}
	if m.current == s {
		m.Pop()
		return
	}
	for i, other := range m.stack {
		if other == s {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// Clear closes every screen.
func (m *Manager) Clear() {
	m.current = nil
	m.stack = m.stack[:0]
}

// Depth returns the number of open screens.
func (m *Manager) Depth() int {
	if m.current == nil {
		return 0
	}
	return len(m.stack) + 1
}
