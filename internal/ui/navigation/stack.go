package navigation

import "github.com/bnema/tabshell/internal/ui/controller"

// Stack holds the mounted screens of one tab, bottom first.
type Stack struct {
	entries []controller.Screen
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{entries: make([]controller.Screen, 0)}
}

// Push adds a screen on top.
func (s *Stack) Push(screen controller.Screen) {
	s.entries = append(s.entries, screen)
}

// Pop removes and returns the top screen, or nil if the stack is empty.
func (s *Stack) Pop() controller.Screen {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Peek returns the top screen without removing it, or nil.
func (s *Stack) Peek() controller.Screen {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Screens returns the entries bottom first.
func (s *Stack) Screens() []controller.Screen {
	out := make([]controller.Screen, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
