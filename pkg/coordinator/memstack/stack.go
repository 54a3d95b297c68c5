package memstack

import (
	"slices"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
)

// Stack is an in-memory navigation stack owned by a Presenter.
// Reads are safe from any goroutine; mutations go through the Presenter.
type Stack struct {
	presenter *Presenter
	id        int
	screens   []coordinator.Screen

	presented  *Stack
	presenting *Stack
	request    coordinator.PresentRequest
}

// ID returns a presenter-unique identifier, in creation order starting at 1.
func (s *Stack) ID() int {
	return s.id
}

// Screens returns a copy of the screens, bottom to top.
func (s *Stack) Screens() []coordinator.Screen {
	s.presenter.mu.Lock()
	defer s.presenter.mu.Unlock()
	return slices.Clone(s.screens)
}

// ScreenIDs returns the screen ids, bottom to top.
func (s *Stack) ScreenIDs() []string {
	s.presenter.mu.Lock()
	defer s.presenter.mu.Unlock()

	ids := make([]string, 0, len(s.screens))
	for _, screen := range s.screens {
		ids = append(ids, screen.ScreenID())
	}
	return ids
}

// Len returns the number of screens in the stack.
func (s *Stack) Len() int {
	s.presenter.mu.Lock()
	defer s.presenter.mu.Unlock()
	return len(s.screens)
}

// IsEmpty returns true if the stack has no screens.
func (s *Stack) IsEmpty() bool {
	return s.Len() == 0
}

// Top returns the top screen without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Top() coordinator.Screen {
	s.presenter.mu.Lock()
	defer s.presenter.mu.Unlock()
	return s.top()
}

// Request returns the parameters the stack was presented with.
// The zero value means the stack is not presented.
func (s *Stack) Request() coordinator.PresentRequest {
	s.presenter.mu.Lock()
	defer s.presenter.mu.Unlock()
	return s.request
}

func (s *Stack) top() coordinator.Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

func (s *Stack) push(screen coordinator.Screen) {
	s.screens = append(s.screens, screen)
}

func (s *Stack) pop() coordinator.Screen {
	if len(s.screens) == 0 {
		return nil
	}
	screen := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return screen
}
