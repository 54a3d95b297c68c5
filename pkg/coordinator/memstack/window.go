package memstack

import (
	"sync"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
)

// Window is an in-memory top-level container.
type Window struct {
	mu      sync.Mutex
	root    coordinator.NavigationStack
	visible bool
	roots   int
}

func NewWindow() *Window {
	return &Window{}
}

// SetRoot installs stack as the window content and shows the window.
func (w *Window) SetRoot(stack coordinator.NavigationStack) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.root = stack
	w.visible = true
	w.roots++
}

// Root returns the installed stack, or nil.
func (w *Window) Root() coordinator.NavigationStack {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Hide hides the window without detaching its root.
func (w *Window) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
}

// RootChanges returns how many times SetRoot was called.
func (w *Window) RootChanges() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.roots
}
