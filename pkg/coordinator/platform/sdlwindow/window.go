// Package sdlwindow lets a coordinator attach to an SDL window.
//
// The window shows the title of the topmost visible screen; rendering the
// screens themselves is left to the application.
package sdlwindow

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
)

// Window wraps an SDL window as a coordinator.Window.
type Window struct {
	Window *sdl.Window
	Title  string

	mu        sync.Mutex
	root      coordinator.NavigationStack
	presenter coordinator.Presenter
}

// New creates a hidden SDL window. sdl.Init(sdl.INIT_VIDEO) must have been called.
func New(title string, options Options) (*Window, error) {
	width, height := windowSize(options)

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		options.Borderless = false
		x, y = 50, 50
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, options.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("sdlwindow: create window: %w", err)
	}

	return &Window{Window: window, Title: title}, nil
}

func windowSize(options Options) (int32, int32) {
	width, height := options.Width, options.Height

	if constants.IsDevMode() {
		if width == 0 {
			width = envDimension(constants.WindowWidthEnvVar, constants.DefaultWindowWidth)
		}
		if height == 0 {
			height = envDimension(constants.WindowHeightEnvVar, constants.DefaultWindowHeight)
		}
		return width, height
	}

	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
			mode.W, mode.H = constants.DefaultWindowWidth, constants.DefaultWindowHeight
		}
		if width == 0 {
			width = mode.W
		}
		if height == 0 {
			height = mode.H
		}
	}
	return width, height
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// SetRoot installs stack as the window content, titles the window after the
// stack's top screen and shows it.
func (w *Window) SetRoot(stack coordinator.NavigationStack) {
	w.mu.Lock()
	w.root = stack
	w.mu.Unlock()

	w.Refresh()
	w.Window.Show()
	w.Window.Raise()
}

// Root returns the installed stack, or nil.
func (w *Window) Root() coordinator.NavigationStack {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// Track follows presentations made through p, so the title comes from the
// frontier of the root stack rather than the root itself.
func (w *Window) Track(p coordinator.Presenter) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.presenter = p
}

// Refresh updates the window title from the current top screen.
// Call it after every transition, e.g. from a presenter change hook.
func (w *Window) Refresh() {
	if w.Root() == nil {
		return
	}
	w.Window.SetTitle(w.title())
}

func (w *Window) title() string {
	w.mu.Lock()
	stack, presenter := w.root, w.presenter
	w.mu.Unlock()

	if stack == nil {
		return w.Title
	}
	if presenter != nil {
		stack = coordinator.Frontier(presenter, stack)
	}
	if top := stack.Top(); top != nil {
		return fmt.Sprintf("%s - %s", w.Title, coordinator.TitleOf(top))
	}
	return w.Title
}

// Close destroys the SDL window.
func (w *Window) Close() error {
	return w.Window.Destroy()
}
