package sdlwindow

import "github.com/veandco/go-sdl2/sdl"

// Options configures the SDL window a coordinator attaches to.
type Options struct {
	Width             int32 // Window width (default: display width, or 1024 in dev mode)
	Height            int32 // Window height (default: display height, or 768 in dev mode)
	Borderless        bool  // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool  // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool  // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool  // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool  // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Maximized         bool  // Start maximized (SDL_WINDOW_MAXIMIZED)
}

// ToSDLFlags returns the window creation flags. Windows are created hidden
// and shown once a coordinator attaches its root stack.
func (o Options) ToSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_HIDDEN)

	if o.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if o.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if o.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if o.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if o.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if o.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}

	return flags
}
