package demo

import (
	"fmt"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/catalog"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/memstack"
)

// Layer describes one presented layer, bottom to top.
type Layer struct {
	Stack    int
	Group    string
	Titles   []string
	Style    coordinator.PresentationStyle
	Embedded bool
}

// Window is a coordinator.Window that reports its installed root.
type Window interface {
	coordinator.Window
	Root() coordinator.NavigationStack
}

// App is a home flow that can present nested foo flows.
type App struct {
	Presenter *memstack.Presenter
	Window    Window
	Home      *HomeCoordinator
	Screens   Screens

	// children holds the presented foo coordinators, innermost last.
	children []*FooCoordinator
	// groups maps stack ids to the group that created them.
	groups map[int]string
}

// NewApp creates an app whose screens resolve against cat.
// A nil window gets an in-memory one.
func NewApp(cat *catalog.Catalog, presenter *memstack.Presenter, window Window) *App {
	if window == nil {
		window = memstack.NewWindow()
	}
	a := &App{
		Presenter: presenter,
		Window:    window,
		Screens:   BindScreens(cat),
		groups:    make(map[int]string),
	}
	a.Home = &HomeCoordinator{Base: coordinator.NewBase("home", presenter)}
	a.track(a.Home.Base)
	return a
}

// Start attaches the home flow to the window.
func (a *App) Start() error {
	_, err := coordinator.Attach(a.Home, a.Window, a.Screens.Home)
	return err
}

// Active returns the innermost coordinator: the last presented foo flow, or home.
func (a *App) Active() coordinator.Coordinator {
	if len(a.children) == 0 {
		return a.Home
	}
	return a.children[len(a.children)-1]
}

// Children returns the presented foo coordinators, innermost last.
func (a *App) Children() []*FooCoordinator {
	return append([]*FooCoordinator(nil), a.children...)
}

// Push pushes the next screen of the active flow.
func (a *App) Push(opts coordinator.TransitionOptions) (coordinator.Screen, error) {
	if len(a.children) == 0 {
		return coordinator.Push(a.Home, a.Screens.HomeSub, opts)
	}
	return coordinator.Push(a.children[len(a.children)-1], a.Screens.FooDetail, opts)
}

// PresentSheet presents the home sheet over everything currently shown.
func (a *App) PresentSheet(opts coordinator.TransitionOptions) (coordinator.Screen, error) {
	screen, err := coordinator.Present(a.Home, a.Screens.HomeSheet, opts)
	if err != nil {
		return nil, err
	}
	a.groups[a.Home.Frontier().(*memstack.Stack).ID()] = a.Home.GroupID()
	return screen, nil
}

// PresentFoo presents a new foo flow as a child of the active coordinator.
func (a *App) PresentFoo(opts coordinator.TransitionOptions) (*FooScreen, error) {
	child := &FooCoordinator{Base: coordinator.NewBase("foo", a.Presenter)}

	screen, err := coordinator.PresentCoordinator(a.Active(), child, a.Screens.Foo, opts)
	if err != nil {
		return nil, err
	}
	a.track(child.Base)
	a.children = append(a.children, child)
	return screen, nil
}

// Dismiss dismisses the innermost foo flow.
func (a *App) Dismiss(opts coordinator.TransitionOptions) error {
	if len(a.children) == 0 {
		return a.Home.Dismiss(opts)
	}

	child := a.children[len(a.children)-1]
	if err := child.Dismiss(opts); err != nil {
		return err
	}
	a.children = a.children[:len(a.children)-1]
	return nil
}

// Action returns the operation bound to key, or "" when the key is unbound.
func Action(key string) string {
	switch key {
	case "p":
		return "push"
	case "m":
		return "present"
	case "c":
		return "present foo"
	case "d":
		return "dismiss"
	}
	return ""
}

// Do runs the operation bound to key and returns a status line for it.
// The sheet is presented as a page sheet.
func (a *App) Do(key string, opts coordinator.TransitionOptions) (string, error) {
	switch key {
	case "p":
		screen, err := a.Push(opts)
		if err != nil {
			return "", err
		}
		return "pushed " + coordinator.TitleOf(screen), nil

	case "m":
		opts.Style = coordinator.PresentationStylePageSheet
		screen, err := a.PresentSheet(opts)
		if err != nil {
			return "", err
		}
		return "presented " + coordinator.TitleOf(screen), nil

	case "c":
		if _, err := a.PresentFoo(opts); err != nil {
			return "", err
		}
		return fmt.Sprintf("presented foo #%d", len(a.children)), nil

	case "d":
		if err := a.Dismiss(opts); err != nil {
			return "", err
		}
		return "dismissing", nil
	}
	return "", fmt.Errorf("demo: no action bound to %q", key)
}

// Layers describes the presentation chain from the window root.
func (a *App) Layers() []Layer {
	root := a.Window.Root()
	if root == nil {
		return nil
	}

	var layers []Layer
	for _, stack := range a.Presenter.Chain(root) {
		req := stack.Request()
		layers = append(layers, Layer{
			Stack:    stack.ID(),
			Group:    a.groups[stack.ID()],
			Titles:   titles(stack.Screens()),
			Style:    req.Style,
			Embedded: req.Embedded,
		})
	}
	return layers
}

// Describe renders the layers as one line per layer.
func (a *App) Describe() []string {
	var lines []string
	for i, layer := range a.Layers() {
		line := fmt.Sprintf("%d %s %v", i, layer.Group, layer.Titles)
		if i > 0 {
			line += " (" + layer.Style.GetName() + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func (a *App) track(b *coordinator.Base) {
	if s, ok := b.Stack().(*memstack.Stack); ok {
		a.groups[s.ID()] = b.GroupID()
	}
}

func titles(screens []coordinator.Screen) []string {
	out := make([]string, 0, len(screens))
	for _, screen := range screens {
		out = append(out, coordinator.TitleOf(screen))
	}
	return out
}
