package coordinator_test

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/memstack"
)

type homeCoordinator struct {
	*coordinator.Base
}

type fooCoordinator struct {
	*coordinator.Base
}

type homeScreen struct {
	coordinator.ScreenBinding[*homeCoordinator]
}

type fooScreen struct {
	coordinator.ScreenBinding[*fooCoordinator]
}

var (
	homeRoot = coordinator.Constructor("home", func(c *homeCoordinator) *homeScreen {
		return &homeScreen{coordinator.NewBinding(c, "home")}
	})
	homeDetail = coordinator.Constructor("home.detail", func(c *homeCoordinator) *homeScreen {
		return &homeScreen{coordinator.NewBinding(c, "home.detail")}
	})
	fooRoot = coordinator.Constructor("foo", func(c *fooCoordinator) *fooScreen {
		return &fooScreen{coordinator.NewBinding(c, "foo")}
	})
	fooDetail = coordinator.Constructor("foo.detail", func(c *fooCoordinator) *fooScreen {
		return &fooScreen{coordinator.NewBinding(c, "foo.detail")}
	})
	missing = coordinator.NewScreenType[*homeCoordinator, *homeScreen]("missing", coordinator.FactoryFunc[*homeCoordinator, *homeScreen](
		func(c *homeCoordinator, id string) (*homeScreen, error) {
			return nil, coordinator.ErrScreenNotFound
		},
	))
)

func newHome(p *memstack.Presenter) *homeCoordinator {
	return &homeCoordinator{coordinator.NewBase("home", p)}
}

func newFoo(p *memstack.Presenter) *fooCoordinator {
	return &fooCoordinator{coordinator.NewBase("foo", p)}
}

func ids(stack coordinator.NavigationStack) []string {
	out := make([]string, 0, stack.Len())
	for _, s := range stack.Screens() {
		out = append(out, s.ScreenID())
	}
	return out
}

// recorder collects completion results.
type recorder struct {
	results []bool
}

func (r *recorder) opts() coordinator.TransitionOptions {
	return coordinator.DefaultTransitionOptions().Then(func(ok bool) {
		r.results = append(r.results, ok)
	})
}
