// Package coordinator decouples screen transitions from screen implementations.
//
// Every screen is created through a coordinator and bound to it for life.
// Screens never reference each other; they ask their coordinator to push,
// present or dismiss. Coordinators form a tree through weak parent references
// established by PresentCoordinator and severed by Dismiss.
//
// # Basic Usage
//
//	type HomeCoordinator struct{ *coordinator.Base }
//	type FooCoordinator struct{ *coordinator.Base }
//
//	type HomeScreen struct{ coordinator.ScreenBinding[*HomeCoordinator] }
//	type FooScreen struct{ coordinator.ScreenBinding[*FooCoordinator] }
//
//	var (
//	    HomeRoot = coordinator.Constructor("home", func(c *HomeCoordinator) *HomeScreen {
//	        return &HomeScreen{coordinator.NewBinding(c, "home")}
//	    })
//	    FooRoot = coordinator.Constructor("foo", func(c *FooCoordinator) *FooScreen {
//	        return &FooScreen{coordinator.NewBinding(c, "foo")}
//	    })
//	)
//
//	home := &HomeCoordinator{coordinator.NewBase("home", presenter)}
//	coordinator.Attach(home, window, HomeRoot)
//
//	foo := &FooCoordinator{coordinator.NewBase("foo", presenter)}
//	coordinator.PresentCoordinator(home, foo, FooRoot, coordinator.DefaultTransitionOptions())
//
//	// Later, from a FooScreen:
//	screen.Coordinator().Dismiss(coordinator.DefaultTransitionOptions())
//
// Passing FooRoot to Push(home, ...) does not compile: a ScreenType carries
// its owning coordinator type.
//
// # Presentation Frontier
//
// Present and PresentCoordinator always present on the frontier: the topmost
// layer reached by following presentation edges from the coordinator's stack.
// Presenting twice stacks the second layer on the first.
//
// # Dismiss
//
// Dismiss only succeeds for a child whose presenting stack lies on its
// parent's presentation chain. The parent reference is cleared before the
// container dismiss starts, so of two dismiss calls exactly one succeeds.
// Failures are returned and reported as OnComplete(false); no container is
// touched.
package coordinator
