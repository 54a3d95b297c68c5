package coordinator

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
)

// Make creates a screen bound to c without showing it.
func Make[C Coordinator, V Coordinated[C]](c C, screen ScreenType[C, V]) (V, error) {
	return screen.build("make", c)
}

// Attach installs a new root screen as the only element of c's stack and
// sets that stack as the window root. Repeated calls replace the previous root;
// no history is kept.
func Attach[C Coordinator, V Coordinated[C]](c C, window Window, root ScreenType[C, V]) (V, error) {
	screen, err := root.build("attach", c)
	if err != nil {
		return screen, err
	}

	node := c.Node()
	node.presenter.Replace(node.stack, []Screen{screen}, false, nil)
	window.SetRoot(node.stack)

	internal.GetInternalLogger().Debug("Attached coordinator",
		"group", node.groupID,
		"screen", screen.ScreenID(),
	)
	return screen, nil
}

// Push creates a screen bound to c and appends it to c's stack.
// OnComplete(true) fires once the container finishes the push.
func Push[C Coordinator, V Coordinated[C]](c C, screen ScreenType[C, V], opts TransitionOptions) (V, error) {
	created, err := screen.build("push", c)
	if err != nil {
		return created, err
	}

	node := c.Node()
	node.presenter.Push(node.stack, created, opts.Animated, func() {
		opts.complete(true)
	})

	internal.GetInternalLogger().Debug("Pushed screen",
		"group", node.groupID,
		"screen", created.ScreenID(),
		"animated", opts.Animated,
	)
	return created, nil
}

// PushCoordinator continues a flow with child's screens inside parent's stack.
//
// The child's stack is replaced by parent's: both coordinators then share one
// visible back stack and anything the child pushes lands on the parent's stack.
// This is an ownership transfer. The child does not become a presented child,
// so its Dismiss reports a mismatch.
func PushCoordinator[P Coordinator, C Coordinator, V Coordinated[C]](parent P, child C, screen ScreenType[C, V], opts TransitionOptions) (V, error) {
	created, err := screen.build("push", child)
	if err != nil {
		return created, err
	}

	p, c := parent.Node(), child.Node()
	c.stack = p.stack
	c.presenter = p.presenter
	p.presenter.Push(p.stack, created, opts.Animated, func() {
		opts.complete(true)
	})

	internal.GetInternalLogger().Debug("Pushed coordinator",
		"group", p.groupID,
		"child", c.groupID,
		"screen", created.ScreenID(),
		"animated", opts.Animated,
	)
	return created, nil
}

// Present creates a screen bound to c and presents it on c's presentation frontier.
// With opts.Embed the screen gets its own navigation stack.
func Present[C Coordinator, V Coordinated[C]](c C, screen ScreenType[C, V], opts TransitionOptions) (V, error) {
	created, err := screen.build("present", c)
	if err != nil {
		return created, err
	}

	node := c.Node()
	layer := node.presenter.NewStack()
	node.presenter.Push(layer, created, false, nil)

	onto := node.Frontier()
	req := PresentRequest{Style: opts.style(), Animated: opts.Animated, Embedded: opts.Embed}
	node.presenter.Present(layer, onto, req, func() {
		opts.complete(true)
	})

	internal.GetInternalLogger().Debug("Presented screen",
		"group", node.groupID,
		"screen", created.ScreenID(),
		"style", req.Style.GetName(),
		"animated", opts.Animated,
	)
	return created, nil
}

// PresentCoordinator starts a sub-flow: the child's first screen goes on the
// child's own stack, parent becomes the child's parent and the child's stack is
// presented on parent's frontier. The child must not already have a parent,
// share parent's stack or sit above parent in the tree.
func PresentCoordinator[P Coordinator, C Coordinator, V Coordinated[C]](parent P, child C, screen ScreenType[C, V], opts TransitionOptions) (V, error) {
	var zero V
	p, c := parent.Node(), child.Node()

	if p == c || c.HasParent() || c.stack == p.stack || c.IsPresented() || isAncestor(c, p) {
		return zero, NewTransitionError("present", p.groupID, screen.ID(), ErrOwnershipMismatch)
	}

	created, err := screen.build("present", child)
	if err != nil {
		return created, err
	}

	c.presenter.Push(c.stack, created, false, nil)
	c.setParent(p)

	onto := p.Frontier()
	req := PresentRequest{Style: opts.style(), Animated: opts.Animated, Embedded: true}
	p.presenter.Present(c.stack, onto, req, func() {
		opts.complete(true)
	})

	internal.GetInternalLogger().Debug("Presented coordinator",
		"group", p.groupID,
		"child", c.groupID,
		"screen", created.ScreenID(),
		"style", req.Style.GetName(),
		"animated", opts.Animated,
	)
	return created, nil
}

// isAncestor reports whether node is reachable from descendant through parent
// links or presentation edges. Presenting node over descendant would close a cycle.
func isAncestor(node, descendant *Base) bool {
	for a := descendant.Parent(); a != nil; a = a.Parent() {
		if a == node {
			return true
		}
	}
	return onPresentationChain(node.presenter, node.stack, descendant.stack)
}
