package coordinator

import (
	"log/slog"
	"weak"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
)

// Coordinator is implemented by every type embedding *Base.
//
//	type HomeCoordinator struct {
//	    *coordinator.Base
//	    visits int
//	}
//
//	func NewHomeCoordinator(p coordinator.Presenter) *HomeCoordinator {
//	    return &HomeCoordinator{Base: coordinator.NewBase("home", p)}
//	}
type Coordinator interface {
	Node() *Base
}

// Base is the state shared by all coordinators: the screen group, the owned
// navigation stack and a non-owning reference to the parent coordinator.
type Base struct {
	groupID   string
	presenter Presenter
	stack     NavigationStack

	// parent is a weak back reference so a child never keeps its parent alive.
	// Cleared by compare-and-swap in Dismiss; the first dismiss wins.
	parent atomic.Pointer[weak.Pointer[Base]]
}

// NewBase creates coordinator state with a fresh stack from presenter.
// groupID names the screen namespace the coordinator's screens are resolved from.
func NewBase(groupID string, presenter Presenter) *Base {
	return &Base{
		groupID:   groupID,
		presenter: presenter,
		stack:     presenter.NewStack(),
	}
}

// Node returns the receiver, satisfying Coordinator for embedding types.
func (b *Base) Node() *Base {
	return b
}

// GroupID returns the screen group id.
func (b *Base) GroupID() string {
	return b.groupID
}

// Stack returns the navigation stack. After PushCoordinator it aliases the parent's stack.
func (b *Base) Stack() NavigationStack {
	return b.stack
}

// Presenter returns the presenter driving this coordinator's containers.
func (b *Base) Presenter() Presenter {
	return b.presenter
}

// Parent returns the coordinator that presented this one, or nil.
func (b *Base) Parent() *Base {
	link := b.parent.Load()
	if link == nil {
		return nil
	}
	return link.Value()
}

// HasParent reports whether the coordinator is currently a presented child.
func (b *Base) HasParent() bool {
	return b.parent.Load() != nil
}

// Frontier returns the topmost layer presented over this coordinator's stack,
// or the stack itself when nothing is presented.
func (b *Base) Frontier() NavigationStack {
	return Frontier(b.presenter, b.stack)
}

// IsPresented reports whether this coordinator's stack is shown modally.
func (b *Base) IsPresented() bool {
	return b.presenter.Presenting(b.stack) != nil
}

func (b *Base) setParent(parent *Base) {
	link := weak.Make(parent)
	b.parent.Store(&link)
}

// Dismiss closes the presentation that made this coordinator a child.
//
// The stack that presented this coordinator must lie on the parent's
// presentation chain. When it does not, or there is no parent, nothing is
// touched, OnComplete receives false and the error is returned.
// On success the parent reference is cleared before the container dismiss
// starts and OnComplete(true) fires once it finishes.
func (b *Base) Dismiss(opts TransitionOptions) error {
	logger := internal.GetInternalLogger()

	link := b.parent.Load()
	if link == nil {
		return b.reject("dismiss", ErrOwnershipMismatch, opts)
	}

	presenting := b.presenter.Presenting(b.stack)
	if presenting == nil {
		return b.reject("dismiss", ErrNoPresentation, opts)
	}

	parent := link.Value()
	if parent == nil || !onPresentationChain(parent.presenter, parent.stack, presenting) {
		return b.reject("dismiss", ErrOwnershipMismatch, opts)
	}

	if !b.parent.CompareAndSwap(link, nil) {
		return b.reject("dismiss", ErrOwnershipMismatch, opts)
	}

	logger.Debug("Dismissing coordinator",
		"group", b.groupID,
		"parent", parent.groupID,
		"animated", opts.Animated,
	)

	b.presenter.Dismiss(presenting, opts.Animated, func() {
		opts.complete(true)
	})
	return nil
}

// Pop removes the top screen of the stack when this coordinator owns it.
// The root screen is never popped.
func (b *Base) Pop(opts TransitionOptions) (Screen, error) {
	if b.stack.Len() <= 1 {
		return nil, b.reject("pop", ErrNoPresentation, opts)
	}
	if top := b.stack.Top(); top.OwnerNode() != b {
		return nil, b.reject("pop", ErrOwnershipMismatch, opts)
	}

	screen := b.presenter.Pop(b.stack, opts.Animated, func() {
		opts.complete(true)
	})
	if screen == nil {
		return nil, NewTransitionError("pop", b.groupID, "", ErrNoPresentation)
	}

	internal.GetInternalLogger().Debug("Popped screen",
		"group", b.groupID,
		"screen", screen.ScreenID(),
		"animated", opts.Animated,
	)
	return screen, nil
}

func (b *Base) reject(op string, err error, opts TransitionOptions) error {
	internal.GetInternalLogger().Warn("Transition rejected",
		"op", op,
		"group", b.groupID,
		slog.Any("error", err),
	)
	opts.complete(false)
	return NewTransitionError(op, b.groupID, "", err)
}
