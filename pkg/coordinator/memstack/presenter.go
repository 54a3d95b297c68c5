// Package memstack provides an in-memory Presenter and Window for the
// coordinator package.
//
// Container mutations are applied immediately. Completion callbacks are queued
// until Settle is called, which stands in for the end of a transition
// animation; set Options.Immediate to run them inline instead.
//
//	p := memstack.New(memstack.Options{})
//	w := memstack.NewWindow()
//	home := &HomeCoordinator{coordinator.NewBase("home", p)}
//	coordinator.Attach(home, w, HomeRoot)
//	p.Settle()
package memstack

import (
	"fmt"
	"sync"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
)

// TransitionKind identifies a container mutation.
type TransitionKind int

const (
	TransitionReplace TransitionKind = iota
	TransitionPush
	TransitionPop
	TransitionPresent
	TransitionDismiss
)

func (k TransitionKind) GetName() string {
	switch k {
	case TransitionReplace:
		return "Replace"
	case TransitionPush:
		return "Push"
	case TransitionPop:
		return "Pop"
	case TransitionPresent:
		return "Present"
	case TransitionDismiss:
		return "Dismiss"
	default:
		return "Unknown"
	}
}

// Transition records one container mutation.
type Transition struct {
	Kind     TransitionKind
	Stack    int    // Stack mutated, or the stack presented/dismissed
	Onto     int    // Presenting stack for Present and Dismiss
	Screen   string // Screen pushed or popped
	Animated bool
}

func (t Transition) String() string {
	switch t.Kind {
	case TransitionPresent, TransitionDismiss:
		return fmt.Sprintf("%s #%d on #%d", t.Kind.GetName(), t.Stack, t.Onto)
	default:
		return fmt.Sprintf("%s #%d %s", t.Kind.GetName(), t.Stack, t.Screen)
	}
}

// Options configures a Presenter.
type Options struct {
	// Immediate runs completion callbacks before the mutating call returns.
	Immediate bool
	// OnChange is called after every mutating call that was not refused, outside the lock.
	// Views use it to redraw.
	OnChange func()
}

// Presenter is an in-memory coordinator.Presenter.
type Presenter struct {
	mu      sync.Mutex
	options Options
	nextID  int
	pending []func()
	log     []Transition
}

// New creates a Presenter.
func New(options Options) *Presenter {
	return &Presenter{options: options}
}

// NewStack creates an empty stack.
func (p *Presenter) NewStack() coordinator.NavigationStack {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	return &Stack{presenter: p, id: p.nextID}
}

func (p *Presenter) Replace(stack coordinator.NavigationStack, screens []coordinator.Screen, animated bool, done func()) {
	s := p.own(stack)

	p.mu.Lock()
	s.screens = append(s.screens[:0], screens...)
	for _, screen := range screens {
		p.record(Transition{Kind: TransitionReplace, Stack: s.id, Screen: screen.ScreenID(), Animated: animated})
	}
	p.mu.Unlock()

	p.finish(done)
}

func (p *Presenter) Push(stack coordinator.NavigationStack, screen coordinator.Screen, animated bool, done func()) {
	s := p.own(stack)

	p.mu.Lock()
	s.push(screen)
	p.record(Transition{Kind: TransitionPush, Stack: s.id, Screen: screen.ScreenID(), Animated: animated})
	p.mu.Unlock()

	p.finish(done)
}

func (p *Presenter) Pop(stack coordinator.NavigationStack, animated bool, done func()) coordinator.Screen {
	s := p.own(stack)

	p.mu.Lock()
	if len(s.screens) <= 1 {
		p.mu.Unlock()
		return nil
	}
	screen := s.pop()
	p.record(Transition{Kind: TransitionPop, Stack: s.id, Screen: screen.ScreenID(), Animated: animated})
	p.mu.Unlock()

	p.finish(done)
	return screen
}

// Present links stack above onto. A request on a stack that already presents
// something, or for a stack that is already presented, is ignored and its
// completion never fires.
func (p *Presenter) Present(stack, onto coordinator.NavigationStack, req coordinator.PresentRequest, done func()) {
	s, base := p.own(stack), p.own(onto)

	p.mu.Lock()
	if base.presented != nil || s.presenting != nil || s == base {
		p.mu.Unlock()
		internal.GetInternalLogger().Warn("Ignoring present on a busy stack",
			"stack", s.id,
			"onto", base.id,
		)
		return
	}
	base.presented = s
	s.presenting = base
	s.request = req
	p.record(Transition{Kind: TransitionPresent, Stack: s.id, Onto: base.id, Animated: req.Animated})
	p.mu.Unlock()

	p.finish(done)
}

// Dismiss removes the layer presented by presenting and every layer above it.
// The completion fires even when nothing was presented.
func (p *Presenter) Dismiss(presenting coordinator.NavigationStack, animated bool, done func()) {
	base := p.own(presenting)

	p.mu.Lock()
	if layer := base.presented; layer != nil {
		p.record(Transition{Kind: TransitionDismiss, Stack: layer.id, Onto: base.id, Animated: animated})
		base.presented = nil
		for layer != nil {
			next := layer.presented
			layer.presenting = nil
			layer.presented = nil
			layer.request = coordinator.PresentRequest{}
			layer = next
		}
	}
	p.mu.Unlock()

	p.finish(done)
}

func (p *Presenter) Presented(stack coordinator.NavigationStack) coordinator.NavigationStack {
	s := p.own(stack)

	p.mu.Lock()
	defer p.mu.Unlock()
	if s.presented == nil {
		return nil
	}
	return s.presented
}

func (p *Presenter) Presenting(stack coordinator.NavigationStack) coordinator.NavigationStack {
	s := p.own(stack)

	p.mu.Lock()
	defer p.mu.Unlock()
	if s.presenting == nil {
		return nil
	}
	return s.presenting
}

// Chain returns stack followed by every layer presented above it, bottom to top.
func (p *Presenter) Chain(stack coordinator.NavigationStack) []*Stack {
	s := p.own(stack)

	p.mu.Lock()
	defer p.mu.Unlock()

	var chain []*Stack
	for current := s; current != nil; current = current.presented {
		chain = append(chain, current)
	}
	return chain
}

// Settle runs queued completion callbacks, including ones queued while
// settling, and returns how many ran.
func (p *Presenter) Settle() int {
	ran := 0
	for {
		p.mu.Lock()
		queue := p.pending
		p.pending = nil
		p.mu.Unlock()

		if len(queue) == 0 {
			return ran
		}
		for _, fn := range queue {
			fn()
			ran++
		}
	}
}

// Pending returns the number of queued completion callbacks.
func (p *Presenter) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Transitions returns a copy of the mutation log.
func (p *Presenter) Transitions() []Transition {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Transition(nil), p.log...)
}

func (p *Presenter) record(t Transition) {
	p.log = append(p.log, t)
}

func (p *Presenter) finish(done func()) {
	if p.options.OnChange != nil {
		p.options.OnChange()
	}
	if done == nil {
		return
	}
	if p.options.Immediate {
		done()
		return
	}

	p.mu.Lock()
	p.pending = append(p.pending, done)
	p.mu.Unlock()
}

func (p *Presenter) own(stack coordinator.NavigationStack) *Stack {
	s, ok := stack.(*Stack)
	if !ok || s.presenter != p {
		panic(fmt.Sprintf("memstack: stack %T does not belong to this presenter", stack))
	}
	return s
}
