package coordinator

// NavigationStack is an ordered sequence of screens owned by one coordinator.
// The coordinator never mutates it directly; every change goes through a Presenter.
type NavigationStack interface {
	// Screens returns the screens bottom to top.
	Screens() []Screen
	// Len returns the number of screens on the stack.
	Len() int
	// Top returns the last pushed screen, or nil if the stack is empty.
	Top() Screen
}

// Window is a top-level container that displays exactly one root stack.
type Window interface {
	// SetRoot installs the stack as the window's content and makes the window visible.
	// Any previously installed stack is replaced.
	SetRoot(stack NavigationStack)
}

// PresentRequest carries the visual parameters of a present operation.
type PresentRequest struct {
	Style    PresentationStyle
	Animated bool
	// Embedded is true when the presented stack shows navigation chrome
	// and accepts pushes; false for a bare screen.
	Embedded bool
}

// Presenter drives the underlying screen containers.
//
// Mutations take effect synchronously. Completion callbacks fire once the
// container transition finishes, which may be after the call returns.
// Implementations must allow at most one presentation edge per presenting stack.
type Presenter interface {
	// NewStack creates an empty stack.
	NewStack() NavigationStack
	// Replace sets the stack content to exactly the given screens.
	Replace(stack NavigationStack, screens []Screen, animated bool, done func())
	// Push appends a screen to the stack.
	Push(stack NavigationStack, screen Screen, animated bool, done func())
	// Pop removes and returns the top screen of the stack, or nil if it holds one screen or fewer.
	Pop(stack NavigationStack, animated bool, done func()) Screen
	// Present shows stack modally on top of onto.
	Present(stack NavigationStack, onto NavigationStack, req PresentRequest, done func())
	// Dismiss closes the layer presented by presenting, along with anything above it.
	Dismiss(presenting NavigationStack, animated bool, done func())
	// Presented returns the stack currently presented on stack, or nil.
	Presented(stack NavigationStack) NavigationStack
	// Presenting returns the stack that presented stack, or nil.
	Presenting(stack NavigationStack) NavigationStack
}

// Frontier follows the presentation edges from stack and returns the topmost layer.
func Frontier(p Presenter, stack NavigationStack) NavigationStack {
	current := stack
	for {
		next := p.Presented(current)
		if next == nil {
			return current
		}
		current = next
	}
}

func onPresentationChain(p Presenter, from, target NavigationStack) bool {
	for current := from; current != nil; current = p.Presented(current) {
		if current == target {
			return true
		}
	}
	return false
}
