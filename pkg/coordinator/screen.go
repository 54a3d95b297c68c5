package coordinator

import "reflect"

// Screen is a single navigable unit. It is bound to exactly one coordinator for its lifetime.
type Screen interface {
	// ScreenID returns the identifier the screen was created from.
	ScreenID() string
	// OwnerNode returns the coordinator state the screen is bound to.
	OwnerNode() *Base
}

// Coordinated is a screen whose owning coordinator type is C.
// Requesting a Coordinated[C] through any other coordinator type fails to compile.
type Coordinated[C Coordinator] interface {
	Screen
	Coordinator() C
}

// ScreenBinding holds a screen's coordinator reference.
// Embed it in screen types; the coordinator is assigned once by NewBinding.
//
//	type DetailScreen struct {
//	    coordinator.ScreenBinding[*HomeCoordinator]
//	    Item Item
//	}
type ScreenBinding[C Coordinator] struct {
	id          string
	coordinator C
}

// NewBinding binds a screen id to its coordinator.
func NewBinding[C Coordinator](c C, screenID string) ScreenBinding[C] {
	return ScreenBinding[C]{id: screenID, coordinator: c}
}

func (b ScreenBinding[C]) ScreenID() string {
	return b.id
}

func (b ScreenBinding[C]) Coordinator() C {
	return b.coordinator
}

func (b ScreenBinding[C]) OwnerNode() *Base {
	return b.coordinator.Node()
}

// ScreenFactory produces screens of type V bound to coordinators of type C.
// Create returns ErrScreenNotFound when screenID has no registered producer.
type ScreenFactory[C Coordinator, V Coordinated[C]] interface {
	Create(coordinator C, screenID string) (V, error)
}

// FactoryFunc adapts a function to ScreenFactory.
type FactoryFunc[C Coordinator, V Coordinated[C]] func(coordinator C, screenID string) (V, error)

func (f FactoryFunc[C, V]) Create(coordinator C, screenID string) (V, error) {
	return f(coordinator, screenID)
}

// ScreenType identifies a screen and the factory able to build it.
// Its type parameters carry the owning coordinator type, so passing it to
// a coordinator of another type is a compile error.
type ScreenType[C Coordinator, V Coordinated[C]] struct {
	id      string
	factory ScreenFactory[C, V]
}

// NewScreenType declares a screen type produced by factory.
func NewScreenType[C Coordinator, V Coordinated[C]](screenID string, factory ScreenFactory[C, V]) ScreenType[C, V] {
	return ScreenType[C, V]{id: screenID, factory: factory}
}

// Constructor declares a screen type built by a plain constructor that cannot fail.
func Constructor[C Coordinator, V Coordinated[C]](screenID string, ctor func(C) V) ScreenType[C, V] {
	return NewScreenType[C, V](screenID, FactoryFunc[C, V](func(c C, _ string) (V, error) {
		return ctor(c), nil
	}))
}

// ID returns the screen identifier.
func (t ScreenType[C, V]) ID() string {
	return t.id
}

// build creates the screen and checks it came back bound to c.
func (t ScreenType[C, V]) build(op string, c C) (V, error) {
	var zero V
	node := c.Node()

	if t.factory == nil {
		return zero, NewTransitionError(op, node.GroupID(), t.id, ErrScreenNotFound)
	}

	screen, err := t.factory.Create(c, t.id)
	if err != nil {
		return zero, NewTransitionError(op, node.GroupID(), t.id, err)
	}
	if isNilScreen(screen) {
		return zero, NewTransitionError(op, node.GroupID(), t.id, ErrScreenNotFound)
	}
	if screen.OwnerNode() != node {
		return zero, NewTransitionError(op, node.GroupID(), t.id, ErrForeignScreen)
	}
	return screen, nil
}

// isNilScreen reports whether a factory handed back no screen, including a
// typed nil pointer.
func isNilScreen(screen Screen) bool {
	if screen == nil {
		return true
	}
	v := reflect.ValueOf(screen)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Titled is a screen with a human readable title.
type Titled interface {
	Screen
	Title() string
}

// TitleOf returns the screen title, or its id when the screen has none.
func TitleOf(screen Screen) string {
	if t, ok := screen.(Titled); ok && t.Title() != "" {
		return t.Title()
	}
	return screen.ScreenID()
}
