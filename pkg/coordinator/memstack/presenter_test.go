package memstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
)

type testCoordinator struct {
	*coordinator.Base
}

type testScreen struct {
	coordinator.ScreenBinding[*testCoordinator]
}

func screens(c *testCoordinator, ids ...string) []coordinator.Screen {
	out := make([]coordinator.Screen, 0, len(ids))
	for _, id := range ids {
		out = append(out, &testScreen{coordinator.NewBinding(c, id)})
	}
	return out
}

func TestStackOperations(t *testing.T) {
	p := New(Options{})
	c := &testCoordinator{coordinator.NewBase("test", p)}
	s := c.Stack().(*Stack)

	require.True(t, s.IsEmpty())
	assert.Nil(t, s.Top())

	p.Replace(s, screens(c, "a", "b"), false, nil)
	p.Push(s, screens(c, "c")[0], true, nil)
	assert.Equal(t, []string{"a", "b", "c"}, s.ScreenIDs())

	popped := p.Pop(s, true, nil)
	require.NotNil(t, popped)
	assert.Equal(t, "c", popped.ScreenID())

	p.Pop(s, false, nil)
	assert.Nil(t, p.Pop(s, false, nil), "last screen stays")
	assert.Equal(t, []string{"a"}, s.ScreenIDs())

	kinds := make([]string, 0)
	for _, tr := range p.Transitions() {
		kinds = append(kinds, tr.String())
	}
	assert.Equal(t, []string{
		"Replace #1 a",
		"Replace #1 b",
		"Push #1 c",
		"Pop #1 c",
		"Pop #1 b",
	}, kinds)
}

func TestPresentAllowsOneEdgePerStack(t *testing.T) {
	p := New(Options{Immediate: true})
	base := p.NewStack()
	first := p.NewStack()
	second := p.NewStack()

	done := 0
	p.Present(first, base, coordinator.PresentRequest{Style: coordinator.PresentationStylePageSheet}, func() { done++ })
	p.Present(second, base, coordinator.PresentRequest{}, func() { done++ })

	assert.Equal(t, 1, done)
	assert.Equal(t, first, p.Presented(base))
	assert.Nil(t, p.Presenting(second))
	assert.Equal(t, coordinator.PresentationStylePageSheet, first.(*Stack).Request().Style)
}

func TestDismissRemovesLayersAbove(t *testing.T) {
	p := New(Options{})
	base, middle, top := p.NewStack(), p.NewStack(), p.NewStack()
	p.Present(middle, base, coordinator.PresentRequest{}, nil)
	p.Present(top, middle, coordinator.PresentRequest{}, nil)
	require.Len(t, p.Chain(base), 3)

	fired := false
	p.Dismiss(base, true, func() { fired = true })
	assert.False(t, fired)
	assert.Equal(t, 1, p.Pending())

	assert.Equal(t, 1, p.Settle())
	assert.True(t, fired)
	assert.Len(t, p.Chain(base), 1)
	assert.Nil(t, p.Presenting(top))
	assert.Nil(t, p.Presented(middle))
	assert.Zero(t, top.(*Stack).Request())
}

func TestSettleRunsNestedCompletions(t *testing.T) {
	p := New(Options{})
	base, layer := p.NewStack(), p.NewStack()

	p.Present(layer, base, coordinator.PresentRequest{}, func() {
		p.Dismiss(base, false, nil)
		p.Dismiss(base, false, func() {})
	})

	assert.Equal(t, 2, p.Settle())
	assert.Nil(t, p.Presented(base))
}

func TestPushCompletesAndNotifies(t *testing.T) {
	changes := 0
	p := New(Options{OnChange: func() { changes++ }})
	c := &testCoordinator{coordinator.NewBase("test", p)}

	pushed := false
	p.Replace(c.Stack(), screens(c, "a"), false, nil)
	p.Push(c.Stack(), screens(c, "b")[0], true, func() { pushed = true })
	assert.Equal(t, 2, changes)
	assert.False(t, pushed)

	assert.Equal(t, 1, p.Settle())
	assert.True(t, pushed)

	require.NotNil(t, p.Pop(c.Stack(), false, nil))
	assert.Nil(t, p.Pop(c.Stack(), false, nil), "refused pop is not a change")
	assert.Equal(t, 3, changes)
}

func TestForeignStackPanics(t *testing.T) {
	a, b := New(Options{}), New(Options{})
	stack := b.NewStack()

	assert.Panics(t, func() { a.Push(stack, nil, false, nil) })
}

func TestWindow(t *testing.T) {
	p := New(Options{})
	w := NewWindow()
	assert.False(t, w.Visible())

	s := p.NewStack()
	w.SetRoot(s)
	assert.True(t, w.Visible())
	assert.Equal(t, s, w.Root())

	w.Hide()
	assert.False(t, w.Visible())
	assert.Equal(t, 1, w.RootChanges())
}
