package coordinator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
)

func TestPresentationStyleNames(t *testing.T) {
	assert.Equal(t, "FormSheet", coordinator.DefaultPresentationStyle.GetName())
	assert.Equal(t, "Unknown", coordinator.PresentationStyle(99).GetName())
	assert.True(t, coordinator.PresentationStyleOverCurrentContext.CoversContext())
	assert.False(t, coordinator.PresentationStyleFullScreen.CoversContext())
}

func TestTransitionOptionsBuilders(t *testing.T) {
	called := false
	opts := coordinator.DefaultTransitionOptions().Instant().Then(func(bool) { called = true })

	assert.False(t, opts.Animated)
	assert.True(t, opts.Embed)
	assert.Equal(t, coordinator.PresentationStyleFormSheet, opts.Style)

	opts.OnComplete(true)
	assert.True(t, called)
	assert.True(t, coordinator.DefaultTransitionOptions().Animated)
}

func TestTransitionErrorFormatting(t *testing.T) {
	err := coordinator.NewTransitionError("push", "home", "detail", coordinator.ErrScreenNotFound)
	assert.Equal(t, "coordinator: push home/detail: screen not found", err.Error())
	assert.True(t, coordinator.IsScreenNotFound(err))
	assert.False(t, coordinator.IsOwnershipMismatch(err))

	dismiss := coordinator.NewTransitionError("dismiss", "foo", "", coordinator.ErrNoPresentation)
	assert.Equal(t, "coordinator: dismiss foo: no presentation to close", dismiss.Error())

	wrapped := errors.Join(errors.New("context"), dismiss)
	assert.True(t, coordinator.IsNoPresentation(wrapped))
}
