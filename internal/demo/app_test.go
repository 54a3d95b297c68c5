package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/memstack"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	app := NewApp(cat, memstack.New(memstack.Options{Immediate: true}), nil)
	require.NoError(t, app.Start())
	return app
}

func TestRunScenario(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RunScenario(&out, cat))

	assert.Equal(t, `== attach
0 home [Home]
present completed: true
== present foo
0 home [Home]
1 foo [Foo] (FormSheet)
foo parent: home
dismiss completed: false
second dismiss: coordinator: dismiss foo: coordinator ownership mismatch
dismiss completed: true
== dismiss foo
0 home [Home]
foo has parent: false
`, out.String())
}

func TestRunScenarioInFrench(t *testing.T) {
	cat, err := DefaultCatalog()
	require.NoError(t, err)
	require.NoError(t, cat.SetLanguage("fr"))

	var out bytes.Buffer
	require.NoError(t, RunScenario(&out, cat))
	assert.Contains(t, out.String(), "0 home [Accueil]")
}

func TestNestedFlows(t *testing.T) {
	app := newTestApp(t)
	opts := coordinator.DefaultTransitionOptions()

	_, err := app.Push(opts)
	require.NoError(t, err)
	_, err = app.PresentFoo(opts)
	require.NoError(t, err)
	_, err = app.Push(opts)
	require.NoError(t, err)
	_, err = app.PresentSheet(opts)
	require.NoError(t, err)
	_, err = app.PresentFoo(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0 home [Home Details]",
		"1 foo [Foo Foo detail] (FormSheet)",
		"2 home [About] (FormSheet)",
		"3 foo [Foo] (FormSheet)",
	}, app.Describe())

	children := app.Children()
	require.Len(t, children, 2)
	assert.Same(t, children[0].Base, children[1].Parent())
	assert.Equal(t, 3, app.Home.Visits, "home, details and sheet screens")

	require.NoError(t, app.Dismiss(opts))
	assert.Len(t, app.Layers(), 3)

	require.NoError(t, app.Dismiss(opts))
	assert.Len(t, app.Layers(), 1)

	err = app.Dismiss(opts)
	assert.True(t, coordinator.IsOwnershipMismatch(err), "home has no parent")
}

func TestDoRunsBoundActions(t *testing.T) {
	app := newTestApp(t)
	var results []bool
	opts := coordinator.DefaultTransitionOptions().Then(func(ok bool) {
		results = append(results, ok)
	})

	status, err := app.Do("p", opts)
	require.NoError(t, err)
	assert.Equal(t, "pushed Details", status)

	status, err = app.Do("m", opts)
	require.NoError(t, err)
	assert.Equal(t, "presented About", status)
	assert.Equal(t, coordinator.PresentationStylePageSheet, app.Layers()[1].Style)

	status, err = app.Do("c", opts)
	require.NoError(t, err)
	assert.Equal(t, "presented foo #1", status)

	status, err = app.Do("d", opts)
	require.NoError(t, err)
	assert.Equal(t, "dismissing", status)
	assert.Equal(t, []bool{true, true, true, true}, results)

	_, err = app.Do("x", opts)
	assert.Error(t, err)
	assert.Empty(t, Action("x"))
	assert.Equal(t, "present foo", Action("c"))
}
