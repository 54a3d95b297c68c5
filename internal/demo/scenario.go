package demo

import (
	"fmt"
	"io"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/catalog"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/memstack"
)

// RunScenario attaches home, presents a foo flow, dismisses it from the foo
// screen and dismisses it again, writing the presentation chain after each step.
func RunScenario(w io.Writer, cat *catalog.Catalog) error {
	presenter := memstack.New(memstack.Options{})
	app := NewApp(cat, presenter, nil)

	if err := app.Start(); err != nil {
		return err
	}
	presenter.Settle()
	report(w, "attach", app)

	opts := coordinator.DefaultTransitionOptions()
	foo, err := app.PresentFoo(opts.Then(func(ok bool) {
		fmt.Fprintf(w, "present completed: %t\n", ok)
	}))
	if err != nil {
		return err
	}
	presenter.Settle()
	report(w, "present foo", app)

	child := foo.Coordinator()
	fmt.Fprintf(w, "foo parent: %s\n", child.Parent().GroupID())

	dismiss := opts.Then(func(ok bool) {
		fmt.Fprintf(w, "dismiss completed: %t\n", ok)
	})
	if err := child.Dismiss(dismiss); err != nil {
		return err
	}
	if err := child.Dismiss(dismiss); err != nil {
		fmt.Fprintf(w, "second dismiss: %v\n", err)
	}
	presenter.Settle()
	report(w, "dismiss foo", app)

	fmt.Fprintf(w, "foo has parent: %t\n", child.HasParent())
	return nil
}

func report(w io.Writer, step string, app *App) {
	fmt.Fprintf(w, "== %s\n", step)
	for _, line := range app.Describe() {
		fmt.Fprintln(w, line)
	}
}
