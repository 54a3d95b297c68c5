package catalog

import "github.com/BrandonKowalski/coordinator/pkg/coordinator"

// Screen is an embeddable screen base carrying the catalog entry it was built from.
//
//	type FooScreen struct{ catalog.Screen[*FooCoordinator] }
//
//	var FooRoot = catalog.Bind(cat, "foo", func(c *FooCoordinator, e catalog.Entry) *FooScreen {
//	    return &FooScreen{catalog.NewScreen(c, e)}
//	})
type Screen[C coordinator.Coordinator] struct {
	coordinator.ScreenBinding[C]
	entry Entry
}

func NewScreen[C coordinator.Coordinator](c C, entry Entry) Screen[C] {
	return Screen[C]{
		ScreenBinding: coordinator.NewBinding(c, entry.ID),
		entry:         entry,
	}
}

// Title returns the localized title.
func (s Screen[C]) Title() string {
	return s.entry.Title
}

// Entry returns the declaration the screen was built from.
func (s Screen[C]) Entry() Entry {
	return s.entry
}
