// Package demo wires sample coordinators against the in-memory presenter.
package demo

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/catalog"
)

//go:embed catalog.toml
var catalogTOML []byte

//go:embed messages/*.toml
var messages embed.FS

// HomeCoordinator owns the "home" screen group.
type HomeCoordinator struct {
	*coordinator.Base
	Visits int
}

// FooCoordinator owns the "foo" screen group and is always presented as a child.
type FooCoordinator struct {
	*coordinator.Base
	Index int
}

type HomeScreen struct{ catalog.Screen[*HomeCoordinator] }

type HomeSubScreen struct{ catalog.Screen[*HomeCoordinator] }

type FooScreen struct{ catalog.Screen[*FooCoordinator] }

// Screens holds the screen types of the sample flows.
type Screens struct {
	Home      coordinator.ScreenType[*HomeCoordinator, *HomeScreen]
	HomeSub   coordinator.ScreenType[*HomeCoordinator, *HomeSubScreen]
	HomeSheet coordinator.ScreenType[*HomeCoordinator, *HomeSubScreen]
	Foo       coordinator.ScreenType[*FooCoordinator, *FooScreen]
	FooDetail coordinator.ScreenType[*FooCoordinator, *FooScreen]
}

// DefaultCatalog returns the embedded catalog with its translations loaded.
func DefaultCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Parse(catalogTOML)
	if err != nil {
		return nil, err
	}
	if err := AddMessages(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// AddMessages loads the embedded translations into cat.
func AddMessages(cat *catalog.Catalog) error {
	return fs.WalkDir(messages, "messages", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := messages.ReadFile(p)
		if err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		return cat.AddMessages(path.Base(p), data)
	})
}

// BindScreens declares the sample screen types against cat.
func BindScreens(cat *catalog.Catalog) Screens {
	home := func(c *HomeCoordinator, e catalog.Entry) *HomeScreen {
		c.Visits++
		return &HomeScreen{catalog.NewScreen(c, e)}
	}
	sub := func(c *HomeCoordinator, e catalog.Entry) *HomeSubScreen {
		c.Visits++
		return &HomeSubScreen{catalog.NewScreen(c, e)}
	}
	foo := func(c *FooCoordinator, e catalog.Entry) *FooScreen {
		c.Index++
		return &FooScreen{catalog.NewScreen(c, e)}
	}

	return Screens{
		Home:      catalog.Bind(cat, "home", home),
		HomeSub:   catalog.Bind(cat, "home.sub", sub),
		HomeSheet: catalog.Bind(cat, "home.sheet", sub),
		Foo:       catalog.Bind(cat, "foo", foo),
		FooDetail: catalog.Bind(cat, "foo.detail", foo),
	}
}
