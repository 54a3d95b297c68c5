package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/catalog"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/memstack"
)

type homeCoordinator struct{ *coordinator.Base }

type homeScreen struct{ catalog.Screen[*homeCoordinator] }

func newHomeScreen(c *homeCoordinator, e catalog.Entry) *homeScreen {
	return &homeScreen{catalog.NewScreen(c, e)}
}

func load(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load("testdata/screens.toml")
	require.NoError(t, err)
	return cat
}

func TestLoad(t *testing.T) {
	cat := load(t)

	assert.Equal(t, []string{"foo", "home"}, cat.Groups())

	group, ok := cat.Group("home")
	require.True(t, ok)
	assert.Equal(t, "home", group.ID)
	assert.Len(t, group.Screens, 2)

	entry, ok := cat.Lookup("home", "settings")
	require.True(t, ok)
	assert.Equal(t, catalog.Entry{ID: "settings", Title: "Settings", Group: "home"}, entry)

	_, ok = cat.Lookup("foo", "settings")
	assert.False(t, ok)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "unknown key",
			data: "[groups.home]\ncolour = \"red\"\n",
		},
		{
			name: "missing id",
			data: "[[groups.home.screens]]\ntitle = \"Home\"\n",
		},
		{
			name: "duplicate id",
			data: "[[groups.home.screens]]\nid = \"a\"\n[[groups.home.screens]]\nid = \"a\"\n",
		},
		{
			name: "malformed",
			data: "[groups.home\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseEmptyCatalog(t *testing.T) {
	cat, err := catalog.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cat.Groups())
}

func TestBindResolvesAgainstCoordinatorGroup(t *testing.T) {
	cat := load(t)
	presenter := memstack.New(memstack.Options{})
	root := catalog.Bind(cat, "home", newHomeScreen)

	t.Run("declared screen is created with its entry", func(t *testing.T) {
		home := &homeCoordinator{coordinator.NewBase("home", presenter)}

		screen, err := coordinator.Attach(home, memstack.NewWindow(), root)
		require.NoError(t, err)
		assert.Equal(t, "Home", screen.Title())
		assert.Equal(t, "home", screen.Entry().Group)
		assert.Same(t, home, screen.Coordinator())
	})

	t.Run("group without the screen reports not found", func(t *testing.T) {
		misplaced := &homeCoordinator{coordinator.NewBase("foo", presenter)}

		_, err := coordinator.Push(misplaced, root, coordinator.DefaultTransitionOptions())
		require.Error(t, err)
		assert.True(t, coordinator.IsScreenNotFound(err))
		assert.Zero(t, misplaced.Stack().Len())
	})
}

func TestTitlesFollowLanguage(t *testing.T) {
	cat := load(t)
	require.NoError(t, cat.LoadMessages("testdata/active.fr.toml"))

	home, _ := cat.Lookup("home", "home")
	settings, _ := cat.Lookup("home", "settings")
	foo, _ := cat.Lookup("foo", "foo")

	assert.Equal(t, "Home", cat.Title(home))

	require.NoError(t, cat.SetLanguage("fr-CA"))
	assert.Equal(t, "fr-CA", cat.Language().String())
	assert.Equal(t, "Accueil", cat.Title(home))
	assert.Equal(t, "Settings", cat.Title(settings), "entries without a message id keep their title")
	assert.Equal(t, "Foo", cat.Title(foo), "missing translations fall back")

	entry, err := cat.Resolve("home", "home")
	require.NoError(t, err)
	assert.Equal(t, "Accueil", entry.Title)
}

func TestSetLanguageRejectsInvalidTag(t *testing.T) {
	cat := load(t)
	assert.Error(t, cat.SetLanguage("not a language"))
	assert.Equal(t, catalog.DefaultLanguage(), cat.Language())
}
