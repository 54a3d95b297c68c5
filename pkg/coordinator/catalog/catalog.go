// Package catalog resolves screen ids against TOML screen group declarations.
//
// A catalog file declares which screens belong to which group:
//
//	[groups.home]
//	title = "Home"
//
//	[[groups.home.screens]]
//	id = "home"
//	title = "Home"
//	message_id = "home.title"
//
// Bind turns a constructor into a coordinator.ScreenType whose factory only
// succeeds for coordinators whose group declares the screen id.
package catalog

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
)

// Entry is a screen declaration.
type Entry struct {
	ID        string `toml:"id"`
	Title     string `toml:"title"`      // Fallback title
	MessageID string `toml:"message_id"` // Translation key for the title
	Group     string `toml:"-"`
}

// Group is a named set of screen declarations.
type Group struct {
	ID      string  `toml:"-"`
	Title   string  `toml:"title"`
	Screens []Entry `toml:"screens"`
}

type file struct {
	Groups map[string]*Group `toml:"groups"`
}

// Catalog holds screen groups and the translations used for titles.
type Catalog struct {
	groups map[string]*Group

	mu        sync.RWMutex
	bundle    *i18n.Bundle
	lang      language.Tag
	localizer *i18n.Localizer
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog TOML. Unknown keys, empty ids and duplicate ids are errors.
func Parse(data []byte) (*Catalog, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("catalog: unknown keys: %s", strings.Join(keys, ", "))
	}

	for id, group := range f.Groups {
		group.ID = id
		seen := make(map[string]bool, len(group.Screens))
		for i := range group.Screens {
			entry := &group.Screens[i]
			if entry.ID == "" {
				return nil, fmt.Errorf("catalog: group %q: screen %d has no id", id, i)
			}
			if seen[entry.ID] {
				return nil, fmt.Errorf("catalog: group %q: duplicate screen %q", id, entry.ID)
			}
			seen[entry.ID] = true
			entry.Group = id
		}
	}

	if f.Groups == nil {
		f.Groups = make(map[string]*Group)
	}

	lang := DefaultLanguage()
	bundle := i18n.NewBundle(lang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return &Catalog{
		groups:    f.Groups,
		bundle:    bundle,
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang.String()),
	}, nil
}

// Groups returns the declared group ids, sorted.
func (c *Catalog) Groups() []string {
	ids := make([]string, 0, len(c.groups))
	for id := range c.groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Group returns a declared group.
func (c *Catalog) Group(id string) (Group, bool) {
	g, ok := c.groups[id]
	if !ok {
		return Group{}, false
	}
	out := *g
	out.Screens = slices.Clone(g.Screens)
	return out, true
}

// Lookup finds a screen declaration. The title is not localized.
func (c *Catalog) Lookup(group, screenID string) (Entry, bool) {
	g, ok := c.groups[group]
	if !ok {
		return Entry{}, false
	}
	for _, entry := range g.Screens {
		if entry.ID == screenID {
			return entry, true
		}
	}
	return Entry{}, false
}

// Resolve finds a screen declaration and localizes its title.
// Returns coordinator.ErrScreenNotFound when the group does not declare the screen.
func (c *Catalog) Resolve(group, screenID string) (Entry, error) {
	entry, ok := c.Lookup(group, screenID)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q is not declared in group %q", coordinator.ErrScreenNotFound, screenID, group)
	}
	entry.Title = c.Title(entry)
	return entry, nil
}

// Bind declares a screen type whose factory resolves screenID in the group of
// the requesting coordinator and hands the localized entry to ctor.
func Bind[C coordinator.Coordinator, V coordinator.Coordinated[C]](c *Catalog, screenID string, ctor func(C, Entry) V) coordinator.ScreenType[C, V] {
	factory := coordinator.FactoryFunc[C, V](func(owner C, id string) (V, error) {
		entry, err := c.Resolve(owner.Node().GroupID(), id)
		if err != nil {
			var zero V
			return zero, err
		}
		return ctor(owner, entry), nil
	})
	return coordinator.NewScreenType[C, V](screenID, factory)
}

// DefaultLanguage returns the language titles resolve to before SetLanguage is called.
func DefaultLanguage() language.Tag {
	return language.MustParse(constants.DefaultLanguage)
}
