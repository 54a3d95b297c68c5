package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// AddMessages parses a go-i18n message file. The language and format come from
// name, for example "active.fr.toml".
func (c *Catalog) AddMessages(name string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("catalog: messages %s: %w", name, err)
	}
	c.localizer = i18n.NewLocalizer(c.bundle, c.lang.String())
	return nil
}

// LoadMessages reads go-i18n message files from disk.
func (c *Catalog) LoadMessages(paths ...string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		if err := c.AddMessages(filepath.Base(path), data); err != nil {
			return err
		}
	}
	return nil
}

// SetLanguage selects the language titles are resolved in.
func (c *Catalog) SetLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("catalog: language %q: %w", lang, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lang = tag
	c.localizer = i18n.NewLocalizer(c.bundle, tag.String())
	return nil
}

// Language returns the language titles are resolved in.
func (c *Catalog) Language() language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Title returns the entry's title in the catalog language. Entries without a
// message id, or without a translation, use their declared title.
func (c *Catalog) Title(entry Entry) string {
	if entry.MessageID == "" {
		return entry.Title
	}

	c.mu.RLock()
	localizer := c.localizer
	c.mu.RUnlock()

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: entry.MessageID, Other: entry.Title},
	})
	if err != nil || msg == "" {
		return entry.Title
	}
	return msg
}
