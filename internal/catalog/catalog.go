// Package catalog maps display names to the language codes understood by the
// translation and speech services.
package catalog

import (
	"fmt"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
)

// Auto is the source selection that asks for language detection.
const Auto = "auto"

// Catalog is an immutable, ordered language list with O(1) lookups in both
// directions.
type Catalog struct {
	entries []model.LanguageEntry
	byName  map[string]string
	byCode  map[string]string
}

// New builds a catalog. Codes must be unique; for duplicate display names the
// first declared entry wins.
func New(entries []model.LanguageEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]model.LanguageEntry, 0, len(entries)),
		byName:  make(map[string]string, len(entries)),
		byCode:  make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("catalog: empty code for %q", e.Name)
		}
		if _, dup := c.byCode[e.Code]; dup {
			return nil, fmt.Errorf("catalog: duplicate code %q", e.Code)
		}
		c.byCode[e.Code] = e.Name
		if _, seen := c.byName[e.Name]; !seen {
			c.byName[e.Name] = e.Code
		}
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// LookupCode returns the code for a display name. Absence is a normal state
// (nothing selected) and reported through ok.
func (c *Catalog) LookupCode(name string) (string, bool) {
	code, ok := c.byName[name]
	return code, ok
}

// LookupName returns the display name for a code.
func (c *Catalog) LookupName(code string) (string, bool) {
	name, ok := c.byCode[code]
	return name, ok
}

// HasCode reports whether code is in the catalog.
func (c *Catalog) HasCode(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Entries returns the entries in declaration order.
func (c *Catalog) Entries() []model.LanguageEntry {
	out := make([]model.LanguageEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Codes returns the codes in declaration order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Code
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
