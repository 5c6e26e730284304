// Package catalog holds the in-memory aggregate of one primary string
// table plus the target tables it is compared against.
//
// A Catalog is built fresh per invocation from on-disk content and is
// never persisted; syncing rewrites files on disk but not the Catalog
// that produced the diff.
package catalog

import (
	"fmt"
	"sort"

	"github.com/minios-linux/stringskit/stringsfile"
)

// Catalog aggregates all discovered language tables.
type Catalog struct {
	// Primary is the reference language tag (e.g. "en").
	Primary string
	// Tables maps language tag → parsed table. A discovered language
	// whose file is missing or unreadable has no entry here.
	Tables map[string]*stringsfile.File
	// FileErrors maps language tag → read/decode failure description
	// for files that exist but could not be parsed.
	FileErrors map[string]string

	// languages is the sorted list of every discovered language tag,
	// whether or not its table parsed.
	languages []string
}

// New creates a Catalog for the given primary language and discovered
// language tags. Tables are attached afterwards via Add / AddError.
func New(primary string, languages []string) *Catalog {
	langs := append([]string(nil), languages...)
	sort.Strings(langs)
	return &Catalog{
		Primary:    primary,
		Tables:     make(map[string]*stringsfile.File),
		FileErrors: make(map[string]string),
		languages:  langs,
	}
}

// Add attaches a parsed table for a language.
func (c *Catalog) Add(lang string, f *stringsfile.File) {
	c.Tables[lang] = f
}

// AddError records a read/decode failure for a language whose file
// exists but could not be parsed.
func (c *Catalog) AddError(lang, msg string) {
	c.FileErrors[lang] = msg
}

// Languages returns all discovered language tags in sorted order,
// primary included.
func (c *Catalog) Languages() []string {
	return c.languages
}

// Table returns the parsed table for lang and whether one exists.
func (c *Catalog) Table(lang string) (*stringsfile.File, bool) {
	f, ok := c.Tables[lang]
	return f, ok
}

// PrimaryTable returns the primary language's table. It is an error
// for the primary table to be absent: no comparison is possible
// without the reference key set.
func (c *Catalog) PrimaryTable() (*stringsfile.File, error) {
	f, ok := c.Tables[c.Primary]
	if !ok {
		return nil, fmt.Errorf("primary language %q has no parsed string table", c.Primary)
	}
	return f, nil
}
