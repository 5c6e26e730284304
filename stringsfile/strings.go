// Package stringsfile implements reading of Apple .strings string tables.
//
// Format: quoted key/value statements terminated by a semicolon:
//
//	/* comment */
//	"greeting" = "Hello, %@!";
//
// Both /* ... */ block comments (possibly spanning lines) and // line
// comments are recognized. Files may be encoded as UTF-8 or UTF-16
// (with BOM); decoding tries UTF-8 first and falls back to UTF-16.
//
// File naming convention: each language is stored as a separate file:
//
//	Resources/en.lproj/Localizable.strings  (primary)
//	Resources/fr.lproj/Localizable.strings  (translation)
//
// The File type maintains first-occurrence entry order so that diff and
// sync output is stable for a given source file.
package stringsfile

import (
	"fmt"
	"os"
	"regexp"
)

// quoted matches a double-quoted segment in which a literal quote is
// escaped as \" and any other backslash escape is preserved verbatim.
const quoted = `"([^"\\]*(?:\\.[^"\\]*)*)"`

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`(?m)//.*$`)
	statementRe    = regexp.MustCompile(quoted + `\s*=\s*` + quoted + `\s*;`)
)

// Entry is a single key/value statement.
type Entry struct {
	Key   string
	Value string
}

// File represents a parsed .strings table.
type File struct {
	// entries stores statements in first-occurrence order.
	entries []Entry
	// index maps key → index in entries. First occurrence wins.
	index map[string]int
	// errs collects structural errors (duplicate keys).
	errs []string
}

// ParseFile reads and parses a .strings file from disk, trying UTF-8
// first and falling back to UTF-16.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse parses .strings content from a byte slice.
//
// Malformed fragments are not recognized as statements and are skipped;
// duplicate keys are recorded as structural errors while the first
// occurrence remains the value of record.
func Parse(data []byte) (*File, error) {
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}

	// Comments carry no semantic weight; strip them before scanning.
	text = blockCommentRe.ReplaceAllString(text, "")
	text = lineCommentRe.ReplaceAllString(text, "")

	f := &File{index: make(map[string]int)}
	for _, m := range statementRe.FindAllStringSubmatch(text, -1) {
		key, value := m[1], m[2]
		if _, exists := f.index[key]; exists {
			f.errs = append(f.errs, "Duplicate key: "+key)
			continue
		}
		f.index[key] = len(f.entries)
		f.entries = append(f.entries, Entry{Key: key, Value: value})
	}

	return f, nil
}

// Keys returns all keys in first-occurrence order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// KeySet returns the keys as a lookup set.
func (f *File) KeySet() map[string]bool {
	set := make(map[string]bool, len(f.entries))
	for _, e := range f.entries {
		set[e.Key] = true
	}
	return set
}

// Get returns the value of record for key and whether it was found.
func (f *File) Get(key string) (string, bool) {
	if idx, ok := f.index[key]; ok {
		return f.entries[idx].Value, true
	}
	return "", false
}

// Len returns the number of distinct keys.
func (f *File) Len() int {
	return len(f.entries)
}

// Entries returns all statements in first-occurrence order.
func (f *File) Entries() []Entry {
	return f.entries
}

// Errors returns the structural errors found while parsing.
func (f *File) Errors() []string {
	return f.errs
}
