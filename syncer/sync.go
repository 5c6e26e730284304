// Package syncer backfills missing keys into target string tables.
//
// For each incomplete language with an existing file it appends one
// block per missing key, using the primary language's value verbatim
// as a placeholder and a marker comment flagging it for translation.
// Existing file content is treated as opaque text: it is never
// re-parsed or rewritten, only appended to.
package syncer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/minios-linux/stringskit/catalog"
	"github.com/minios-linux/stringskit/diff"
	"github.com/minios-linux/stringskit/stringsfile"
)

// Marker is the comment placed above every backfilled entry.
const Marker = "TODO: Translate from English"

// Block formats one backfilled entry. Key and value are emitted as
// captured from the parsed primary table; internal escaping is left
// unchanged, no re-escaping is performed.
func Block(key, value string) string {
	return fmt.Sprintf("\n/* %s */\n\"%s\" = \"%s\";", Marker, key, value)
}

// AppendText builds the text to append for the given missing keys,
// in sorted key order. Keys absent from the primary table are skipped.
func AppendText(primary *stringsfile.File, missing []string) string {
	keys := append([]string(nil), missing...)
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value, ok := primary.Get(key)
		if !ok {
			continue
		}
		b.WriteString(Block(key, value))
	}
	return b.String()
}

// Apply appends text to the file at path, with exactly one blank line
// between the trimmed existing content and the first block, and a
// single trailing newline. The result is written as UTF-8 regardless
// of the source encoding.
func Apply(path, text string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	content, err := stringsfile.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	updated := strings.TrimRight(content, " \t\r\n") + "\n" + text + "\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// PathFunc resolves a language tag to its string-table path.
type PathFunc func(lang string) string

// Run applies the diff results to disk and returns the paths of the
// files that were modified, in sorted language order.
//
// The primary language, languages with no missing keys, and languages
// whose file does not exist are left untouched: sync only amends
// existing files, it never creates them.
func Run(c *catalog.Catalog, results []diff.Result, path PathFunc) ([]string, error) {
	primary, err := c.PrimaryTable()
	if err != nil {
		return nil, err
	}

	var synced []string
	for _, r := range results {
		if r.Status == diff.StatusFileMissing || len(r.Missing) == 0 {
			continue
		}
		target := path(r.Lang)
		if err := Apply(target, AppendText(primary, r.Missing)); err != nil {
			return synced, err
		}
		synced = append(synced, target)
	}
	return synced, nil
}
