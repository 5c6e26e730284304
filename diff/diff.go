// Package diff compares target language tables against the primary
// table of a catalog.
//
// For every non-primary language it reports missing keys, extra keys,
// untranslated values, placeholder mismatches, and a completion
// percentage. All key lists are sorted so that reports are stable
// across runs and platforms.
package diff

import (
	"math"
	"sort"
	"strings"

	"github.com/minios-linux/stringskit/catalog"
	"github.com/minios-linux/stringskit/stringsfile"
)

// Language status values.
const (
	StatusOK          = "ok"
	StatusIncomplete  = "incomplete"
	StatusFileMissing = "file_missing"
)

// Mismatch records a placeholder disagreement on one key. Both lists
// are in order of appearance within their source value.
type Mismatch struct {
	Key        string   `json:"key"`
	Primary    []string `json:"primary"`
	Translated []string `json:"translated"`
}

// Result is the comparison outcome for one non-primary language.
type Result struct {
	Lang      string
	Status    string
	TotalKeys int // keys present in this language's table
	Missing   []string
	Extra     []string
	// Untranslated lists keys whose value is byte-identical to a
	// non-empty primary value.
	Untranslated []string
	Mismatches   []Mismatch
	// Completion is 100 × |keys ∩ primary| / |primary|, one decimal.
	Completion float64
}

// Compute produces one Result per non-primary language of the catalog,
// in sorted language order. A language whose table is absent gets a
// degenerate file_missing result with every primary key missing.
func Compute(c *catalog.Catalog) ([]Result, error) {
	primary, err := c.PrimaryTable()
	if err != nil {
		return nil, err
	}
	primaryKeys := primary.Keys()
	sort.Strings(primaryKeys)

	var results []Result
	for _, lang := range c.Languages() {
		if lang == c.Primary {
			continue
		}

		table, ok := c.Table(lang)
		if !ok {
			results = append(results, Result{
				Lang:       lang,
				Status:     StatusFileMissing,
				Missing:    append([]string(nil), primaryKeys...),
				Completion: 0,
			})
			continue
		}

		results = append(results, compare(lang, primary, table))
	}

	return results, nil
}

// compare diffs one parsed target table against the primary table.
func compare(lang string, primary, table *stringsfile.File) Result {
	primarySet := primary.KeySet()
	langSet := table.KeySet()

	r := Result{
		Lang:      lang,
		Status:    StatusOK,
		TotalKeys: table.Len(),
	}

	shared := 0
	for key := range primarySet {
		if !langSet[key] {
			r.Missing = append(r.Missing, key)
			continue
		}
		shared++

		primaryValue, _ := primary.Get(key)
		langValue, _ := table.Get(key)

		pp := stringsfile.Placeholders(primaryValue)
		lp := stringsfile.Placeholders(langValue)
		if !sameMultiset(pp, lp) {
			r.Mismatches = append(r.Mismatches, Mismatch{Key: key, Primary: pp, Translated: lp})
		}

		if langValue == primaryValue && strings.TrimSpace(primaryValue) != "" {
			r.Untranslated = append(r.Untranslated, key)
		}
	}
	for key := range langSet {
		if !primarySet[key] {
			r.Extra = append(r.Extra, key)
		}
	}

	sort.Strings(r.Missing)
	sort.Strings(r.Extra)
	sort.Strings(r.Untranslated)
	sort.Slice(r.Mismatches, func(i, j int) bool { return r.Mismatches[i].Key < r.Mismatches[j].Key })

	r.Completion = completion(shared, len(primarySet))
	if len(r.Missing) > 0 {
		r.Status = StatusIncomplete
	}

	return r
}

// sameMultiset compares two placeholder lists as sorted sequences:
// order within the value is ignored, counts are not.
func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// completion returns 100 × shared / total rounded to one decimal.
// An empty primary table counts as fully complete by convention.
func completion(shared, total int) float64 {
	if total == 0 {
		return 100
	}
	pct := float64(shared) / float64(total) * 100
	return math.Round(pct*10) / 10
}

// IssueCount is the headline count for a set of results: missing-key
// occurrences plus placeholder mismatches across all languages. Extra
// and untranslated keys are reported but not counted here.
func IssueCount(results []Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Missing) + len(r.Mismatches)
	}
	return n
}
