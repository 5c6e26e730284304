// Package report assembles diff and sync results into the single
// structured document emitted by validate and sync runs.
//
// The report carries no logic of its own beyond assembly and the
// headline issue count; the timestamp is supplied by the caller so
// that a report is a pure function of its inputs.
package report

import (
	"encoding/json"
	"time"

	"github.com/minios-linux/stringskit/catalog"
	"github.com/minios-linux/stringskit/diff"
)

// TimestampLayout is the fixed format used for the summary timestamp.
const TimestampLayout = "2006-01-02T15:04:05"

// Summary is the report overview block.
type Summary struct {
	Module          string   `json:"module"`
	Languages       []string `json:"languages"`
	PrimaryLanguage string   `json:"primary_language"`
	TotalKeys       int      `json:"total_keys"`
	IssuesCount     int      `json:"issues_count"`
	Timestamp       string   `json:"timestamp"`
}

// Issues groups the per-concern findings, each keyed by language tag.
// Languages without findings for a concern have no entry.
type Issues struct {
	MissingKeys           map[string][]string        `json:"missing_keys"`
	ExtraKeys             map[string][]string        `json:"extra_keys"`
	Untranslated          map[string][]string        `json:"untranslated"`
	PlaceholderMismatches map[string][]diff.Mismatch `json:"placeholder_mismatches"`
	ParseErrors           map[string][]string        `json:"parse_errors"`
}

// Language is the per-language status block.
type Language struct {
	Status               string   `json:"status"`
	TotalKeys            int      `json:"total_keys"`
	MissingCount         int      `json:"missing_count"`
	ExtraCount           int      `json:"extra_count"`
	MissingKeys          []string `json:"missing_keys"`
	CompletionPercentage float64  `json:"completion_percentage"`
}

// Report is the complete document for one validate or sync run.
type Report struct {
	Summary     Summary             `json:"summary"`
	Issues      Issues              `json:"issues"`
	Languages   map[string]Language `json:"languages"`
	SyncedFiles []string            `json:"synced_files,omitempty"`
}

// Build assembles a report from a catalog and its diff results. The
// module name labels the report; now supplies the run timestamp.
func Build(module string, c *catalog.Catalog, results []diff.Result, now time.Time) (*Report, error) {
	primary, err := c.PrimaryTable()
	if err != nil {
		return nil, err
	}

	r := &Report{
		Summary: Summary{
			Module:          module,
			Languages:       c.Languages(),
			PrimaryLanguage: c.Primary,
			TotalKeys:       primary.Len(),
			IssuesCount:     diff.IssueCount(results),
			Timestamp:       now.Format(TimestampLayout),
		},
		Issues: Issues{
			MissingKeys:           make(map[string][]string),
			ExtraKeys:             make(map[string][]string),
			Untranslated:          make(map[string][]string),
			PlaceholderMismatches: make(map[string][]diff.Mismatch),
			ParseErrors:           make(map[string][]string),
		},
		Languages: make(map[string]Language),
	}

	for _, res := range results {
		if len(res.Missing) > 0 {
			r.Issues.MissingKeys[res.Lang] = res.Missing
		}
		if len(res.Extra) > 0 {
			r.Issues.ExtraKeys[res.Lang] = res.Extra
		}
		if len(res.Untranslated) > 0 {
			r.Issues.Untranslated[res.Lang] = res.Untranslated
		}
		if len(res.Mismatches) > 0 {
			r.Issues.PlaceholderMismatches[res.Lang] = res.Mismatches
		}

		r.Languages[res.Lang] = Language{
			Status:               res.Status,
			TotalKeys:            res.TotalKeys,
			MissingCount:         len(res.Missing),
			ExtraCount:           len(res.Extra),
			MissingKeys:          res.Missing,
			CompletionPercentage: res.Completion,
		}
	}

	// Structural errors from parsed tables, read/decode failures for
	// the rest.
	for _, lang := range c.Languages() {
		if table, ok := c.Table(lang); ok {
			if errs := table.Errors(); len(errs) > 0 {
				r.Issues.ParseErrors[lang] = errs
			}
		}
	}
	for lang, msg := range c.FileErrors {
		r.Issues.ParseErrors[lang] = append(r.Issues.ParseErrors[lang], msg)
	}

	return r, nil
}

// Marshal renders the report as indented JSON.
func (r *Report) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
