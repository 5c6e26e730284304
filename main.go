// stringskit — validate and sync Apple .strings string tables across languages.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minios-linux/stringskit/diff"
	"github.com/minios-linux/stringskit/i18n"
	"github.com/minios-linux/stringskit/langmeta"
	"github.com/minios-linux/stringskit/project"
	"github.com/minios-linux/stringskit/report"
	"github.com/minios-linux/stringskit/syncer"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stringskit",
		Short: "Validate and sync Apple .strings tables across languages",
		Long: `stringskit — .strings string-table validator and synchronizer.

Compares every language's Localizable.strings against the primary
language (en by default) inside a module tree of the shape
Resources/<lang>.lproj/Localizable.strings.

Commands:
  status      Show per-language translation completeness
  validate    Report missing/extra/untranslated keys and placeholder mismatches
  sync        Backfill missing keys with primary-language placeholder values

Settings such as the primary language or the resources directory can be
overridden with a .stringskit.yaml file in the module root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Module root directory")

	root.AddCommand(
		newStatusCmd(),
		newValidateCmd(),
		newSyncCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stringskit version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// validate (read-only: JSON report on stdout)
// ---------------------------------------------------------------------------

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report translation issues as JSON",
		Long: `Compare every language's string table against the primary language.

The report lists missing keys, extra keys, untranslated values, and
placeholder mismatches per language, plus per-file parse errors. It is
written to stdout as JSON; diagnostics go to stderr. Files are never
modified.

With --strict (or strict: true in .stringskit.yaml), a positive issue
count makes the command exit non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when issues are found")

	return cmd
}

func runValidate(strict bool) error {
	proj, err := project.Detect(rootDir)
	if err != nil {
		return err
	}
	logInfo(i18n.T("Validating string tables in %s"), proj.Name)

	rep, results, err := buildReport(proj, time.Now())
	if err != nil {
		return err
	}
	if err := printReport(rep); err != nil {
		return err
	}

	count := diff.IssueCount(results)
	if count == 0 {
		logSuccess(i18n.T("No issues found"))
		return nil
	}
	logWarning(i18n.N("Found %d issue", "Found %d issues", count), count)
	if strict || proj.Strict {
		return fmt.Errorf("%d issues found", count)
	}
	return nil
}

// ---------------------------------------------------------------------------
// sync (backfill missing keys, then JSON report on stdout)
// ---------------------------------------------------------------------------

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Backfill missing keys from the primary language",
		Long: `Append missing keys to every incomplete language's string table.

Each backfilled entry carries the primary language's value verbatim and
a TODO marker comment for the translator. The primary language's file,
complete languages, and languages whose file does not exist are left
untouched. The report (reflecting the pre-sync state) is written to
stdout as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync()
		},
	}

	return cmd
}

func runSync() error {
	proj, err := project.Detect(rootDir)
	if err != nil {
		return err
	}
	logInfo(i18n.T("Syncing missing translations in %s"), proj.Name)

	c, err := proj.LoadCatalog()
	if err != nil {
		return err
	}
	results, err := diff.Compute(c)
	if err != nil {
		return err
	}

	synced, syncErr := syncer.Run(c, results, proj.TablePath)

	rep, err := report.Build(proj.Name, c, results, time.Now())
	if err != nil {
		return err
	}
	rep.SyncedFiles = synced
	if err := printReport(rep); err != nil {
		return err
	}

	if syncErr != nil {
		return syncErr
	}
	if len(synced) == 0 {
		logSuccess(i18n.T("All languages are complete"))
	} else {
		logSuccess(i18n.N("Backfilled %d file", "Backfilled %d files", len(synced)), len(synced))
	}
	return nil
}

// buildReport loads the catalog, computes the diff, and assembles the
// report in one pass.
func buildReport(proj *project.Project, now time.Time) (*report.Report, []diff.Result, error) {
	c, err := proj.LoadCatalog()
	if err != nil {
		return nil, nil, err
	}
	results, err := diff.Compute(c)
	if err != nil {
		return nil, nil, err
	}
	rep, err := report.Build(proj.Name, c, results, now)
	if err != nil {
		return nil, nil, err
	}
	return rep, results, nil
}

func printReport(rep *report.Report) error {
	data, err := rep.Marshal()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// ---------------------------------------------------------------------------
// status (read-only: human-readable completeness table)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show per-language translation completeness",
		Long: `Show the module layout and a per-language completeness table.

Displays the primary language, total key count, and for every other
language its completion percentage, missing/extra/untranslated counts,
and placeholder mismatches. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}

	return cmd
}

func runStatus() error {
	proj, err := project.Detect(rootDir)
	if err != nil {
		return err
	}
	c, err := proj.LoadCatalog()
	if err != nil {
		return err
	}
	results, err := diff.Compute(c)
	if err != nil {
		return err
	}
	primary, err := c.PrimaryTable()
	if err != nil {
		return err
	}

	// Module info header
	fmt.Fprintf(os.Stderr, "\n%sModule%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "  Name:       %s\n", proj.Name)
	fmt.Fprintf(os.Stderr, "  Primary:    %s\n", proj.Primary)
	fmt.Fprintf(os.Stderr, "  Keys:       %d\n", primary.Len())
	fmt.Fprintf(os.Stderr, "  Languages:  %s\n", strings.Join(c.Languages(), ", "))
	fmt.Fprintln(os.Stderr)

	// Completeness table
	fmt.Fprintf(os.Stderr, "%sTranslation Status%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	langWidth := langColumnWidth(c.Languages())
	fmt.Fprintf(os.Stderr, "\n%-*s %-10s %-8s %-8s %-10s %s\n",
		langWidth, "Lang", "Missing", "Extra", "Same", "Mismatch", "Progress")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 58))

	for _, r := range results {
		if r.Status == diff.StatusFileMissing {
			fmt.Fprintf(os.Stderr, "%s %s(no string table)%s\n",
				langCell(r.Lang, langWidth), colorRed, colorReset)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s %-10d %-8d %-8d %-10d %s\n",
			langCell(r.Lang, langWidth),
			len(r.Missing), len(r.Extra), len(r.Untranslated), len(r.Mismatches),
			progressBar(int(r.Completion), 20))
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("─", 58))

	count := diff.IssueCount(results)
	if count == 0 {
		logSuccess(i18n.T("No issues found"))
	} else {
		logWarning(i18n.N("Found %d issue", "Found %d issues", count), count)
	}

	printSuggestedCommands(results)
	return nil
}

func printSuggestedCommands(results []diff.Result) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "%sSuggested Commands%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintln(os.Stderr)

	fmt.Fprintf(os.Stderr, "  # Full JSON report\n")
	fmt.Fprintf(os.Stderr, "  stringskit validate\n\n")

	incomplete := 0
	for _, r := range results {
		if len(r.Missing) > 0 && r.Status != diff.StatusFileMissing {
			incomplete++
		}
	}
	if incomplete > 0 {
		fmt.Fprintf(os.Stderr, "  # Backfill missing keys with primary values\n")
		fmt.Fprintf(os.Stderr, "  stringskit sync\n\n")
	}
}

// ---------------------------------------------------------------------------
// Rendering helpers
// ---------------------------------------------------------------------------

// progressBar renders a colored completion bar of the given width.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	color := colorGreen
	if percent < 50 {
		color = colorRed
	} else if percent < 100 {
		color = colorYellow
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s%s%s %3d%%", color, bar, colorReset, percent)
}

// langCell renders a language tag with its flag, padded to width.
func langCell(lang string, width int) string {
	cell := fmt.Sprintf("%-*s", width, lang)
	if flag := langmeta.Resolve(lang).Flag; flag != "" {
		cell += " " + flag
	} else {
		cell += "   "
	}
	return cell
}

// langColumnWidth returns the widest language tag, for table padding.
func langColumnWidth(langs []string) int {
	width := len("Lang")
	for _, lang := range langs {
		if len(lang) > width {
			width = len(lang)
		}
	}
	return width
}
