// Package project locates per-language string tables inside a module
// tree of the shape:
//
//	<module>/Resources/<lang>.lproj/Localizable.strings
//
// Detection is strict about preconditions: a missing Resources
// directory, no .lproj directories, or a missing primary-language
// table each abort the whole operation before any comparison runs.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minios-linux/stringskit/catalog"
	"github.com/minios-linux/stringskit/stringsfile"
)

// Defaults, overridable via .stringskit.yaml.
const (
	DefaultResourcesDir = "Resources"
	DefaultTableName    = "Localizable.strings"
	DefaultPrimary      = "en"
)

const lprojSuffix = ".lproj"

// Project holds the resolved layout of one module.
type Project struct {
	// Root is the module directory as given on the command line.
	Root string
	// Name is the module's base name, used to label reports.
	Name string
	// ResourcesDir is the directory under Root holding *.lproj dirs.
	ResourcesDir string
	// TableName is the string-table file name inside each .lproj dir.
	TableName string
	// Primary is the reference language tag.
	Primary string
	// Languages is the sorted list of discovered language tags,
	// primary included.
	Languages []string
	// Strict makes validate exit non-zero when issues are found.
	Strict bool
}

// Detect resolves a module directory into a Project. Configuration
// from .stringskit.yaml, if present, overrides the defaults.
func Detect(root string) (*Project, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("path does not exist: %s", root)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Root:         root,
		Name:         filepath.Base(abs),
		ResourcesDir: DefaultResourcesDir,
		TableName:    DefaultTableName,
		Primary:      DefaultPrimary,
	}
	if cfg != nil {
		if cfg.ResourcesDir != "" {
			p.ResourcesDir = cfg.ResourcesDir
		}
		if cfg.TableName != "" {
			p.TableName = cfg.TableName
		}
		if cfg.PrimaryLanguage != "" {
			p.Primary = cfg.PrimaryLanguage
		}
		p.Strict = cfg.Strict
	}

	resources := filepath.Join(root, p.ResourcesDir)
	if info, err := os.Stat(resources); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("resources directory not found: %s", resources)
	}

	langs, err := discoverLanguages(resources)
	if err != nil {
		return nil, err
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no %s directories found in %s", lprojSuffix, resources)
	}
	if cfg != nil && len(cfg.Languages) > 0 {
		langs = intersect(langs, cfg.Languages, p.Primary)
	}
	p.Languages = langs

	if !contains(p.Languages, p.Primary) {
		return nil, fmt.Errorf("primary language directory not found: %s", p.LprojDir(p.Primary))
	}
	if _, err := os.Stat(p.TablePath(p.Primary)); err != nil {
		return nil, fmt.Errorf("primary language table not found: %s", p.TablePath(p.Primary))
	}

	return p, nil
}

// discoverLanguages lists the language tags of all *.lproj directories
// under resources, sorted for reproducible output.
func discoverLanguages(resources string) ([]string, error) {
	entries, err := os.ReadDir(resources)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resources, err)
	}

	var langs []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), lprojSuffix) {
			continue
		}
		langs = append(langs, strings.TrimSuffix(entry.Name(), lprojSuffix))
	}
	sort.Strings(langs)
	return langs, nil
}

// LprojDir returns the .lproj directory for a language.
func (p *Project) LprojDir(lang string) string {
	return filepath.Join(p.Root, p.ResourcesDir, lang+lprojSuffix)
}

// TablePath returns the string-table path for a language.
func (p *Project) TablePath(lang string) string {
	return filepath.Join(p.LprojDir(lang), p.TableName)
}

// LoadCatalog parses every discovered language's string table into a
// fresh catalog. Languages whose table file is absent get no table
// (reported downstream as file_missing); files that exist but cannot
// be decoded are recorded as per-language file errors. Absence of the
// primary table is a hard failure.
func (p *Project) LoadCatalog() (*catalog.Catalog, error) {
	c := catalog.New(p.Primary, p.Languages)

	for _, lang := range p.Languages {
		path := p.TablePath(lang)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		table, err := stringsfile.ParseFile(path)
		if err != nil {
			c.AddError(lang, err.Error())
			continue
		}
		c.Add(lang, table)
	}

	if _, err := c.PrimaryTable(); err != nil {
		return nil, err
	}
	return c, nil
}

// intersect filters discovered languages by the configured list,
// always keeping the primary language.
func intersect(discovered, configured []string, primary string) []string {
	want := make(map[string]bool, len(configured))
	for _, lang := range configured {
		want[strings.TrimSpace(lang)] = true
	}
	var out []string
	for _, lang := range discovered {
		if want[lang] || lang == primary {
			out = append(out, lang)
		}
	}
	return out
}

func contains(langs []string, lang string) bool {
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}
