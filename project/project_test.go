package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeModule lays out a module tree with the given per-language table
// contents. A language mapped to an empty string gets an .lproj dir
// with no string table.
func writeModule(t *testing.T, tables map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for lang, content := range tables {
		dir := filepath.Join(root, "Resources", lang+".lproj")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, "Localizable.strings"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestDetect_Defaults(t *testing.T) {
	root := writeModule(t, map[string]string{
		"en": `"a" = "1";`,
		"fr": `"a" = "1";`,
	})
	p, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}
	if p.Primary != "en" {
		t.Errorf("Primary = %q, want en", p.Primary)
	}
	if want := []string{"en", "fr"}; !reflect.DeepEqual(p.Languages, want) {
		t.Errorf("Languages = %v, want %v", p.Languages, want)
	}
	if p.TableName != DefaultTableName || p.ResourcesDir != DefaultResourcesDir {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestDetect_PathDoesNotExist(t *testing.T) {
	if _, err := Detect(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for nonexistent path")
	}
}

func TestDetect_NoResourcesDir(t *testing.T) {
	if _, err := Detect(t.TempDir()); err == nil {
		t.Fatal("expected error when Resources is absent")
	}
}

func TestDetect_NoLprojDirs(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Resources"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := Detect(root); err == nil {
		t.Fatal("expected error when no .lproj directories exist")
	}
}

func TestDetect_MissingPrimaryDirectory(t *testing.T) {
	root := writeModule(t, map[string]string{"fr": `"a" = "1";`})
	if _, err := Detect(root); err == nil {
		t.Fatal("expected error when primary .lproj is absent")
	}
}

func TestDetect_MissingPrimaryTable(t *testing.T) {
	root := writeModule(t, map[string]string{"en": "", "fr": `"a" = "1";`})
	if _, err := Detect(root); err == nil {
		t.Fatal("expected error when primary table file is absent")
	}
}

func TestDetect_ConfigOverrides(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Strings", "de.lproj")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "App.strings"), []byte(`"a" = "1";`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := "primary_language: de\nresources_dir: Strings\ntable_name: App.strings\nstrict: true\n"
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}
	if p.Primary != "de" || p.ResourcesDir != "Strings" || p.TableName != "App.strings" {
		t.Errorf("config not applied: %+v", p)
	}
	if !p.Strict {
		t.Error("Strict = false, want true")
	}
}

func TestDetect_ConfigLanguageFilter(t *testing.T) {
	root := writeModule(t, map[string]string{
		"en": `"a" = "1";`,
		"fr": `"a" = "1";`,
		"de": `"a" = "1";`,
	})
	cfg := "languages: [fr]\n"
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}
	// The primary language is always kept.
	if want := []string{"en", "fr"}; !reflect.DeepEqual(p.Languages, want) {
		t.Errorf("Languages = %v, want %v", p.Languages, want)
	}
}

func TestLoadConfig_AbsentReturnsNil(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Errorf("LoadConfig = %+v, want nil", cfg)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("{unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(root); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadCatalog(t *testing.T) {
	root := writeModule(t, map[string]string{
		"en": `"a" = "1"; "b" = "2";`,
		"fr": `"a" = "1";`,
		"ja": "",
	})
	p, err := Detect(root)
	if err != nil {
		t.Fatal(err)
	}

	c, err := p.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"en", "fr", "ja"}; !reflect.DeepEqual(c.Languages(), want) {
		t.Errorf("Languages() = %v, want %v", c.Languages(), want)
	}
	if _, ok := c.Table("ja"); ok {
		t.Error("ja has no table file and must not have a parsed table")
	}
	if _, ok := c.Table("fr"); !ok {
		t.Error("fr table missing from catalog")
	}
}

func TestTablePath(t *testing.T) {
	p := &Project{Root: "mod", ResourcesDir: "Resources", TableName: "Localizable.strings"}
	want := filepath.Join("mod", "Resources", "fr.lproj", "Localizable.strings")
	if got := p.TablePath("fr"); got != want {
		t.Errorf("TablePath(fr) = %q, want %q", got, want)
	}
}
