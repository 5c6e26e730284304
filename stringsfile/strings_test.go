package stringsfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	data := []byte(`"greeting" = "Hello";
"farewell" = "Goodbye";
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := f.Get("greeting"); got != "Hello" {
		t.Errorf("greeting = %q, want %q", got, "Hello")
	}
	if got, _ := f.Get("farewell"); got != "Goodbye" {
		t.Errorf("farewell = %q, want %q", got, "Goodbye")
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
}

func TestParse_Comments(t *testing.T) {
	data := []byte(`/* Block comment
spanning lines */
"a" = "1";
// line comment
"b" = "2"; /* trailing */
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestParse_CommentedOutStatementIgnored(t *testing.T) {
	data := []byte(`/* "hidden" = "1"; */
"visible" = "2";
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.Get("hidden"); ok {
		t.Error("commented-out statement should not be parsed")
	}
	if _, ok := f.Get("visible"); !ok {
		t.Error("visible statement missing")
	}
}

func TestParse_EscapedQuotes(t *testing.T) {
	data := []byte(`"say" = "He said \"hi\"";`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	// Escapes are captured verbatim, not interpreted.
	if got, _ := f.Get("say"); got != `He said \"hi\"` {
		t.Errorf("say = %q, want %q", got, `He said \"hi\"`)
	}
}

func TestParse_OtherEscapesPreserved(t *testing.T) {
	data := []byte(`"multi" = "line one\nline two";`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := f.Get("multi"); got != `line one\nline two` {
		t.Errorf("multi = %q, want %q", got, `line one\nline two`)
	}
}

func TestParse_FlexibleWhitespace(t *testing.T) {
	data := []byte(`"tight"="a";
"loose"   =   "b"   ;
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := f.Get("tight"); got != "a" {
		t.Errorf("tight = %q, want %q", got, "a")
	}
	if got, _ := f.Get("loose"); got != "b" {
		t.Errorf("loose = %q, want %q", got, "b")
	}
}

func TestParse_DuplicateKeepsFirstValue(t *testing.T) {
	data := []byte(`"dup" = "1";
"dup" = "2";
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := f.Get("dup"); got != "1" {
		t.Errorf("dup = %q, want %q (first occurrence)", got, "1")
	}
	errs := f.Errors()
	if len(errs) != 1 || errs[0] != "Duplicate key: dup" {
		t.Errorf("Errors() = %v, want one duplicate-key error", errs)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}

func TestParse_MalformedFragmentSkipped(t *testing.T) {
	data := []byte(`"ok" = "fine";
"broken" = "no terminator"
"also_ok" = "fine";
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	// The unterminated statement is simply not recognized; parsing
	// continues without a structural error.
	if _, ok := f.Get("ok"); !ok {
		t.Error("ok missing")
	}
	if len(f.Errors()) != 0 {
		t.Errorf("Errors() = %v, want none for malformed fragments", f.Errors())
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	data := []byte(`"z" = "1";
"a" = "2";
"m" = "3";
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v (source order)", got, want)
	}
}

func TestParse_EmptyValue(t *testing.T) {
	data := []byte(`"empty" = "";`)
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := f.Get("empty")
	if !ok || got != "" {
		t.Errorf("empty = %q, %v; want empty string present", got, ok)
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.strings")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Localizable.strings")
	if err := os.WriteFile(path, []byte(`"k" = "v";`), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := f.Get("k"); got != "v" {
		t.Errorf("k = %q, want %q", got, "v")
	}
}
