package stringsfile

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw file bytes to a string, attempting UTF-8 first
// and falling back to UTF-16 (BOM-aware, little-endian default).
// Failure under both encodings is an error for the whole file.
func Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("cannot decode as UTF-8 or UTF-16: %w", err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("cannot decode as UTF-8 or UTF-16")
	}
	return string(out), nil
}
