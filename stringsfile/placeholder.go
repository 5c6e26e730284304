package stringsfile

import "regexp"

// placeholderRe matches printf-style format specifiers as used by
// Foundation string formatting: %@, %d, %ld, %lld, %.2f, %1$@, %%, etc.
// Shape: optional positional index (N$), flags, width, precision,
// length modifier, then a mandatory conversion character.
var placeholderRe = regexp.MustCompile(`%(?:\d+\$)?[-+0 #]*(?:\d+)?(?:\.\d+)?(?:hh|h|l|ll|L|z|j|t)?[diouxXeEfFgGaAcspn@%]`)

// Placeholders returns the format specifiers found in value, in order
// of appearance. Matching is purely lexical: no validation beyond the
// syntactic shape is performed.
func Placeholders(value string) []string {
	return placeholderRe.FindAllString(value, -1)
}
