// Package textutil provides in-place trimming and ASCII case helpers.
//
// Character classes follow the C locale so results do not depend on the
// environment: IsSpace matches exactly space, \t, \n, \v, \f and \r.
package textutil

import (
	"iter"
	"strings"
)

// IsSpace reports whether r is C-locale whitespace.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Trim removes leading and trailing whitespace from *s.
func Trim(s *string) {
	TrimIf(s, IsSpace)
}

// TrimRight removes trailing whitespace from *s.
func TrimRight(s *string) {
	TrimRightIf(s, IsSpace)
}

// TrimIf removes leading and trailing runes matching pred from *s. Interior
// runes are kept regardless of pred.
func TrimIf(s *string, pred func(rune) bool) {
	*s = strings.TrimFunc(*s, pred)
}

// TrimRightIf removes trailing runes matching pred from *s.
func TrimRightIf(s *string, pred func(rune) bool) {
	*s = strings.TrimRightFunc(*s, pred)
}

// Trimmed returns s without leading and trailing whitespace.
func Trimmed(s string) string {
	Trim(&s)
	return s
}

// ToLowerCopy returns s with ASCII letters lower-cased. Other bytes are
// copied unchanged.
func ToLowerCopy(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Words yields the whitespace-separated fields of s lazily.
func Words(s string) iter.Seq[string] {
	return strings.FieldsFuncSeq(s, IsSpace)
}
