package useragent

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// invert derives the reverse view of a one-to-one mapping table.
func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// familyIndex derives code -> family from family -> codes.
func familyIndex(families map[string][]string) map[string]string {
	out := make(map[string]string)
	for family, codes := range families {
		for _, c := range codes {
			out[c] = family
		}
	}
	return out
}

// compactIndex derives compact(name) -> name from a code -> name table.
func compactIndex(names map[string]string) map[string]string {
	out := make(map[string]string, len(names))
	for _, name := range names {
		out[compact(name)] = name
	}
	return out
}

// folders holds Unicode case folders. A Caser is stateful and cannot be
// shared between goroutines.
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// fold applies case folding. Pure ASCII input, which covers nearly every
// brand and platform name, is lower-cased without touching the pool.
func fold(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}
	c := folders.Get().(*cases.Caser)
	defer folders.Put(c)
	return c.String(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// compact folds s and drops everything but letters and digits, so
// "Coc Coc", "coc_coc" and "CocCoc" compare equal.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, fold(s))
}

func cutDot(v string) (string, string, bool) {
	return strings.Cut(v, ".")
}

func set(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func has(m map[string]struct{}, key string) bool {
	_, ok := m[key]
	return ok
}
