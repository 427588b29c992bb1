package version

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/uadetect/pkg/rules"
)

// Build instantiates a version template with regex captures, normalizes
// underscores to dots and truncates the result according to t.
func Build(template string, captures []string, t Truncation) string {
	v := rules.Expand(template, captures)
	v = strings.ReplaceAll(v, "_", ".")
	return Truncate(v, t)
}

// Truncate keeps at most t.Segments() dot-separated segments of v.
// Missing segments are never padded.
func Truncate(v string, t Truncation) string {
	if n := t.Segments(); n > 0 && strings.Count(v, ".") >= n {
		parts := strings.SplitN(v, ".", n+1)
		v = strings.Join(parts[:n], ".")
	}
	return strings.Trim(v, " .")
}

// Compare orders two dot-separated numeric versions. Missing trailing
// segments count as zero, so "1.0" equals "1". The second return value is
// false when either side has an empty or non-numeric segment; callers must
// treat that as "no conclusion".
func Compare(a, b string) (int, bool) {
	as, ok := segments(a)
	if !ok {
		return 0, false
	}
	bs, ok := segments(b)
	if !ok {
		return 0, false
	}

	for i := 0; i < max(len(as), len(bs)); i++ {
		var x, y uint64
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
	}
	return 0, true
}

// AtLeast reports whether v >= threshold. Incomparable versions never satisfy.
func AtLeast(v, threshold string) bool {
	c, ok := Compare(v, threshold)
	return ok && c >= 0
}

// Less reports whether v < other. Incomparable versions are never less.
func Less(v, other string) bool {
	c, ok := Compare(v, other)
	return ok && c < 0
}

// Major returns the integer value of the first segment, or 0.
func Major(v string) int {
	head, _, _ := strings.Cut(v, ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return n
}

func segments(v string) ([]uint64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, false
	}
	parts := strings.Split(v, ".")
	out := make([]uint64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}
