package version

import (
	"fmt"
	"strings"
)

// Truncation limits how many dot-separated segments a version keeps.
type Truncation int

const (
	// TruncateNone keeps the version as captured.
	TruncateNone Truncation = iota
	// TruncateMajor keeps "12".
	TruncateMajor
	// TruncateMinor keeps "12.3".
	TruncateMinor
	// TruncatePatch keeps "12.3.4".
	TruncatePatch
	// TruncateBuild keeps "12.3.4.5".
	TruncateBuild
)

var truncationNames = map[Truncation]string{
	TruncateNone:  "none",
	TruncateMajor: "major",
	TruncateMinor: "minor",
	TruncatePatch: "patch",
	TruncateBuild: "build",
}

// Segments returns the number of segments kept, 0 meaning unlimited.
func (t Truncation) Segments() int {
	if t < TruncateNone || t > TruncateBuild {
		return 0
	}
	return int(t)
}

func (t Truncation) String() string {
	if s, ok := truncationNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Truncation(%d)", int(t))
}

// ParseTruncation maps a policy name to its value.
func ParseTruncation(s string) (Truncation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return TruncateNone, nil
	}
	for t, n := range truncationNames {
		if n == name {
			return t, nil
		}
	}
	return TruncateNone, fmt.Errorf("%w: %q", ErrUnknownTruncation, s)
}

// UnmarshalText lets Truncation be read from environment configuration.
func (t *Truncation) UnmarshalText(text []byte) error {
	v, err := ParseTruncation(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Truncation) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
