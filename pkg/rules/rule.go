package rules

import (
	"regexp"
	"strings"
)

// Boundary is prepended to every rule pattern so that a rule only fires at a
// token boundary ("Edge" must not match inside "EdgeCase").
const Boundary = `(?:^|[^A-Z0-9_-]|[^A-Z0-9-]_|sprd-|MZ-)`

// Rule is one catalog entry. Fields are optional and their meaning depends on
// the catalog the rule lives in: OS rules use Name/Version/Versions, browser
// rules add Engine, device rules use Brand/Device/Model/Models, bot rules use
// Category/URL/Producer.
type Rule struct {
	Regex    string    `yaml:"regex"`
	Exclude  string    `yaml:"exclude,omitempty"`
	Name     string    `yaml:"name,omitempty"`
	Version  *string   `yaml:"version,omitempty"`
	Versions []*Rule   `yaml:"versions,omitempty"`
	Engine   *Engine   `yaml:"engine,omitempty"`
	Brand    string    `yaml:"brand,omitempty"`
	Device   string    `yaml:"device,omitempty"`
	Model    string    `yaml:"model,omitempty"`
	Models   []*Rule   `yaml:"models,omitempty"`
	Category string    `yaml:"category,omitempty"`
	URL      string    `yaml:"url,omitempty"`
	Producer *Producer `yaml:"producer,omitempty"`

	re      *regexp.Regexp
	exclude *regexp.Regexp
}

// Engine describes the rendering engine of a browser rule: a default and
// version-gated overrides applied in order.
type Engine struct {
	Default  string          `yaml:"default,omitempty"`
	Versions []EngineVersion `yaml:"versions,omitempty"`
}

// EngineVersion switches the engine once the browser version reaches From.
type EngineVersion struct {
	From   string `yaml:"from"`
	Engine string `yaml:"engine"`
}

// Producer is the organization behind a bot.
type Producer struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
}

// Match runs the rule against text. It returns the submatches of the first
// match unless the rule's exclusion pattern also matches.
func (r *Rule) Match(text string) ([]string, bool) {
	if r == nil || r.re == nil {
		return nil, false
	}
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	if r.exclude != nil && r.exclude.MatchString(text) {
		return nil, false
	}
	return m, true
}

// VersionTemplate returns the declared version template or "".
func (r *Rule) VersionTemplate() string {
	if r == nil || r.Version == nil {
		return ""
	}
	return *r.Version
}

// MatchFirst returns the first nested rule matching text. It is the second
// pass over Versions or Models after the parent rule matched.
func MatchFirst(nested []*Rule, text string) (*Rule, []string, bool) {
	for _, r := range nested {
		if m, ok := r.Match(text); ok {
			return r, m, true
		}
	}
	return nil, nil, false
}

// compile prepares the rule and all of its nested rules.
func (r *Rule) compile() error {
	re, err := Compile(r.Regex)
	if err != nil {
		return err
	}
	r.re = re

	if r.Exclude != "" {
		ex, err := Compile(r.Exclude)
		if err != nil {
			return err
		}
		r.exclude = ex
	}

	for _, nested := range [][]*Rule{r.Versions, r.Models} {
		for _, n := range nested {
			if n == nil {
				return ErrEmptyPattern
			}
			if err := n.compile(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Compile builds a case-insensitive, boundary-anchored expression from a rule pattern.
func Compile(pattern string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrEmptyPattern
	}
	re, err := regexp.Compile(`(?i)` + Boundary + `(?:` + pattern + `)`)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// MustCompile is like Compile but panics on error. Use it only for patterns
// fixed at build time.
func MustCompile(pattern string) *regexp.Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Expand replaces positional placeholders ($1..$9) in template with capture
// groups and trims whitespace. Placeholders without a capture become empty.
// An empty result means "no usable value".
func Expand(template string, captures []string) string {
	if !strings.Contains(template, "$") {
		return strings.TrimSpace(template)
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == '$' && i+1 < len(template) && template[i+1] >= '1' && template[i+1] <= '9' {
			idx := int(template[i+1] - '0')
			if idx < len(captures) {
				b.WriteString(captures[idx])
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
	return strings.TrimSpace(b.String())
}
