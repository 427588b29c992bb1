package rules

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Catalog is an ordered, read-only list of rules plus a combined alternation
// of all their patterns. The combined pattern only answers "could any rule
// match?" and is never used to extract data.
type Catalog struct {
	name     string
	version  *semver.Version
	rules    []*Rule
	combined *regexp.Regexp
}

// NewCatalog compiles every rule (nested ones included) and the combined
// prefilter. Order of rules is preserved: the first match wins.
func NewCatalog(name string, list []*Rule) (*Catalog, error) {
	if len(list) == 0 {
		return nil, &CatalogError{Catalog: name, Index: -1, Err: ErrEmptyCatalog}
	}

	patterns := make([]string, 0, len(list))
	for i, r := range list {
		if r == nil {
			return nil, &CatalogError{Catalog: name, Index: i, Err: ErrEmptyPattern}
		}
		if err := r.compile(); err != nil {
			return nil, &CatalogError{Catalog: name, Index: i, Err: err}
		}
		patterns = append(patterns, r.Regex)
	}

	combined, err := regexp.Compile(`(?i)` + Boundary + `(?:` + strings.Join(patterns, "|") + `)`)
	if err != nil {
		return nil, &CatalogError{Catalog: name, Index: -1, Err: err}
	}

	return &Catalog{
		name:     name,
		rules:    list,
		combined: combined,
	}, nil
}

// Match returns the first rule matching text together with its submatches.
// The per-rule scan runs only when the combined pattern hits.
func (c *Catalog) Match(text string) (*Rule, []string, bool) {
	if !c.mayMatch(text) {
		return nil, nil, false
	}
	for _, r := range c.rules {
		if m, ok := r.Match(text); ok {
			return r, m, true
		}
	}
	return nil, nil, false
}

func (c *Catalog) mayMatch(text string) bool {
	return c != nil && text != "" && c.combined.MatchString(text)
}

// Name returns the catalog identifier used in errors and logs.
func (c *Catalog) Name() string { return c.name }

// Version returns the schema version of the resource the catalog was loaded from, if any.
func (c *Catalog) Version() *semver.Version { return c.version }

// Len returns the number of top-level rules.
func (c *Catalog) Len() int { return len(c.rules) }

// Rules returns the rules in match order. The slice must not be modified.
func (c *Catalog) Rules() []*Rule { return c.rules }
