package rules

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog      = errors.New("catalog has no rules")
	ErrEmptyPattern      = errors.New("rule has an empty pattern")
	ErrMalformedCatalog  = errors.New("malformed catalog resource")
	ErrUnsupportedSchema = errors.New("unsupported catalog schema version")
)

// PatternError reports a rule pattern that is not a valid expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid rule pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// CatalogError locates a failure inside a catalog. Index is -1 when the
// failure is not tied to a single rule.
type CatalogError struct {
	Catalog string
	Index   int
	Err     error
}

func (e *CatalogError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("catalog %s: %v", e.Catalog, e.Err)
	}
	return fmt.Sprintf("catalog %s: rule %d: %v", e.Catalog, e.Index, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }
