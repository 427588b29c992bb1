// Package rules implements the ordered regex catalogs shared by every
// User-Agent sub-detector.
//
// A Catalog is a list of Rule values where the first match wins, so catalog
// order encodes specificity. Every pattern is compiled case-insensitively and
// anchored with Boundary, which only lets a rule fire at a token boundary.
//
// Matching is two-step. The catalog first tests a single alternation of all
// of its patterns; most inputs do not match, for example a desktop browser UA
// against the car-browser catalog, and the per-rule scan is skipped. Only on a
// hit are the rules tried in order.
//
// Rules carry output templates ("$1", "Galaxy $2") that Expand instantiates
// with the capture groups of the match. Nested Versions (OS) and Models
// (devices) are tried in a second explicit pass with MatchFirst.
//
// Catalog resources are versioned YAML documents. Load checks the document
// version against SchemaConstraint and compiles all patterns eagerly:
//
//	cat, err := rules.Load("browsers", data)
//	if err != nil {
//		return err // fail fast: a broken catalog must not start
//	}
//	if rule, m, ok := cat.Match(ua); ok {
//		name := rules.Expand(rule.Name, m)
//	}
//
// Go's regexp package has no look-around, so a rule may declare an Exclude
// pattern that vetoes an otherwise successful match.
package rules
