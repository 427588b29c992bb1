package rules

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SchemaConstraint is the range of catalog resource versions this package understands.
const SchemaConstraint = ">= 1.0.0, < 2.0.0"

var schema = mustConstraint(SchemaConstraint)

type document struct {
	Version string  `yaml:"version"`
	Rules   []*Rule `yaml:"rules"`
}

// Load decodes a YAML catalog resource of the form
//
//	version: 1.0.0
//	rules:
//	  - regex: 'Firefox/(\d+[.\d]*)'
//	    name: Firefox
//	    version: $1
//
// and compiles it. A missing or unsupported version, an empty rule list or
// an invalid pattern are all reported as errors so that a broken resource
// fails at construction time instead of making every input unclassifiable.
func Load(name string, data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &CatalogError{Catalog: name, Index: -1, Err: errors.Join(ErrMalformedCatalog, err)}
	}

	v, err := semver.NewVersion(doc.Version)
	if err != nil {
		return nil, &CatalogError{Catalog: name, Index: -1, Err: errors.Join(ErrUnsupportedSchema, err)}
	}
	if !schema.Check(v) {
		return nil, &CatalogError{
			Catalog: name,
			Index:   -1,
			Err:     fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SchemaConstraint),
		}
	}

	c, err := NewCatalog(name, doc.Rules)
	if err != nil {
		return nil, err
	}
	c.version = v
	return c, nil
}

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}
