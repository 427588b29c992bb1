package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetect/pkg/rules"
)

func ptr(s string) *string { return &s }

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		captures []string
		expected string
	}{
		{name: "no placeholders", template: " Chrome ", expected: "Chrome"},
		{name: "single", template: "$1", captures: []string{"all", "Pixel 7"}, expected: "Pixel 7"},
		{name: "composed", template: "Galaxy $1 $2", captures: []string{"all", "S23", "Ultra"}, expected: "Galaxy S23 Ultra"},
		{name: "missing capture", template: "Galaxy $2", captures: []string{"all", "S23"}, expected: "Galaxy"},
		{name: "whitespace only", template: "$1", captures: []string{"all", "   "}, expected: ""},
		{name: "dollar without digit", template: "US$", captures: nil, expected: "US$"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, rules.Expand(tc.template, tc.captures))
		})
	}
}

func TestCompile_Boundary(t *testing.T) {
	t.Parallel()

	re, err := rules.Compile(`Edge/(\d+)`)
	require.NoError(t, err)

	assert.True(t, re.MatchString("Mozilla/5.0 Edge/18"))
	assert.True(t, re.MatchString("edge/18"), "patterns are case-insensitive")
	assert.False(t, re.MatchString("EdgeCase Edge2/18"))
	assert.False(t, re.MatchString("XEdge/18"), "must not match inside a word")
	assert.True(t, re.MatchString("sprd-Edge/18"))

	_, err = rules.Compile("")
	require.ErrorIs(t, err, rules.ErrEmptyPattern)

	_, err = rules.Compile(`(unclosed`)
	var perr *rules.PatternError
	require.ErrorAs(t, err, &perr)
}

func TestCatalog_FirstMatchWins(t *testing.T) {
	t.Parallel()

	cat, err := rules.NewCatalog("test", []*rules.Rule{
		{Regex: `Edg/(\d+[.\d]*)`, Name: "Microsoft Edge", Version: ptr("$1")},
		{Regex: `Chrome/(\d+[.\d]*)`, Name: "Chrome", Version: ptr("$1")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	rule, m, ok := cat.Match("Mozilla/5.0 Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.61")
	require.True(t, ok)
	assert.Equal(t, "Microsoft Edge", rule.Name)
	assert.Equal(t, "120.0.2210.61", rules.Expand(rule.VersionTemplate(), m))

	rule, _, ok = cat.Match("Mozilla/5.0 Chrome/120.0.0.0 Safari/537.36")
	require.True(t, ok)
	assert.Equal(t, "Chrome", rule.Name)

	_, _, ok = cat.Match("Mozilla/5.0 Firefox/121.0")
	assert.False(t, ok)

	_, _, ok = cat.Match("")
	assert.False(t, ok)
}

func TestCatalog_Exclude(t *testing.T) {
	t.Parallel()

	cat, err := rules.NewCatalog("bots", []*rules.Rule{
		{Regex: `[a-z0-9_-]*bot`, Exclude: `CUBOT`, Name: "Generic Bot"},
	})
	require.NoError(t, err)

	_, _, ok := cat.Match("Mozilla/5.0 (Linux; Android 10; CUBOT P40) AppleWebKit/537.36")
	assert.False(t, ok)

	rule, _, ok := cat.Match("Mozilla/5.0 (compatible; examplebot/1.0)")
	require.True(t, ok)
	assert.Equal(t, "Generic Bot", rule.Name)
}

func TestMatchFirst_NestedPass(t *testing.T) {
	t.Parallel()

	cat, err := rules.NewCatalog("os", []*rules.Rule{
		{
			Regex: `Windows`,
			Name:  "Windows",
			Versions: []*rules.Rule{
				{Regex: `Windows NT 6\.1`, Version: ptr("7")},
				{Regex: `Windows NT 10\.0`, Version: ptr("10")},
			},
		},
	})
	require.NoError(t, err)

	ua := "Mozilla/5.0 (Windows NT 6.1; Win64; x64)"
	rule, _, ok := cat.Match(ua)
	require.True(t, ok)
	assert.Empty(t, rule.VersionTemplate())

	nested, m, ok := rules.MatchFirst(rule.Versions, ua)
	require.True(t, ok)
	assert.Equal(t, "7", rules.Expand(nested.VersionTemplate(), m))

	_, _, ok = rules.MatchFirst(rule.Versions, "Mozilla/5.0 (Windows NT 5.1)")
	assert.False(t, ok)
}

func TestNewCatalog_Errors(t *testing.T) {
	t.Parallel()

	_, err := rules.NewCatalog("empty", nil)
	require.ErrorIs(t, err, rules.ErrEmptyCatalog)

	_, err = rules.NewCatalog("bad", []*rules.Rule{{Regex: `ok`}, {Regex: `(`}})
	var cerr *rules.CatalogError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 1, cerr.Index)
	assert.Equal(t, "bad", cerr.Catalog)

	_, err = rules.NewCatalog("nested", []*rules.Rule{{Regex: `ok`, Models: []*rules.Rule{{Regex: ``}}}})
	require.ErrorIs(t, err, rules.ErrEmptyPattern)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	data := []byte(`
version: 1.2.0
rules:
  - regex: 'Firefox/(\d+[.\d]*)'
    name: Firefox
    version: $1
    engine:
      default: Gecko
  - regex: 'Windows NT 10'
    name: Windows
    version: 10
`)
	cat, err := rules.Load("sample", data)
	require.NoError(t, err)
	assert.Equal(t, "sample", cat.Name())
	assert.Equal(t, "1.2.0", cat.Version().String())
	require.Equal(t, 2, cat.Len())
	assert.Equal(t, "Gecko", cat.Rules()[0].Engine.Default)
	assert.Equal(t, "10", cat.Rules()[1].VersionTemplate(), "numeric YAML scalars decode as text")
}

func TestLoad_FailsFast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{name: "not yaml", data: "version: [", expected: rules.ErrMalformedCatalog},
		{name: "missing version", data: "rules:\n  - regex: x\n", expected: rules.ErrUnsupportedSchema},
		{name: "future schema", data: "version: 2.0.0\nrules:\n  - regex: x\n", expected: rules.ErrUnsupportedSchema},
		{name: "no rules", data: "version: 1.0.0\nrules: []\n", expected: rules.ErrEmptyCatalog},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := rules.Load(tc.name, []byte(tc.data))
			require.ErrorIs(t, err, tc.expected)
		})
	}
}
