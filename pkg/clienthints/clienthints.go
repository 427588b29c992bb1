package clienthints

import (
	"regexp"
	"strings"
)

// Brand is one entry of the Sec-CH-UA brand lists.
type Brand struct {
	Name    string `msgpack:"n" json:"name"`
	Version string `msgpack:"v" json:"version"`
}

// Hints is the recognized subset of User-Agent Client Hints of one request.
// A zero Hints means "no hints were sent".
type Hints struct {
	Architecture    string
	Bitness         string
	Mobile          bool
	Model           string
	Platform        string
	PlatformVersion string
	UAFullVersion   string
	App             string
	FullVersionList []Brand
	FormFactors     []string
}

type field int

const (
	fieldArchitecture field = iota + 1
	fieldBitness
	fieldMobile
	fieldModel
	fieldFullVersion
	fieldPlatform
	fieldPlatformVersion
	fieldBrandsPrimary
	fieldBrandsSecondary
	fieldApp
	fieldFormFactors
)

// alias is a header spelling of a logical field. When several spellings of
// one field are present, the lowest rank wins: the direct header name, then
// its CGI-style HTTP_ form, then the short getHighEntropyValues keys.
type alias struct {
	field field
	rank  int
}

// aliases maps a normalized header name to the logical field it carries.
var aliases = map[string]alias{
	"sec-ch-ua-arch":                   {fieldArchitecture, 0},
	"http-sec-ch-ua-arch":              {fieldArchitecture, 1},
	"arch":                             {fieldArchitecture, 2},
	"architecture":                     {fieldArchitecture, 3},
	"sec-ch-ua-bitness":                {fieldBitness, 0},
	"http-sec-ch-ua-bitness":           {fieldBitness, 1},
	"bitness":                          {fieldBitness, 2},
	"sec-ch-ua-mobile":                 {fieldMobile, 0},
	"http-sec-ch-ua-mobile":            {fieldMobile, 1},
	"mobile":                           {fieldMobile, 2},
	"sec-ch-ua-model":                  {fieldModel, 0},
	"http-sec-ch-ua-model":             {fieldModel, 1},
	"model":                            {fieldModel, 2},
	"sec-ch-ua-full-version":           {fieldFullVersion, 0},
	"http-sec-ch-ua-full-version":      {fieldFullVersion, 1},
	"uafullversion":                    {fieldFullVersion, 2},
	"sec-ch-ua-platform":               {fieldPlatform, 0},
	"http-sec-ch-ua-platform":          {fieldPlatform, 1},
	"platform":                         {fieldPlatform, 2},
	"sec-ch-ua-platform-version":       {fieldPlatformVersion, 0},
	"http-sec-ch-ua-platform-version":  {fieldPlatformVersion, 1},
	"platformversion":                  {fieldPlatformVersion, 2},
	"sec-ch-ua-full-version-list":      {fieldBrandsPrimary, 0},
	"http-sec-ch-ua-full-version-list": {fieldBrandsPrimary, 1},
	"fullversionlist":                  {fieldBrandsPrimary, 2},
	"sec-ch-ua":                        {fieldBrandsSecondary, 0},
	"http-sec-ch-ua":                   {fieldBrandsSecondary, 1},
	"brands":                           {fieldBrandsSecondary, 2},
	"x-requested-with":                 {fieldApp, 0},
	"http-x-requested-with":            {fieldApp, 1},
	"sec-ch-ua-form-factors":           {fieldFormFactors, 0},
	"http-sec-ch-ua-form-factors":      {fieldFormFactors, 1},
	"formfactors":                      {fieldFormFactors, 2},
}

// candidate is the header currently chosen for a field.
type candidate struct {
	rank  int
	name  string
	value string
}

// wins reports whether c takes precedence over cur. Equal ranks (the same
// header in different letter case) fall back to the raw name so that the
// choice never depends on map iteration order.
func (c candidate) wins(cur candidate) bool {
	if c.rank != cur.rank {
		return c.rank < cur.rank
	}
	return c.name < cur.name
}

var (
	brandPattern      = regexp.MustCompile(`"([^"]+)"; ?v="([^"]+)"`)
	formFactorPattern = regexp.MustCompile(`"([a-z]+)"`)
)

// New builds Hints from a header map. Header names are matched
// case-insensitively and underscores are treated as dashes, so both
// "Sec-CH-UA-Model" and "HTTP_SEC_CH_UA_MODEL" are accepted. Unknown headers
// and malformed values are ignored.
func New(headers map[string]string) Hints {
	chosen := make(map[field]candidate, len(headers))
	for name, value := range headers {
		if value == "" {
			continue
		}
		a, ok := aliases[NormalizeName(name)]
		if !ok {
			continue
		}
		c := candidate{rank: a.rank, name: name, value: value}
		if cur, seen := chosen[a.field]; seen && !c.wins(cur) {
			continue
		}
		chosen[a.field] = c
	}

	var h Hints
	for f, c := range chosen {
		value := c.value
		switch f {
		case fieldArchitecture:
			h.Architecture = unquote(value)
		case fieldBitness:
			h.Bitness = unquote(value)
		case fieldMobile:
			v := strings.TrimSpace(value)
			h.Mobile = v == "1" || v == "?1"
		case fieldModel:
			h.Model = unquote(value)
		case fieldFullVersion:
			h.UAFullVersion = unquote(value)
		case fieldPlatform:
			h.Platform = unquote(value)
		case fieldPlatformVersion:
			h.PlatformVersion = unquote(value)
		case fieldBrandsPrimary, fieldBrandsSecondary:
			// resolved below
		case fieldApp:
			// XMLHttpRequest marks an AJAX call, not an embedding application.
			if v := strings.TrimSpace(value); !strings.EqualFold(v, "xmlhttprequest") {
				h.App = v
			}
		case fieldFormFactors:
			h.FormFactors = ParseFormFactors(value)
		}
	}

	// The full version list wins whenever it produced entries; the low
	// entropy brand list is only a fallback.
	if c, ok := chosen[fieldBrandsPrimary]; ok {
		h.FullVersionList = ParseBrands(c.value)
	}
	if c, ok := chosen[fieldBrandsSecondary]; ok && len(h.FullVersionList) == 0 {
		h.FullVersionList = ParseBrands(c.value)
	}

	return h
}

// NormalizeName lower-cases a header name and turns underscores into dashes.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// ParseBrands extracts "Brand";v="Version" pairs in order. Malformed entries
// are skipped. A repeated brand keeps its first position and its last version.
func ParseBrands(value string) []Brand {
	matches := brandPattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}

	list := make([]Brand, 0, len(matches))
	index := make(map[string]int, len(matches))
	for _, m := range matches {
		if i, ok := index[m[1]]; ok {
			list[i].Version = m[2]
			continue
		}
		index[m[1]] = len(list)
		list = append(list, Brand{Name: m[1], Version: m[2]})
	}
	return list
}

// ParseFormFactors accepts either the structured header form
// ("Desktop", "XR") or an already split comma list (Desktop,XR).
func ParseFormFactors(value string) []string {
	lower := strings.ToLower(value)

	if !strings.Contains(lower, `"`) {
		var out []string
		for token := range strings.SplitSeq(lower, ",") {
			if token = strings.TrimSpace(token); token != "" {
				out = append(out, token)
			}
		}
		return out
	}

	matches := formFactorPattern.FindAllStringSubmatch(lower, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func unquote(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"`)
}

// IsEmpty reports whether no recognized hint was present.
func (h Hints) IsEmpty() bool {
	return h.Architecture == "" && h.Bitness == "" && !h.Mobile && h.Model == "" &&
		h.Platform == "" && h.PlatformVersion == "" && h.UAFullVersion == "" &&
		h.App == "" && len(h.FullVersionList) == 0 && len(h.FormFactors) == 0
}

// Brands returns the brand list in header order.
func (h Hints) Brands() []Brand {
	return h.FullVersionList
}

// BrandVersion returns the version listed for brand, or "". Names are
// compared case-insensitively.
func (h Hints) BrandVersion(brand string) string {
	for _, b := range h.FullVersionList {
		if strings.EqualFold(b.Name, brand) {
			return b.Version
		}
	}
	return ""
}

// HasFormFactor reports whether the form factor list contains f.
func (h Hints) HasFormFactor(f string) bool {
	for _, v := range h.FormFactors {
		if strings.EqualFold(v, f) {
			return true
		}
	}
	return false
}

// Canonical renders the hints in a fixed order. Two Hints with equal
// content always render identically, which makes the output usable as part
// of a cache key.
func (h Hints) Canonical() string {
	var b strings.Builder
	write := func(k, v string) {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
		b.WriteByte('\n')
	}
	write("arch", h.Architecture)
	write("bitness", h.Bitness)
	if h.Mobile {
		write("mobile", "1")
	} else {
		write("mobile", "0")
	}
	write("model", h.Model)
	write("platform", h.Platform)
	write("platform-version", h.PlatformVersion)
	write("full-version", h.UAFullVersion)
	write("app", h.App)
	for _, br := range h.FullVersionList {
		write("brand", br.Name+";"+br.Version)
	}
	write("form-factors", strings.Join(h.FormFactors, ","))
	return b.String()
}
