package useragent

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/rules"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// browserGuess is the browser as seen by one evidence source.
type browserGuess struct {
	name          string
	short         string
	version       string
	engine        string
	engineVersion string
}

var (
	// Iridium reports its release as a year in Client Hints.
	iridiumVersion   = regexp.MustCompile(`^202[0-4](?:\.|$)`)
	chromeSafari     = rules.MustCompile(`Chrome/.+ Safari/537\.36`)
	automationMarker = rules.MustCompile(`Cypress|PhantomJS`)
)

// detectBrowser reconciles the user agent and Client Hints views of the
// browser. It returns nil when no browser is recognized or the user agent
// belongs to a test automation tool.
func (d *Detector) detectBrowser(ua string, hints clienthints.Hints) *Browser {
	fromUA := d.browserFromUA(ua)
	fromCH := d.browserFromHints(hints)

	b := fromUA
	if fromCH.name != "" && fromCH.version != "" {
		b = mergeBrowser(fromUA, fromCH)
	}
	family := browserFamily(b.name)

	if appName, ok := browserAppHints[hints.App]; ok && appName != b.name {
		b.name, b.short, b.version = appName, browserCodes[appName], ""
		family = browserFamily(appName)
		if chromeSafari.MatchString(ua) {
			b.engine = engineBlink
			b.engineVersion = d.engineVersion(engineBlink, ua)
			if family == "" {
				family = browserFamilyChrome
			}
		}
	}

	if b.name == "" || automationMarker.MatchString(ua) {
		return nil
	}

	switch b.name {
	case browserEvery:
		family, b.engine, b.engineVersion = browserFamilyChrome, engineBlink, ""
	case browserWolvic:
		switch b.engine {
		case engineBlink:
			family = browserFamilyChrome
		case engineGecko:
			family = browserFamilyFF
		}
	case browserFlow:
		b.engineVersion = ""
	}

	return &Browser{
		Name:          b.name,
		ShortName:     b.short,
		Version:       b.version,
		Engine:        b.engine,
		EngineVersion: b.engineVersion,
		Family:        family,
	}
}

func (d *Detector) browserFromUA(ua string) browserGuess {
	r, m, ok := d.catalogs.browsers.Match(ua)
	if !ok {
		return browserGuess{}
	}
	name, ok := canonicalBrowser(rules.Expand(r.Name, m))
	if !ok {
		return browserGuess{}
	}

	ver := version.Build(r.VersionTemplate(), m, d.truncation)
	engine := d.engineFor(r.Engine, ver, ua)
	return browserGuess{
		name:          name,
		short:         browserCodes[name],
		version:       ver,
		engine:        engine,
		engineVersion: d.engineVersion(engine, ua),
	}
}

// browserFromHints walks the brand list in order. Generic wrapper brands
// are remembered but the walk goes on looking for a more specific sibling.
func (d *Detector) browserFromHints(hints clienthints.Hints) browserGuess {
	var name, ver string
	for _, brand := range hints.FullVersionList {
		label := brand.Name
		if alias, ok := browserHintAliases[fold(label)]; ok {
			label = alias
		}
		if n, ok := canonicalBrowser(label); ok {
			name, ver = n, brand.Version
		}
		if name != "" && !has(genericBrands, name) {
			break
		}
	}
	if name == "" {
		return browserGuess{}
	}

	if hints.UAFullVersion != "" {
		ver = hints.UAFullVersion
	}
	return browserGuess{
		name:    name,
		short:   browserCodes[name],
		version: version.Build(ver, nil, d.truncation),
	}
}

// mergeBrowser reconciles both guesses when Client Hints carried a name and
// a version. Each step reads the state left by the previous ones.
func mergeBrowser(fromUA, fromCH browserGuess) browserGuess {
	b := browserGuess{name: fromCH.name, short: fromCH.short, version: fromCH.version}
	useUAEngine := func() {
		b.engine, b.engineVersion = fromUA.engine, fromUA.engineVersion
	}

	if iridiumVersion.MatchString(b.version) {
		b.name, b.short = browserIridium, browserCodes[browserIridium]
	}

	if strings.HasPrefix(b.version, "15") && strings.HasPrefix(fromUA.version, "114") {
		b.name, b.short = browser360, browserCodes[browser360]
		useUAEngine()
	}

	if fromUA.version != "" && has(preferUAVersion, b.name) {
		b.version = fromUA.version
	}

	if has(engineFromUA, b.name) {
		useUAEngine()
	}

	if (b.name == browserChromium || b.name == browserChromeWV) &&
		fromUA.name != "" && !has(chromiumGeneric, fromUA.name) {
		b.name, b.short, b.version = fromUA.name, fromUA.short, fromUA.version
	}

	// Client Hints never say "Chrome Mobile", only "Chrome".
	if b.name+" Mobile" == fromUA.name {
		b.name, b.short = fromUA.name, fromUA.short
	}

	if b.name == fromUA.name || browserFamily(b.name) == browserFamily(fromUA.name) {
		useUAEngine()
	}

	if fromUA.version != "" && isVersionPrefix(b.version, fromUA.version) && version.Less(b.version, fromUA.version) {
		b.version = fromUA.version
	}

	if b.name == browserDuckDuckGo {
		b.version = ""
	}
	return b
}

// isVersionPrefix reports whether long extends short by whole segments.
func isVersionPrefix(short, long string) bool {
	return short != "" && (long == short || strings.HasPrefix(long, short+"."))
}
