package useragent

import (
	"github.com/dmitrymomot/uadetect/pkg/rules"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// engineFor resolves the rendering engine of a matched browser rule: the
// declared default, then every version gate the browser version satisfies
// (the last one wins), then the engine catalog.
func (d *Detector) engineFor(e *rules.Engine, browserVersion, ua string) string {
	var engine string
	if e != nil {
		engine = e.Default
		for _, gate := range e.Versions {
			if version.AtLeast(browserVersion, gate.From) {
				engine = gate.Engine
			}
		}
	}
	if engine != "" {
		return engine
	}

	if r, _, ok := d.catalogs.engines.Match(ua); ok {
		return r.Name
	}
	return ""
}

// engineVersion extracts the version of engine from ua. Gecko and Clecko
// prefer the rv: token, which carries the real version when the Gecko/
// token holds a build date.
func (d *Detector) engineVersion(engine, ua string) string {
	if engine == "" {
		return ""
	}
	if engine == engineGecko || engine == engineClecko {
		if m := geckoVersion.FindStringSubmatch(ua); m != nil {
			return m[1]
		}
	}

	re, ok := d.catalogs.engineVersions[engine]
	if !ok {
		return ""
	}
	if m := re.FindStringSubmatch(ua); m != nil {
		return m[1]
	}
	return ""
}
