package useragent

import (
	"embed"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/dmitrymomot/uadetect/pkg/rules"
)

//go:embed regexes/*.yml
var catalogFS embed.FS

// deviceDetector is one step of the device cascade.
type deviceDetector struct {
	kind    deviceKind
	catalog *rules.Catalog
	// gate must match before the catalog is consulted; nil means no gate.
	gate *regexp.Regexp
}

// clientDetector is one non-browser client catalog.
type clientDetector struct {
	clientType string
	catalog    *rules.Catalog
}

// catalogSet holds every compiled catalog. It is built once per process and
// only read afterwards.
type catalogSet struct {
	bots            *rules.Catalog
	oss             *rules.Catalog
	browsers        *rules.Catalog
	engines         *rules.Catalog
	vendorFragments *rules.Catalog

	// clients run before the browser catalog, libraries after it.
	clients   []clientDetector
	libraries clientDetector

	devices []deviceDetector

	// engineVersions holds the version extractor of every known engine.
	engineVersions map[string]*regexp.Regexp
}

var (
	hbbTVGate   = regexp.MustCompile(`(?i)HbbTV/([1-9](?:\.[0-9]){1,2})`)
	shellTVGate = rules.MustCompile(`[a-z]+[ _]Shell[ _]\w{6}|tclwebkit(\d+[.\d]*)?`)
	fbmdGate    = rules.MustCompile(`FBMD/`)
)

// loadCatalogs decodes and compiles the embedded catalogs exactly once.
var loadCatalogs = sync.OnceValues(func() (*catalogSet, error) {
	var errs []error
	load := func(name string) *rules.Catalog {
		data, err := catalogFS.ReadFile("regexes/" + name + ".yml")
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return nil
		}
		c, err := rules.Load(name, data)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		return c
	}

	cs := &catalogSet{
		bots:            load("bots"),
		oss:             load("oss"),
		browsers:        load("browsers"),
		engines:         load("browser_engines"),
		vendorFragments: load("vendorfragments"),
		clients: []clientDetector{
			{clientType: ClientTypeFeedReader, catalog: load("feed_readers")},
			{clientType: ClientTypeMobileApp, catalog: load("mobile_apps")},
			{clientType: ClientTypeMediaPlayer, catalog: load("media_players")},
			{clientType: ClientTypePIM, catalog: load("pim")},
		},
		libraries: clientDetector{clientType: ClientTypeLibrary, catalog: load("libraries")},
		devices: []deviceDetector{
			{kind: kindHbbTV, catalog: load("televisions"), gate: hbbTVGate},
			{kind: kindShellTV, catalog: load("shell_tv"), gate: shellTVGate},
			{kind: kindNotebook, catalog: load("notebooks"), gate: fbmdGate},
			{kind: kindConsole, catalog: load("consoles")},
			{kind: kindCarBrowser, catalog: load("car_browsers")},
			{kind: kindCamera, catalog: load("cameras")},
			{kind: kindPortableMediaPlayer, catalog: load("portable_media_players")},
			{kind: kindMobile, catalog: load("mobiles")},
		},
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cs.validate(); err != nil {
		return nil, err
	}
	cs.engineVersions = buildEngineVersions(cs.browsers, cs.engines)
	return cs, nil
})

// validate rejects catalogs that would produce values outside the closed
// name and type sets.
func (cs *catalogSet) validate() error {
	var errs []error

	for i, r := range cs.oss.Rules() {
		if _, ok := osCodes[r.Name]; !ok {
			errs = append(errs, &rules.CatalogError{Catalog: cs.oss.Name(), Index: i, Err: fmt.Errorf("unknown operating system %q", r.Name)})
		}
	}
	for i, r := range cs.browsers.Rules() {
		if _, ok := canonicalBrowser(r.Name); !ok {
			errs = append(errs, &rules.CatalogError{Catalog: cs.browsers.Name(), Index: i, Err: fmt.Errorf("unknown browser %q", r.Name)})
		}
	}
	for _, det := range cs.devices {
		for i, r := range det.catalog.Rules() {
			if err := checkDeviceTypes(r); err != nil {
				errs = append(errs, &rules.CatalogError{Catalog: det.catalog.Name(), Index: i, Err: err})
			}
		}
	}
	return errors.Join(errs...)
}

func checkDeviceTypes(r *rules.Rule) error {
	if r.Device != "" && !has(deviceTypes, r.Device) {
		return fmt.Errorf("unknown device type %q", r.Device)
	}
	for _, m := range r.Models {
		if err := checkDeviceTypes(m); err != nil {
			return err
		}
	}
	return nil
}

// geckoVersion reads the rv: token Gecko-family engines report.
var geckoVersion = regexp.MustCompile(`(?i) (?:rv[: ]([0-9.]+)).*(?:g|cl)ecko/[0-9]{8,10}`)

const blinkToken = `Chr[o0]me|Chromium|Cronet`

// buildEngineVersions precompiles the version extractor of every engine a
// browser rule or the engine catalog can produce.
func buildEngineVersions(browsers, engines *rules.Catalog) map[string]*regexp.Regexp {
	names := make(map[string]struct{})
	for _, r := range engines.Rules() {
		names[r.Name] = struct{}{}
	}
	for _, r := range browsers.Rules() {
		if r.Engine == nil {
			continue
		}
		if r.Engine.Default != "" {
			names[r.Engine.Default] = struct{}{}
		}
		for _, v := range r.Engine.Versions {
			names[v.Engine] = struct{}{}
		}
	}

	out := make(map[string]*regexp.Regexp, len(names))
	for name := range names {
		token := regexp.QuoteMeta(name)
		if name == engineBlink {
			token = blinkToken
		}
		out[name] = regexp.MustCompile(`(?i)(?:` + token + `)\s*[/_]?\s*(\d+\.\d[.\d]*|\d{1,7})`)
	}
	return out
}
