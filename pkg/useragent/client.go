package useragent

import (
	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/rules"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// detectClient finds the software behind the request. Specialized clients
// are tried first, then browsers, then HTTP libraries. At most one of the
// returned values is non-nil.
func (d *Detector) detectClient(ua string, hints clienthints.Hints) (*Client, *Browser) {
	for _, det := range d.catalogs.clients {
		if c := d.matchClient(det, ua, hints); c != nil {
			return c, nil
		}
	}
	if b := d.detectBrowser(ua, hints); b != nil {
		return nil, b
	}
	if c := d.matchClient(d.catalogs.libraries, ua, hints); c != nil {
		return c, nil
	}
	return nil, nil
}

func (d *Detector) matchClient(det clientDetector, ua string, hints clienthints.Hints) *Client {
	var name, ver string
	if r, m, ok := det.catalog.Match(ua); ok {
		name = rules.Expand(r.Name, m)
		ver = version.Build(r.VersionTemplate(), m, d.truncation)
	}

	// Apps embedding a webview announce themselves in X-Requested-With.
	if det.clientType == ClientTypeMobileApp {
		if app, ok := mobileAppHints[hints.App]; ok && app != name {
			name, ver = app, ""
		}
	}

	if name == "" {
		return nil
	}
	return &Client{Type: det.clientType, Name: name, Version: ver}
}
