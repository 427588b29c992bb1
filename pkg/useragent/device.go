package useragent

import (
	"strings"

	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/rules"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// detectDevice runs the device cascade and then the type inference
// waterfall. res must already carry the OS and client facets.
func (d *Detector) detectDevice(ua string, hints clienthints.Hints, res *Result) *Device {
	dev := d.deviceFromCatalogs(ua, hints)

	if dev.Model == "" {
		dev.Model = hints.Model
	}
	if dev.Brand == "" {
		if r, _, ok := d.catalogs.vendorFragments.Match(ua); ok {
			dev.Brand = r.Name
		}
	}
	if dev.Type == "" {
		dev.Type = typeFromFormFactors(hints)
	}

	inferDeviceType(&dev, ua, res)

	if dev == (Device{}) {
		return nil
	}
	return &dev
}

// deviceFromCatalogs walks the device detectors in order and stops at the
// first one that yields anything.
func (d *Detector) deviceFromCatalogs(ua string, hints clienthints.Hints) Device {
	// Plain desktop strings carry no device; the catalogs would only produce
	// false positives on them.
	scan := hints.Model != "" || !hasDesktopFragment(ua)

	for _, det := range d.catalogs.devices {
		if det.gate != nil && !det.gate.MatchString(ua) {
			continue
		}

		var dev Device
		if scan {
			dev = matchDevice(det, ua)
		}
		switch det.kind {
		case kindHbbTV, kindShellTV:
			// The gate alone proves a television.
			if dev.Type == "" {
				dev.Type = DeviceTypeTV
			}
		case kindMobile:
			if dev == (Device{}) {
				dev.Model = hints.Model
			}
		}

		if dev != (Device{}) {
			return dev
		}
	}
	return Device{}
}

func matchDevice(det deviceDetector, ua string) Device {
	r, m, ok := det.catalog.Match(ua)
	if !ok {
		return Device{}
	}

	dev := Device{
		Type:  r.Device,
		Brand: r.Brand,
		Model: buildModel(rules.Expand(r.Model, m)),
	}
	if nested, nm, ok := rules.MatchFirst(r.Models, ua); ok {
		dev.Model = buildModel(rules.Expand(nested.Model, nm))
		if nested.Device != "" {
			dev.Type = nested.Device
		}
		if nested.Brand != "" {
			dev.Brand = nested.Brand
		}
	}
	if dev.Type == "" {
		dev.Type = defaultTypes[det.kind]
	}
	return dev
}

func buildModel(model string) string {
	model = strings.TrimSpace(strings.ReplaceAll(model, "_", " "))
	model = strings.TrimSuffix(model, " TD")
	if model == "Build" {
		return ""
	}
	return model
}

func typeFromFormFactors(hints clienthints.Hints) string {
	for _, ff := range formFactorTypes {
		if hints.HasFormFactor(ff.token) {
			return ff.deviceType
		}
	}
	return ""
}

var (
	vrFragment          = rules.MustCompile(`Android(?: [.0-9]+)?; Mobile VR;|VR `)
	chromeVersionToken  = rules.MustCompile(`Chrome/[.0-9]*`)
	mobileToken         = rules.MustCompile(`(?:Mobile|eliboM)`)
	padToken            = rules.MustCompile(`Pad/APad`)
	androidTabletToken  = rules.MustCompile(`Android(?: [.0-9]+)?; Tablet;|Tablet(?:$|[^ ]| [^P]| P[^C])|.*-tablet$`)
	operaTabletToken    = rules.MustCompile(`Opera Tablet`)
	androidMobileToken  = rules.MustCompile(`Android(?: [.0-9]+)?; Mobile;|.*-mobile$`)
	touchToken          = rules.MustCompile(`Touch`)
	puffinDesktop       = rules.MustCompile(`Puffin/(?:\d+[.\d]+)[LMW]D`)
	puffinSmartphone    = rules.MustCompile(`Puffin/(?:\d+[.\d]+)[AIFLW]P`)
	puffinTablet        = rules.MustCompile(`Puffin/(?:\d+[.\d]+)[AILW]T`)
	operaTVToken        = rules.MustCompile(`Opera TV Store|OMI/`)
	androidTVToken      = rules.MustCompile(`Andr0id|(?:Android(?: UHD)?|Google) TV|\(lite\) TV|BRAVIA|Firebolt|TV$`)
	bareTVToken         = rules.MustCompile(`\(TV;`)
	smartTVToken        = rules.MustCompile(`SmartTV|Tizen.+ TV .+$`)
)

const desktopKeywordToken = "Desktop"

// inferDeviceType fills in what the catalogs could not tell from the OS,
// the client and generic user agent tokens. The steps run in order and each
// one sees the result of the previous ones.
func inferDeviceType(dev *Device, ua string, res *Result) {
	var osName, osFamilyName, osVersion string
	if res.OS != nil {
		osName, osFamilyName, osVersion = res.OS.Name, res.OS.Family, res.OS.Version
	}
	var clientName string
	var mobileOnly bool
	switch {
	case res.Browser != nil:
		clientName = res.Browser.Name
		mobileOnly = has(mobileOnlyBrowsers, clientName)
	case res.Client != nil:
		clientName = res.Client.Name
	}

	// Only Apple's own systems run on Apple hardware.
	if dev.Brand == brandApple && !has(appleOSNames, osName) {
		*dev = Device{}
	}
	if dev.Brand == "" && has(appleOSNames, osName) {
		dev.Brand = brandApple
	}

	if dev.Type == "" && vrFragment.MatchString(ua) {
		dev.Type = DeviceTypeWearable
	}

	// Chrome on Android marks phones with Mobile and tablets without it.
	if dev.Type == "" && osFamilyName == osAndroid && chromeVersionToken.MatchString(ua) {
		if mobileToken.MatchString(ua) {
			dev.Type = DeviceTypeSmartphone
		} else {
			dev.Type = DeviceTypeTablet
		}
	}

	if dev.Type == DeviceTypeSmartphone && padToken.MatchString(ua) {
		dev.Type = DeviceTypeTablet
	}

	if (dev.Type == "" && androidTabletToken.MatchString(ua)) || operaTabletToken.MatchString(ua) {
		dev.Type = DeviceTypeTablet
	}

	if dev.Type == "" && androidMobileToken.MatchString(ua) {
		dev.Type = DeviceTypeSmartphone
	}

	// Android 1.x was phone only, 3.x tablet only.
	if dev.Type == "" && osName == osAndroid && osVersion != "" {
		switch {
		case version.Less(osVersion, "2.0"):
			dev.Type = DeviceTypeSmartphone
		case version.AtLeast(osVersion, "3.0") && version.Less(osVersion, "4.0"):
			dev.Type = DeviceTypeTablet
		}
	}

	if dev.Type == DeviceTypeFeaturePhone && osFamilyName == osAndroid {
		dev.Type = DeviceTypeSmartphone
	}

	if dev.Type == "" && osName == osJavaME {
		dev.Type = DeviceTypeFeaturePhone
	}

	if osName == osKaiOS {
		dev.Type = DeviceTypeFeaturePhone
	}

	// Windows 8 and later on a touch screen is a tablet. Windows RT only
	// ever shipped on tablets.
	if dev.Type == "" && (osName == osWindowsRT || (osName == osWindows && version.AtLeast(osVersion, "8"))) &&
		touchToken.MatchString(ua) {
		dev.Type = DeviceTypeTablet
	}

	if dev.Type == "" {
		switch {
		case puffinDesktop.MatchString(ua):
			dev.Type = DeviceTypeDesktop
		case puffinSmartphone.MatchString(ua):
			dev.Type = DeviceTypeSmartphone
		case puffinTablet.MatchString(ua):
			dev.Type = DeviceTypeTablet
		}
	}

	if operaTVToken.MatchString(ua) {
		dev.Type = DeviceTypeTV
	}

	if osName == osCoolita {
		dev.Type = DeviceTypeTV
		dev.Brand = brandCoocaa
	}

	if dev.Type != DeviceTypeTV && dev.Type != DeviceTypePeripheral && androidTVToken.MatchString(ua) {
		dev.Type = DeviceTypeTV
	}

	if has(tvClients, clientName) {
		dev.Type = DeviceTypeTV
	}

	if dev.Type == "" && bareTVToken.MatchString(ua) {
		dev.Type = DeviceTypeTV
	}

	if dev.Type == "" && smartTVToken.MatchString(ua) {
		dev.Type = DeviceTypeTV
	}

	if dev.Type != DeviceTypeDesktop && strings.Contains(ua, desktopKeywordToken) && hasDesktopFragment(ua) {
		dev.Type = DeviceTypeDesktop
	}

	if dev.Type == "" && osName != "" && isDesktopOS(osName) && !mobileOnly {
		dev.Type = DeviceTypeDesktop
	}
}
