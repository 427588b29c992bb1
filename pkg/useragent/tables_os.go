package useragent

// osNames maps a short OS code to its canonical name. It is the single
// source for osCodes and the fuzzy name index.
var osNames = map[string]string{
	"AND": "Android",
	"FIR": "Fire OS",
	"LEN": "Lineage OS",
	"HAR": "HarmonyOS",
	"LEA": "LeafOS",
	"PIC": "PICO OS",
	"MHZ": "Meta Horizon",
	"IOS": "iOS",
	"IPA": "iPadOS",
	"ATV": "tvOS",
	"WAS": "watchOS",
	"MAC": "Mac",
	"WIN": "Windows",
	"WRT": "Windows RT",
	"WIO": "Windows IoT",
	"WPH": "Windows Phone",
	"WMO": "Windows Mobile",
	"LIN": "GNU/Linux",
	"UBT": "Ubuntu",
	"DEB": "Debian",
	"FED": "Fedora",
	"MIN": "Mint",
	"ARL": "Arch Linux",
	"COS": "Chrome OS",
	"FYD": "FydeOS",
	"TIZ": "Tizen",
	"KOS": "KaiOS",
	"JME": "Java ME",
	"SYM": "Symbian OS",
	"BLB": "BlackBerry OS",
	"WOS": "webOS",
	"COO": "Coolita OS",
	"BSD": "FreeBSD",
	"OBS": "OpenBSD",
}

// osFamilies groups short codes. A code belongs to at most one family.
var osFamilies = map[string][]string{
	"Android":        {"AND", "FIR", "LEN", "HAR", "LEA", "PIC", "MHZ"},
	"iOS":            {"IOS", "ATV", "WAS", "IPA"},
	"Mac":            {"MAC"},
	"Windows":        {"WIN", "WRT", "WIO"},
	"Windows Mobile": {"WPH", "WMO"},
	"GNU/Linux":      {"LIN", "UBT", "DEB", "FED", "MIN", "ARL"},
	"Chrome OS":      {"COS", "FYD"},
	"Tizen":          {"TIZ"},
	"Java ME":        {"JME"},
	"Symbian":        {"SYM"},
	"BlackBerry":     {"BLB"},
	"Other Mobile":   {"KOS"},
	"Other Smart TV": {"WOS", "COO"},
	"Unix":           {"BSD", "OBS"},
}

// desktopOSFamilies lists families that only run on desktop-class hardware.
var desktopOSFamilies = map[string]struct{}{
	"AmigaOS":   {},
	"IBM":       {},
	"GNU/Linux": {},
	"Mac":       {},
	"Unix":      {},
	"Windows":   {},
	"BeOS":      {},
	"Chrome OS": {},
}

// appleOSNames are the systems that only ship on Apple hardware.
var appleOSNames = map[string]struct{}{
	"iPadOS":  {},
	"tvOS":    {},
	"watchOS": {},
	"iOS":     {},
	"Mac":     {},
}

// osHintAliases translates Sec-CH-UA-Platform values whose spelling differs
// from the canonical name. Keys are compacted (see compact).
var osHintAliases = map[string]string{
	"linux":      "GNU/Linux",
	"macos":      "Mac",
	"chromiumos": "Chrome OS",
}

// windowsHintMinor maps the minor part of a "0.x" Windows platform version,
// which is how pre-10 releases report themselves.
var windowsHintMinor = map[int]string{
	1: "7",
	2: "8",
	3: "8.1",
}

// fireOSVersions maps an Android version to the Fire OS generation built on it.
// Lookups try the full version first, then the major version.
var fireOSVersions = map[string]string{
	"11":    "8",
	"10":    "8",
	"9":     "7",
	"7":     "6",
	"5":     "5",
	"4.4.3": "4.5.1",
	"4.4.2": "4",
	"4.2.2": "3",
	"4.0.3": "3",
	"4.0.2": "3",
	"4":     "2",
	"2":     "1",
}

// lineageOSVersions maps an Android version to the matching Lineage OS release.
var lineageOSVersions = map[string]string{
	"15":    "22",
	"14":    "21",
	"13":    "20.0",
	"12.1":  "19.1",
	"12":    "19.0",
	"11":    "18.0",
	"10":    "17.0",
	"9":     "16.0",
	"8.1.0": "15.1",
	"8.0.0": "15.0",
	"7.1.2": "14.1",
	"7.1.1": "14.1",
	"7.0":   "14.0",
	"6.0.1": "13.0",
	"6.0":   "13.0",
	"5.1.1": "12.1",
	"5.0.2": "12.0",
	"5.0":   "12.0",
	"4.4.4": "11.0",
	"4.3":   "10.2",
	"4.2.2": "10.1",
	"4.0.4": "9.1.0",
}

// androidOnlyApps are X-Requested-With values sent only by Android builds.
var androidOnlyApps = map[string]struct{}{
	"com.hisense.odinbrowser":        {},
	"com.seraphic.openinet.pre":      {},
	"com.appssppa.idesktoppcbrowser": {},
	"every.browser.inc":              {},
}

const (
	appLineageBrowser = "org.lineageos.jelly"
	appFireTVFirefox  = "org.mozilla.tv.firefox"
)

var (
	osCodes     = invert(osNames)
	osFamilyOf  = familyIndex(osFamilies)
	osByCompact = compactIndex(osNames)
)

// osFamily returns the family of a short code, or "".
func osFamily(code string) string {
	return osFamilyOf[code]
}

// osFamilyByName returns the family of a canonical OS name, or "".
func osFamilyByName(name string) string {
	return osFamilyOf[osCodes[name]]
}

// isDesktopOS reports whether the named system only runs on desktops.
func isDesktopOS(name string) bool {
	_, ok := desktopOSFamilies[osFamilyByName(name)]
	return ok
}

// mapGeneration looks a version up in a generation table, first verbatim
// and then by its major component. Unknown versions map to "".
func mapGeneration(table map[string]string, v string) string {
	if g, ok := table[v]; ok {
		return g
	}
	head, _, _ := cutDot(v)
	return table[head]
}
