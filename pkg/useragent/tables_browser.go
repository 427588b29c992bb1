package useragent

import "strings"

// browserNames maps a short browser code to its canonical name. Every name a
// browser rule can produce must be listed here; a rule naming an unknown
// browser yields no browser at all.
var browserNames = map[string]string{
	"36": "360 Phone Browser",
	"3B": "360 Secure Browser",
	"AL": "Aloha Browser",
	"AN": "Android Browser",
	"AV": "Avast Secure Browser",
	"BR": "Brave",
	"CC": "Coc Coc",
	"CH": "Chrome",
	"CI": "Chrome Mobile iOS",
	"CM": "Chrome Mobile",
	"CR": "Chromium",
	"CV": "Chrome Webview",
	"DD": "DuckDuckGo Privacy Browser",
	"EP": "Epiphany",
	"ES": "Espial TV Browser",
	"EU": "Every Browser",
	"EW": "Edge WebView",
	"FB": "Flow Browser",
	"FF": "Firefox",
	"FI": "Firefox iOS",
	"FM": "Firefox Mobile",
	"FS": "Firefox Focus",
	"HU": "Huawei Browser",
	"I1": "Iridium",
	"IE": "Internet Explorer",
	"IM": "IE Mobile",
	"JE": "Jelly",
	"KO": "Konqueror",
	"KY": "Kylo",
	"MF": "Mobile Safari",
	"MI": "MIUI Browser",
	"NB": "Nokia Browser",
	"NP": "Norton Private Browser",
	"OB": "Oculus Browser",
	"OG": "Opera GX",
	"OI": "Opera Mini",
	"OM": "Opera Mobile",
	"OP": "Opera",
	"PB": "PICO Browser",
	"PE": "Microsoft Edge",
	"PU": "Puffin",
	"QQ": "QQ Browser",
	"SB": "Samsung Browser",
	"SF": "Safari",
	"SG": "Sogou Explorer",
	"SK": "Silk",
	"SR": "Seraphic Sraf",
	"TB": "TV Bro",
	"UC": "UC Browser",
	"VB": "Vewd Browser",
	"VI": "Vivaldi",
	"WO": "Wolvic",
	"YA": "Yandex Browser",
}

// browserFamilies groups browsers sharing an upstream code base.
var browserFamilies = map[string][]string{
	"Chrome": {
		"CH", "CI", "CM", "CR", "CV", "PE", "EW", "BR", "VI", "YA", "SB", "CC",
		"I1", "3B", "AV", "NP", "OB", "PB", "SK", "HU", "MI", "AL",
	},
	"Firefox":           {"FF", "FI", "FM", "FS", "KY"},
	"Internet Explorer": {"IE", "IM"},
	"Safari":            {"SF", "MF"},
	"Opera":             {"OP", "OM", "OI", "OG"},
	"Android Browser":   {"AN"},
	"Konqueror":         {"KO"},
	"Nokia Browser":     {"NB"},
}

// browserHintAliases maps Client Hints brand strings (folded) to the
// canonical browser name when the two spellings differ.
var browserHintAliases = map[string]string{
	"google chrome":           "Chrome",
	"android webview":         "Chrome Webview",
	"duckduckgo":              "DuckDuckGo Privacy Browser",
	"microsoft edge webview2": "Edge WebView",
	"edge":                    "Microsoft Edge",
	"norton secure browser":   "Norton Private Browser",
	"vewd core":               "Vewd Browser",
	"huaweibrowser":           "Huawei Browser",
	"yandex":                  "Yandex Browser",
	"samsung internet":        "Samsung Browser",
}

// genericBrands are wrapper brands the Client Hints walk skips past while a
// more specific sibling may still follow.
var genericBrands = set(browserChromium, browserEdge)

// preferUAVersion lists browsers whose Client Hints version is the Chromium
// version rather than their own.
var preferUAVersion = set(
	"Aloha Browser",
	"Huawei Browser",
	"MIUI Browser",
	"Opera",
	"Opera Mobile",
	"Opera GX",
)

// engineFromUA lists browsers whose engine is always taken from the UA guess.
var engineFromUA = set(browserVewd)

// chromiumGeneric are the UA names Chromium-from-hints does not defer to.
var chromiumGeneric = set(browserChromium, browserChromeWV, "Android Browser")

// mobileOnlyBrowsers never run on desktop hardware.
var mobileOnlyBrowsers = set(
	"360 Phone Browser",
	"Aloha Browser",
	"Chrome Mobile",
	"Chrome Mobile iOS",
	"DuckDuckGo Privacy Browser",
	"Every Browser",
	"Firefox Focus",
	"Firefox iOS",
	"Firefox Mobile",
	"Huawei Browser",
	"IE Mobile",
	"MIUI Browser",
	"Mobile Safari",
	"Opera Mini",
	"Opera Mobile",
)

// tvClients are browsers and apps only shipped on televisions.
var tvClients = set(
	"Kylo",
	"Espial TV Browser",
	"Seraphic Sraf",
	"Vewd Browser",
	"TV Bro",
	"TiviMate",
)

// browserAppHints maps an X-Requested-With package id to the browser that
// embeds the request.
var browserAppHints = map[string]string{
	"org.lineageos.jelly":            "Jelly",
	"com.brave.browser":              "Brave",
	"com.opera.browser":              "Opera",
	"com.opera.mini.native":          "Opera Mini",
	"com.duckduckgo.mobile.android":  "DuckDuckGo Privacy Browser",
	"com.microsoft.emmx":             "Microsoft Edge",
	"com.sec.android.app.sbrowser":   "Samsung Browser",
	"com.yandex.browser":             "Yandex Browser",
	"com.vivaldi.browser":            "Vivaldi",
	"com.huawei.browser":             "Huawei Browser",
	"com.mi.globalbrowser":           "MIUI Browser",
	"com.phlox.tvwebbrowser":         "TV Bro",
	"com.seraphic.openinet.pre":      "Seraphic Sraf",
	"every.browser.inc":              "Every Browser",
	"org.mozilla.tv.firefox":         "Firefox",
	"com.coccoc.trinhduyet":          "Coc Coc",
	"com.aloha.browser":              "Aloha Browser",
	"com.cloudmosa.puffinfree":       "Puffin",
	"org.mozilla.focus":              "Firefox Focus",
	"com.hisense.odinbrowser":        "Vewd Browser",
	"com.appssppa.idesktoppcbrowser": "Chrome",
}

// mobileAppHints maps an X-Requested-With package id to a mobile app name.
var mobileAppHints = map[string]string{
	"com.facebook.katana":      "Facebook",
	"com.facebook.orca":        "Facebook Messenger",
	"com.instagram.android":    "Instagram",
	"com.google.android.gm":    "Gmail",
	"com.snapchat.android":     "Snapchat",
	"jp.naver.line.android":    "LINE",
	"com.twitter.android":      "Twitter",
	"com.tencent.mm":           "WeChat",
	"com.zhiliaoapp.musically": "TikTok",
	"org.telegram.messenger":   "Telegram",
	"com.pinterest":            "Pinterest",
	"com.linkedin.android":     "LinkedIn",
	"ar.tvplayer.tv":           "TiviMate",
}

var (
	browserCodes     = invert(browserNames)
	browserFamilyOf  = familyIndex(browserFamilies)
	browserByFold    = foldIndex(browserNames)
	browserByCompact = compactIndex(browserNames)
)

func foldIndex(names map[string]string) map[string]string {
	out := make(map[string]string, len(names))
	for _, name := range names {
		out[fold(name)] = name
	}
	return out
}

// canonicalBrowser resolves a name produced by a rule or a hint to the
// canonical browser name: exact match ignoring case, then with or without a
// trailing " Browser", then ignoring punctuation and spacing.
func canonicalBrowser(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	key := fold(name)
	if n, ok := browserByFold[key]; ok {
		return n, true
	}

	const suffix = " browser"
	if trimmed, ok := strings.CutSuffix(key, suffix); ok {
		if n, ok := browserByFold[trimmed]; ok {
			return n, true
		}
	} else if n, ok := browserByFold[key+suffix]; ok {
		return n, true
	}

	n, ok := browserByCompact[compact(name)]
	return n, ok
}

// browserFamily returns the family of a canonical browser name, or "".
func browserFamily(name string) string {
	return browserFamilyOf[browserCodes[name]]
}
