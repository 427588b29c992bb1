package useragent

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/rules"
)

var (
	// frozenAndroidUA is the reduced Android token Chrome sends since UA
	// reduction: the real version and model only travel in Client Hints.
	frozenAndroidUA = regexp.MustCompile(`(?i)Android (?:1[0-6][.\d]*; K|1[0-6])\) AppleWebKit`)
	frozenAndroid   = regexp.MustCompile(`(?i)Android (?:1[0-6][.\d]*; K|1[0-6])`)
	telegramAndroid = regexp.MustCompile(`(?i)Telegram-Android/`)

	desktopMarker  = rules.MustCompile(`Windows (?:NT|IoT)|X11; Linux x86_64`)
	desktopExclude = rules.MustCompile(`CE-HTML| Mozilla/|Andr[o0]id|Tablet|Mobile|iPhone|Windows Phone|ricoh|OculusBrowser|PicoBrowser|Lenovo|compatible; MSIE|Trident/|Tesla/|XBOX|FBMD/|ARM; ?[^)]+`)
)

const linuxDesktopToken = "X11; Linux x86_64"

// hasClientHintsFragment reports whether ua is a reduced Android string.
// Telegram sends the same marker without reduction.
func hasClientHintsFragment(ua string) bool {
	return frozenAndroidUA.MatchString(ua) && !telegramAndroid.MatchString(ua)
}

// hasDesktopFragment reports whether ua looks like a generic Windows or
// Linux desktop with no mobile, TV or embedded marker.
func hasDesktopFragment(ua string) bool {
	return desktopMarker.MatchString(ua) && !desktopExclude.MatchString(ua)
}

// restore splices the Client Hints model (and Android version) back into a
// reduced user agent so that the device catalogs can see them. Without a
// model it returns ua unchanged. Restoring twice is a no-op.
func restore(ua string, hints clienthints.Hints) string {
	model := hints.Model
	if model == "" {
		return ua
	}

	if hasClientHintsFragment(ua) {
		osVersion := hints.PlatformVersion
		if osVersion == "" {
			osVersion = "10"
		}
		ua = frozenAndroid.ReplaceAllLiteralString(ua, "Android "+osVersion+"; "+model)
	}

	if hasDesktopFragment(ua) {
		withModel := linuxDesktopToken + "; " + model
		if !strings.Contains(ua, withModel) {
			ua = strings.ReplaceAll(ua, linuxDesktopToken, withModel)
		}
	}
	return ua
}
