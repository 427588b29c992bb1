package useragent

// Device types. The set is closed: device catalogs may only use these values.
const (
	DeviceTypeDesktop             = "desktop"
	DeviceTypeSmartphone          = "smartphone"
	DeviceTypeTablet              = "tablet"
	DeviceTypeFeaturePhone        = "feature phone"
	DeviceTypeConsole             = "console"
	DeviceTypeTV                  = "tv"
	DeviceTypeCarBrowser          = "car browser"
	DeviceTypeSmartDisplay        = "smart display"
	DeviceTypeCamera              = "camera"
	DeviceTypePortableMediaPlayer = "portable media player"
	DeviceTypePhablet             = "phablet"
	DeviceTypeSmartSpeaker        = "smart speaker"
	DeviceTypeWearable            = "wearable"
	DeviceTypePeripheral          = "peripheral"
)

var deviceTypes = map[string]struct{}{
	DeviceTypeDesktop:             {},
	DeviceTypeSmartphone:          {},
	DeviceTypeTablet:              {},
	DeviceTypeFeaturePhone:        {},
	DeviceTypeConsole:             {},
	DeviceTypeTV:                  {},
	DeviceTypeCarBrowser:          {},
	DeviceTypeSmartDisplay:        {},
	DeviceTypeCamera:              {},
	DeviceTypePortableMediaPlayer: {},
	DeviceTypePhablet:             {},
	DeviceTypeSmartSpeaker:        {},
	DeviceTypeWearable:            {},
	DeviceTypePeripheral:          {},
}

// Client types of non-browser software.
const (
	ClientTypeBrowser     = "browser"
	ClientTypeFeedReader  = "feed reader"
	ClientTypeMobileApp   = "mobile app"
	ClientTypeMediaPlayer = "media player"
	ClientTypePIM         = "pim"
	ClientTypeLibrary     = "library"
)

// Names compared in merge and waterfall logic.
const (
	osAndroid     = "Android"
	osChromeOS    = "Chrome OS"
	osFireOS      = "Fire OS"
	osGNULinux    = "GNU/Linux"
	osHarmonyOS   = "HarmonyOS"
	osJavaME      = "Java ME"
	osKaiOS       = "KaiOS"
	osLeafOS      = "LeafOS"
	osLineageOS   = "Lineage OS"
	osMetaHorizon = "Meta Horizon"
	osPICOOS      = "PICO OS"
	osCoolita     = "Coolita OS"
	osWindows     = "Windows"
	osWindowsRT   = "Windows RT"

	browserChromium     = "Chromium"
	browserChromeWV     = "Chrome Webview"
	browserEdge         = "Microsoft Edge"
	browserIridium      = "Iridium"
	browser360          = "360 Secure Browser"
	browserVewd         = "Vewd Browser"
	browserDuckDuckGo   = "DuckDuckGo Privacy Browser"
	browserEvery        = "Every Browser"
	browserWolvic       = "Wolvic"
	browserFlow         = "Flow Browser"
	browserFamilyChrome = "Chrome"
	browserFamilyFF     = "Firefox"

	engineBlink  = "Blink"
	engineGecko  = "Gecko"
	engineClecko = "Clecko"

	brandApple = "Apple"
)
