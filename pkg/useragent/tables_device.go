package useragent

// formFactorTypes maps Sec-CH-UA-Form-Factors tokens to device types. The
// first token present in the hint wins, so order is significant.
var formFactorTypes = []struct {
	token      string
	deviceType string
}{
	{"automotive", DeviceTypeCarBrowser},
	{"xr", DeviceTypeWearable},
	{"watch", DeviceTypeWearable},
	{"mobile", DeviceTypeSmartphone},
	{"tablet", DeviceTypeTablet},
	{"desktop", DeviceTypeDesktop},
	{"eink", DeviceTypeTablet},
}

// mobileDeviceTypes are the types IsMobile reports.
var mobileDeviceTypes = set(
	DeviceTypeSmartphone,
	DeviceTypeFeaturePhone,
	DeviceTypePhablet,
)

// deviceKind tags a device detector so the shared matcher knows which type
// to fall back to and which catalog it reports in logs.
type deviceKind int

const (
	kindHbbTV deviceKind = iota
	kindShellTV
	kindNotebook
	kindConsole
	kindCarBrowser
	kindCamera
	kindPortableMediaPlayer
	kindMobile
)

// defaultTypes is the device type assumed when a matching rule names none.
var defaultTypes = map[deviceKind]string{
	kindHbbTV:               DeviceTypeTV,
	kindShellTV:             DeviceTypeTV,
	kindNotebook:            DeviceTypeDesktop,
	kindConsole:             DeviceTypeConsole,
	kindCarBrowser:          DeviceTypeCarBrowser,
	kindCamera:              DeviceTypeCamera,
	kindPortableMediaPlayer: DeviceTypePortableMediaPlayer,
	kindMobile:              "",
}

func (k deviceKind) String() string {
	switch k {
	case kindHbbTV:
		return "hbbtv"
	case kindShellTV:
		return "shell_tv"
	case kindNotebook:
		return "notebook"
	case kindConsole:
		return "console"
	case kindCarBrowser:
		return "car_browser"
	case kindCamera:
		return "camera"
	case kindPortableMediaPlayer:
		return "portable_media_player"
	case kindMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// Brands the waterfall assigns on its own.
const brandCoocaa = "coocaa"
