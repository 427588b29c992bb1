package useragent

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OS is the reconciled operating system facet.
type OS struct {
	Name      string `msgpack:"name" json:"name"`
	ShortName string `msgpack:"short_name" json:"short_name"`
	Version   string `msgpack:"version,omitempty" json:"version,omitempty"`
	// Platform is the CPU architecture: ARM, LoongArch64, MIPS, SuperH,
	// SPARC64, x64 or x86.
	Platform string `msgpack:"platform,omitempty" json:"platform,omitempty"`
	Family   string `msgpack:"family,omitempty" json:"family,omitempty"`
}

// Browser is the reconciled browser facet.
type Browser struct {
	Name          string `msgpack:"name" json:"name"`
	ShortName     string `msgpack:"short_name" json:"short_name"`
	Version       string `msgpack:"version,omitempty" json:"version,omitempty"`
	Engine        string `msgpack:"engine,omitempty" json:"engine,omitempty"`
	EngineVersion string `msgpack:"engine_version,omitempty" json:"engine_version,omitempty"`
	Family        string `msgpack:"family,omitempty" json:"family,omitempty"`
}

// Client is recognized non-browser software: a feed reader, mobile app,
// media player, PIM or HTTP library.
type Client struct {
	Type    string `msgpack:"type" json:"type"`
	Name    string `msgpack:"name" json:"name"`
	Version string `msgpack:"version,omitempty" json:"version,omitempty"`
}

// Device is the hardware facet. Any field may be empty.
type Device struct {
	Type  string `msgpack:"type,omitempty" json:"type,omitempty"`
	Brand string `msgpack:"brand,omitempty" json:"brand,omitempty"`
	Model string `msgpack:"model,omitempty" json:"model,omitempty"`
}

// Producer is the organization operating a bot.
type Producer struct {
	Name string `msgpack:"name" json:"name"`
	URL  string `msgpack:"url,omitempty" json:"url,omitempty"`
}

// Bot identifies an automated agent.
type Bot struct {
	Name     string    `msgpack:"name" json:"name"`
	Category string    `msgpack:"category,omitempty" json:"category,omitempty"`
	URL      string    `msgpack:"url,omitempty" json:"url,omitempty"`
	Producer *Producer `msgpack:"producer,omitempty" json:"producer,omitempty"`
}

// Result is the outcome of one classification. When Bot is set every other
// facet is nil, and Browser and Client are never both set.
type Result struct {
	OS      *OS      `msgpack:"os,omitempty" json:"os,omitempty"`
	Browser *Browser `msgpack:"browser,omitempty" json:"browser,omitempty"`
	Client  *Client  `msgpack:"client,omitempty" json:"client,omitempty"`
	Device  *Device  `msgpack:"device,omitempty" json:"device,omitempty"`
	Bot     *Bot     `msgpack:"bot,omitempty" json:"bot,omitempty"`
}

func (r *Result) empty() bool {
	return r.OS == nil && r.Browser == nil && r.Client == nil && r.Device == nil && r.Bot == nil
}

// DeviceType returns the device type or "".
func (r *Result) DeviceType() string {
	if r == nil || r.Device == nil {
		return ""
	}
	return r.Device.Type
}

// IsBot reports whether the request came from an automated agent.
func (r *Result) IsBot() bool { return r != nil && r.Bot != nil }

// IsMobile reports whether the device is a phone.
func (r *Result) IsMobile() bool { return has(mobileDeviceTypes, r.DeviceType()) }

// IsDesktop reports whether the device is a desktop or notebook.
func (r *Result) IsDesktop() bool { return r.DeviceType() == DeviceTypeDesktop }

// IsTablet reports whether the device is a tablet.
func (r *Result) IsTablet() bool { return r.DeviceType() == DeviceTypeTablet }

// IsTV reports whether the device is a television.
func (r *Result) IsTV() bool { return r.DeviceType() == DeviceTypeTV }

// ShortIdentifier returns a compact human-readable label for logs, e.g.
// "Chrome Mobile/120.0.0.0 (Android 14, Smartphone)" or "Bot: Googlebot".
func (r *Result) ShortIdentifier() string {
	if r == nil {
		return "Unknown device"
	}
	if r.Bot != nil {
		return fmt.Sprintf("Bot: %s", r.Bot.Name)
	}

	var name, ver string
	switch {
	case r.Browser != nil:
		name, ver = r.Browser.Name, r.Browser.Version
	case r.Client != nil:
		name, ver = r.Client.Name, r.Client.Version
	}
	if ver == "" {
		ver = "?"
	}

	osName := "Unknown OS"
	if r.OS != nil {
		osName = r.OS.Name
		if r.OS.Version != "" {
			osName += " " + r.OS.Version
		}
	}

	deviceType := ""
	if t := r.DeviceType(); t != "" {
		deviceType = cases.Title(language.English).String(t)
	}

	switch {
	case name == "" && r.OS == nil && deviceType == "":
		return "Unknown device"
	case name == "" && deviceType != "":
		return fmt.Sprintf("%s %s", osName, deviceType)
	case name == "":
		return osName
	case deviceType == "":
		return fmt.Sprintf("%s/%s (%s)", name, ver, osName)
	default:
		return fmt.Sprintf("%s/%s (%s, %s)", name, ver, osName, deviceType)
	}
}
