package useragent

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/rules"
	"github.com/dmitrymomot/uadetect/pkg/version"
)

// osGuess is the OS as seen by one evidence source.
type osGuess struct {
	name    string
	short   string
	version string
}

// detectOS reconciles the user agent and Client Hints views of the
// operating system. It returns nil when neither source names one.
func (d *Detector) detectOS(ua string, hints clienthints.Hints) *OS {
	fromUA := d.osFromUA(ua)
	fromCH := d.osFromHints(hints)

	var name, short, ver string
	switch {
	case fromCH.name != "":
		name, short, ver = mergeOS(fromUA, fromCH)
	case fromUA.name != "":
		name, short, ver = fromUA.name, fromUA.short, fromUA.version
	}

	// Family follows the short code kept by the merge, which stays the
	// Client Hints code when only the display name was refined.
	family := osFamily(short)

	switch app := hints.App; {
	case has(androidOnlyApps, app) && name != osAndroid:
		name, short, family, ver = osAndroid, osCodes[osAndroid], osAndroid, ""
	case app == appLineageBrowser && name != osLineageOS:
		name, short, family = osLineageOS, osCodes[osLineageOS], osAndroid
		ver = mapGeneration(lineageOSVersions, ver)
	case app == appFireTVFirefox && name != osFireOS:
		name, short, family = osFireOS, osCodes[osFireOS], osAndroid
		ver = mapGeneration(fireOSVersions, ver)
	}

	if name == "" {
		return nil
	}
	return &OS{
		Name:      name,
		ShortName: short,
		Version:   ver,
		Platform:  platform(ua, hints),
		Family:    family,
	}
}

func (d *Detector) osFromUA(ua string) osGuess {
	r, m, ok := d.catalogs.oss.Match(ua)
	if !ok {
		return osGuess{}
	}
	short, ok := osCodes[r.Name]
	if !ok {
		return osGuess{}
	}

	ver := version.Build(r.VersionTemplate(), m, d.truncation)
	if len(r.Versions) > 0 {
		if vr, vm, ok := rules.MatchFirst(r.Versions, ua); ok {
			ver = version.Build(vr.VersionTemplate(), vm, d.truncation)
		}
	}
	return osGuess{name: r.Name, short: short, version: ver}
}

func (d *Detector) osFromHints(hints clienthints.Hints) osGuess {
	if hints.Platform == "" {
		return osGuess{}
	}
	key := compact(hints.Platform)
	name, ok := osHintAliases[key]
	if !ok {
		if name, ok = osByCompact[key]; !ok {
			return osGuess{}
		}
	}

	ver := hints.PlatformVersion
	if name == osWindows && ver != "" {
		ver = windowsHintVersion(ver)
	}
	return osGuess{
		name:    name,
		short:   osCodes[name],
		version: version.Build(ver, nil, d.truncation),
	}
}

// windowsHintVersion translates Sec-CH-UA-Platform-Version on Windows,
// which reports the platform generation rather than the marketing version.
func windowsHintVersion(v string) string {
	head, tail, _ := cutDot(v)
	major, err := strconv.Atoi(head)
	if err != nil {
		return v
	}
	switch {
	case major == 0:
		minorPart, _, _ := cutDot(tail)
		minor, _ := strconv.Atoi(minorPart)
		if mapped, ok := windowsHintMinor[minor]; ok {
			return mapped
		}
		return v
	case major <= 10:
		return "10"
	default:
		return "11"
	}
}

// mergeOS reconciles both guesses when Client Hints named a system. The
// Client Hints view is the base; the user agent refines it.
func mergeOS(fromUA, fromCH osGuess) (name, short, ver string) {
	name, short, ver = fromCH.name, fromCH.short, fromCH.version
	uaFamily := osFamily(fromUA.short)

	if ver == "" && osFamily(fromCH.short) == uaFamily {
		ver = fromUA.version
	}

	// 0.0.0 stands for 7, 8 or 8.1; only the user agent can tell which.
	if name == osWindows && strings.Trim(ver, "0.") == "" && ver != "" {
		ver = fromUA.version
		if ver == "10" {
			ver = ""
		}
	}

	if uaFamily == name && fromUA.name != name {
		name = fromUA.name
		switch name {
		case osLeafOS, osHarmonyOS:
			ver = ""
		case osPICOOS:
			ver = fromUA.version
		case osFireOS:
			if fromCH.version != "" {
				ver = mapGeneration(fireOSVersions, ver)
			}
		}
	}

	switch {
	case name == osGNULinux && fromUA.name == osChromeOS && fromCH.version == fromUA.version:
		name, short = fromUA.name, fromUA.short
	case name == osAndroid && fromUA.name == osChromeOS:
		name, short, ver = fromUA.name, fromUA.short, ""
	case name == osGNULinux && fromUA.name == osMetaHorizon:
		name, short = fromUA.name, fromUA.short
	}
	return name, short, ver
}

var (
	platformARM     = rules.MustCompile(`arm[ _;)ev]|.*arm$|.*arm64|aarch64|Apple ?TV|Watch ?OS|Watch1,[12]`)
	platformLoong   = rules.MustCompile(`loongarch64`)
	platformMIPS    = rules.MustCompile(`mips`)
	platformSuperH  = rules.MustCompile(`sh4`)
	platformSPARC64 = rules.MustCompile(`sparc64`)
	platformX64     = rules.MustCompile(`64-?bit|WOW64|(?:Intel)?x64|WINDOWS_64|win64|.*amd64|.*x86_?64`)
	platformX86     = rules.MustCompile(`.*32bit|.*win32|(?:i[0-9]|x)86|i86pc`)
)

// platform derives the CPU architecture, preferring Client Hints.
func platform(ua string, hints clienthints.Hints) string {
	if arch := strings.ToLower(hints.Architecture); arch != "" {
		switch {
		case strings.Contains(arch, "arm"):
			return "ARM"
		case strings.Contains(arch, "loongarch64"):
			return "LoongArch64"
		case strings.Contains(arch, "mips"):
			return "MIPS"
		case strings.Contains(arch, "sh4"):
			return "SuperH"
		case strings.Contains(arch, "sparc64"):
			return "SPARC64"
		case strings.Contains(arch, "x64"),
			strings.Contains(arch, "x86") && hints.Bitness == "64":
			return "x64"
		case strings.Contains(arch, "x86"):
			return "x86"
		}
	}

	switch {
	case platformARM.MatchString(ua):
		return "ARM"
	case platformLoong.MatchString(ua):
		return "LoongArch64"
	case platformMIPS.MatchString(ua):
		return "MIPS"
	case platformSuperH.MatchString(ua):
		return "SuperH"
	case platformSPARC64.MatchString(ua):
		return "SPARC64"
	case platformX64.MatchString(ua):
		return "x64"
	case platformX86.MatchString(ua):
		return "x86"
	}
	return ""
}
