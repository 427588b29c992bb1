package useragent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetect/pkg/clienthints"
)

const (
	macUA    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"
	chromeOS = "Mozilla/5.0 (X11; CrOS x86_64 14541.0.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

func TestParse_OS(t *testing.T) {
	t.Parallel()
	d := newDetector(t)

	tests := []struct {
		name         string
		ua           string
		headers      map[string]string
		wantName     string
		wantShort    string
		wantVersion  string
		wantFamily   string
		wantPlatform string
	}{
		{
			name:        "Mac from the user agent",
			ua:          macUA,
			wantName:    "Mac",
			wantShort:   "MAC",
			wantVersion: "10.15.7",
			wantFamily:  "Mac",
		},
		{
			name: "Mac version and architecture from hints",
			ua:   macUA,
			headers: map[string]string{
				"Sec-CH-UA-Platform":         `"macOS"`,
				"Sec-CH-UA-Platform-Version": `"14.2.1"`,
				"Sec-CH-UA-Arch":             `"arm"`,
			},
			wantName:     "Mac",
			wantShort:    "MAC",
			wantVersion:  "14.2.1",
			wantFamily:   "Mac",
			wantPlatform: "ARM",
		},
		{
			name: "Mac from hints overrides a Linux user agent",
			ua:   "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			headers: map[string]string{
				"Sec-CH-UA-Platform":         `"macOS"`,
				"Sec-CH-UA-Platform-Version": `"14.2.1"`,
			},
			wantName:     "Mac",
			wantShort:    "MAC",
			wantVersion:  "14.2.1",
			wantFamily:   "Mac",
			wantPlatform: "x64",
		},
		{
			name: "Windows 11 is only visible in hints",
			ua:   chromeWindowsUA,
			headers: map[string]string{
				"Sec-CH-UA-Platform":         `"Windows"`,
				"Sec-CH-UA-Platform-Version": `"15.0.0"`,
			},
			wantName:     "Windows",
			wantShort:    "WIN",
			wantVersion:  "11",
			wantFamily:   "Windows",
			wantPlatform: "x64",
		},
		{
			name: "Windows 8.1 reported as a 0.x generation",
			ua:   "Mozilla/5.0 (Windows NT 6.3; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/109.0.0.0 Safari/537.36",
			headers: map[string]string{
				"Sec-CH-UA-Platform":         `"Windows"`,
				"Sec-CH-UA-Platform-Version": `"0.3.0"`,
			},
			wantName:     "Windows",
			wantShort:    "WIN",
			wantVersion:  "8.1",
			wantFamily:   "Windows",
			wantPlatform: "x64",
		},
		{
			name: "Chrome OS when the Linux hint carries the same build",
			ua:   chromeOS,
			headers: map[string]string{
				"Sec-CH-UA-Platform":         `"Linux"`,
				"Sec-CH-UA-Platform-Version": `"14541.0.0"`,
			},
			wantName:     "Chrome OS",
			wantShort:    "COS",
			wantVersion:  "14541.0.0",
			wantFamily:   "Chrome OS",
			wantPlatform: "x64",
		},
		{
			name: "Linux hint wins when the builds differ",
			ua:   chromeOS,
			headers: map[string]string{
				"Sec-CH-UA-Platform":         `"Linux"`,
				"Sec-CH-UA-Platform-Version": `"15000.0.0"`,
			},
			wantName:     "GNU/Linux",
			wantShort:    "LIN",
			wantVersion:  "15000.0.0",
			wantFamily:   "GNU/Linux",
			wantPlatform: "x64",
		},
		{
			name: "HarmonyOS refines Android but keeps the hinted code",
			ua:   "Mozilla/5.0 (Linux; Android 12; HarmonyOS; NOH-AN00; HMSCore 6.11.0.302) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/99.0.4844.88 Mobile Safari/537.36",
			headers: map[string]string{
				"Sec-CH-UA-Platform":         `"Android"`,
				"Sec-CH-UA-Platform-Version": `"12.0.0"`,
			},
			wantName:     "HarmonyOS",
			wantShort:    "AND",
			wantVersion:  "",
			wantFamily:   "Android",
			wantPlatform: "",
		},
		{
			name: "Android-only app forces Android",
			ua:   "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			headers: map[string]string{
				"X-Requested-With": "com.hisense.odinbrowser",
			},
			wantName:     "Android",
			wantShort:    "AND",
			wantVersion:  "",
			wantFamily:   "Android",
			wantPlatform: "x64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := d.Parse(context.Background(), tt.ua, clienthints.New(tt.headers))
			require.NoError(t, err)
			require.NotNil(t, res.OS)

			assert.Equal(t, tt.wantName, res.OS.Name)
			assert.Equal(t, tt.wantShort, res.OS.ShortName)
			assert.Equal(t, tt.wantVersion, res.OS.Version)
			assert.Equal(t, tt.wantFamily, res.OS.Family)
			assert.Equal(t, tt.wantPlatform, res.OS.Platform)
		})
	}
}
