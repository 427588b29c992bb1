// Package version formats, truncates and compares the dot-separated version
// strings captured from User-Agent rules.
//
// Build turns a rule's version template ("$1", "$1.$2", "10") into a concrete
// value using the regex captures of the match, normalizing underscores
// ("14_4" becomes "14.4") and truncating to the configured Truncation:
//
//	version.Build("$1", []string{"Chrome/120.0.6099.71", "120.0.6099.71"}, version.TruncateMinor) // "120.0"
//
// Compare requires every segment to be numeric. Inputs such as "abc" or "1.x"
// are reported as incomparable (ok == false) and never coerced to zero.
//
//	c, ok := version.Compare("8.1", "8")
//	if ok && c >= 0 {
//		// Windows 8 or later
//	}
package version
