// Package clienthints parses User-Agent Client Hints request headers into a
// typed, immutable Hints value.
//
// Browsers that reduce the User-Agent string still send platform, model and
// full version details through the Sec-CH-UA-* headers once a server asks for
// them with Accept-CH. The detector in pkg/useragent uses these values both to
// restore the reduced UA string and as a second, independent evidence source.
//
// Header names are matched case-insensitively with underscores treated as
// dashes, so the package accepts direct header names (Sec-CH-UA-Model),
// CGI-style names (HTTP_SEC_CH_UA_MODEL) and the short keys returned by
// navigator.userAgentData.getHighEntropyValues (model, platformVersion).
//
//	hints := clienthints.FromRequest(r)
//	if hints.Model != "" {
//		// device model reported by the browser
//	}
//
// Malformed values never produce errors: unparseable brand list entries are
// skipped and unknown headers are ignored.
package clienthints
