package clienthints

import (
	"net/http"
	"strings"
)

// FromHeader builds Hints from net/http headers. Repeated header lines are
// joined with ", " as allowed for list-valued structured headers.
func FromHeader(header http.Header) Hints {
	if len(header) == 0 {
		return Hints{}
	}
	flat := make(map[string]string, len(header))
	for name, values := range header {
		if _, ok := aliases[NormalizeName(name)]; !ok {
			continue
		}
		flat[name] = strings.Join(values, ", ")
	}
	return New(flat)
}

// FromRequest builds Hints from the headers of r.
func FromRequest(r *http.Request) Hints {
	if r == nil {
		return Hints{}
	}
	return FromHeader(r.Header)
}

// AcceptCH lists the high-entropy hints a server has to request with the
// Accept-CH response header before browsers send them.
var AcceptCH = []string{
	"Sec-CH-UA-Arch",
	"Sec-CH-UA-Bitness",
	"Sec-CH-UA-Full-Version",
	"Sec-CH-UA-Full-Version-List",
	"Sec-CH-UA-Model",
	"Sec-CH-UA-Platform-Version",
	"Sec-CH-UA-Form-Factors",
}

// RequestHints sets Accept-CH on w so that subsequent requests carry the
// high-entropy hints.
func RequestHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", strings.Join(AcceptCH, ", "))
}
