package version

import "errors"

// ErrUnknownTruncation is returned when a truncation policy name is not recognized.
var ErrUnknownTruncation = errors.New("unknown version truncation policy")
