package useragent

import "errors"

var (
	// ErrNotClassified means the input carried nothing recognizable: an empty
	// or letter-less UA without hints, or a UA no facet could be derived from.
	ErrNotClassified = errors.New("user agent not classified")

	// ErrCatalogLoad is returned by New when an embedded rule catalog is
	// missing or corrupt. It is joined with the underlying cause.
	ErrCatalogLoad = errors.New("failed to load rule catalogs")

	ErrInvalidConfig = errors.New("invalid user agent detector configuration")
	ErrCacheDriver   = errors.New("unknown cache driver")
)
