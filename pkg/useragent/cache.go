package useragent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/dmitrymomot/uadetect/pkg/cache"
	"github.com/dmitrymomot/uadetect/pkg/clienthints"
	"github.com/dmitrymomot/uadetect/pkg/logger"
)

// cacheKey identifies a classification input. Results depend on the hints
// too, so a digest of their canonical form is appended when any were sent.
func (d *Detector) cacheKey(restoredUA string, hints clienthints.Hints) string {
	key := d.prefix + restoredUA
	if hints.IsEmpty() {
		return key
	}
	sum := sha256.Sum256([]byte(hints.Canonical()))
	return key + "#" + hex.EncodeToString(sum[:8])
}

// cached reads a stored result. Any failure counts as a miss.
func (d *Detector) cached(ctx context.Context, key string) (*Result, bool) {
	data, err := d.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			d.logger.DebugContext(ctx, "result cache read failed", logger.CacheKey(key), logger.Error(err))
		}
		return nil, false
	}

	res := new(Result)
	if err := msgpack.Unmarshal(data, res); err != nil {
		d.logger.DebugContext(ctx, "cached result is corrupt", logger.CacheKey(key), logger.Error(err))
		return nil, false
	}
	return res, true
}

// remember stores res. Failures are logged and otherwise ignored.
func (d *Detector) remember(ctx context.Context, key string, res *Result) {
	data, err := msgpack.Marshal(res)
	if err != nil {
		d.logger.DebugContext(ctx, "result encoding failed", logger.CacheKey(key), logger.Error(err))
		return
	}
	if err := d.store.Set(ctx, key, data); err != nil {
		d.logger.DebugContext(ctx, "result cache write failed", logger.CacheKey(key), logger.Error(err))
	}
}
