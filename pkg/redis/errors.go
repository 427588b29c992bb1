package redis

import "errors"

// Errors returned by Connect and Healthcheck.
var (
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not answer within the connect timeout")
	ErrHealthcheckFailed            = errors.New("redis result cache healthcheck failed")
	ErrNilClient                    = errors.New("nil redis client")
)
