// Package api exposes a Detector over HTTP.
//
// Routes:
//
//	GET  /healthz    liveness probe, always ALIVE
//	GET  /readyz     readiness probe, runs the supplied checks
//	GET  /v1/me      classifies the calling request itself
//	GET  /v1/parse   classifies ?ua=..., other query parameters are read as hints
//	POST /v1/parse   classifies {"user_agent": "...", "headers": {...}}
//
// Successful responses carry the Result under "data"; failures carry an
// "error" object with a stable code. The router is served by
// httpserver.Server.
package api
