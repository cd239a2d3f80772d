// Package startup handles service configuration and lifecycle logging.
//
// # Configuration
//
// [LoadConfig] reads these environment variables:
//
//   - PORT: decode API port (default: 8080)
//   - METRICS_PORT: Prometheus metrics port (default: 9090)
//   - METRICS_ENABLED: serve metrics (default: true)
//   - LOG_HEALTH_CHECKS: log health check requests (default: true)
//   - MAX_PLAYLIST_BYTES: largest accepted request body (default: 1048576)
//   - DEFAULT_CHARSET: encoding assumed when a request names none (default: utf-8)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//
// Invalid numeric or boolean values fall back to the default with a warning.
// An unknown DEFAULT_CHARSET or a metrics port equal to PORT is an error.
//
// # Build Information
//
// Version, Commit and BuildTime are injected with -ldflags and exposed via
// [GetBuildInfo].
package startup
