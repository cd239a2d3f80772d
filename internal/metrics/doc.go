// Package metrics provides Prometheus instrumentation for the PLS decoder.
//
// All metrics are prefixed with "pls_decoder_" and registered with the
// default registry through promauto.
//
// # Metric Categories
//
// ## HTTP Metrics
//
//   - HTTPRequestsTotal: Counter of requests by method, path and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of requests being processed
//
// ## Decode Metrics
//
//   - DecodesTotal: Counter of decodes by outcome (ok, not_pls, corrupt, error)
//   - DecodeDuration: Histogram of decode duration
//   - EntriesDecoded: Counter of entries delivered to callers
//   - DecodeEntries: Histogram of entries per decode
//
// ## Application Info
//
//   - AppInfo: Gauge with version, commit and Go version labels
//
// # Recording Metrics
//
//	start := time.Now()
//	entries, err := playlist.Decode(r)
//	metrics.ObserveDecode(len(entries), err, time.Since(start))
//
// # Prometheus Queries
//
// Share of uploads that are not PLS at all:
//
//	sum(rate(pls_decoder_decodes_total{outcome="not_pls"}[5m])) / sum(rate(pls_decoder_decodes_total[5m]))
//
// P95 decode latency:
//
//	histogram_quantile(0.95, sum(rate(pls_decoder_decode_duration_seconds_bucket[5m])) by (le))
package metrics
