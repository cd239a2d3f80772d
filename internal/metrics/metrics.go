package metrics

import (
	"errors"
	"time"

	"pls-decoder/internal/playlist"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode outcome label values
const (
	OutcomeOK      = "ok"
	OutcomeNotPLS  = "not_pls"
	OutcomeCorrupt = "corrupt"
	OutcomeError   = "error"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pls_decoder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pls_decoder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pls_decoder_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Decode metrics
var (
	DecodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pls_decoder_decodes_total",
			Help: "Total number of playlist decodes by outcome",
		},
		[]string{"outcome"},
	)

	DecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pls_decoder_decode_duration_seconds",
			Help:    "Playlist decode duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	EntriesDecoded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pls_decoder_entries_decoded_total",
			Help: "Total number of playlist entries decoded",
		},
	)

	DecodeEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pls_decoder_decode_entries",
			Help:    "Number of entries returned per decode",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pls_decoder_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// Outcome maps a decode error to its outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, playlist.ErrNotPLS):
		return OutcomeNotPLS
	case errors.Is(err, playlist.ErrCorruptPLS):
		return OutcomeCorrupt
	default:
		return OutcomeError
	}
}

// ObserveDecode records one finished decode. entries counts the entries
// delivered before err, if any.
func ObserveDecode(entries int, err error, duration time.Duration) {
	DecodesTotal.WithLabelValues(Outcome(err)).Inc()
	DecodeDuration.Observe(duration.Seconds())
	EntriesDecoded.Add(float64(entries))
	DecodeEntries.Observe(float64(entries))
}
