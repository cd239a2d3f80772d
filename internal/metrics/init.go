package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, outcome := range []string{OutcomeOK, OutcomeNotPLS, OutcomeCorrupt, OutcomeError} {
		DecodesTotal.WithLabelValues(outcome)
	}
}
