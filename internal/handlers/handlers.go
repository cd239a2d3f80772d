package handlers

import (
	"sync/atomic"
	"time"

	"pls-decoder/internal/startup"
)

// Handlers holds the state shared by all endpoints
type Handlers struct {
	maxPlaylistBytes int64
	defaultCharset   string
	startTime        time.Time
	ready            atomic.Bool
}

// New creates handlers from the service configuration
func New(config *startup.Config) *Handlers {
	return &Handlers{
		maxPlaylistBytes: config.MaxPlaylistBytes,
		defaultCharset:   config.DefaultCharset,
		startTime:        time.Now(),
	}
}

// SetReady marks the service as able to accept traffic
func (h *Handlers) SetReady(ready bool) {
	h.ready.Store(ready)
}
