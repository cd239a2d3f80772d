package handlers

import (
	"errors"
	"net/http"
	"time"

	"pls-decoder/internal/charset"
	"pls-decoder/internal/logging"
	"pls-decoder/internal/metrics"
	"pls-decoder/internal/playlist"
)

const (
	kindCharset  = "charset"
	kindTooLarge = "too_large"
)

// DecodeResponse is the body of every /api/decode response
type DecodeResponse struct {
	Count   int              `json:"count"`
	Entries []playlist.Entry `json:"entries"`
	Error   string           `json:"error,omitempty"`
	Kind    string           `json:"kind,omitempty"`
}

// DecodePlaylist decodes the PLS document in the request body
func (h *Handlers) DecodePlaylist(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("charset")
	if name == "" {
		name = h.defaultCharset
	}

	body := http.MaxBytesReader(w, r.Body, h.maxPlaylistBytes)
	src, err := charset.NewReader(body, name)
	if err != nil {
		writeDecodeResponse(w, http.StatusBadRequest, DecodeResponse{
			Entries: []playlist.Entry{},
			Error:   err.Error(),
			Kind:    kindCharset,
		})
		return
	}

	start := time.Now()
	resp := DecodeResponse{Entries: []playlist.Entry{}}

	var decodeErr error
	for entry, err := range playlist.NewDecoder(src).All() {
		if err != nil {
			decodeErr = err
			break
		}
		resp.Entries = append(resp.Entries, entry)
	}
	resp.Count = len(resp.Entries)

	metrics.ObserveDecode(resp.Count, decodeErr, time.Since(start))

	if decodeErr == nil {
		logging.Debug("Decoded playlist with %d entries in %v", resp.Count, time.Since(start))
		writeDecodeResponse(w, http.StatusOK, resp)
		return
	}

	status, kind := classifyDecodeError(decodeErr)
	if status == http.StatusInternalServerError {
		logging.Error("Failed to read playlist body: %v", decodeErr)
	} else {
		logging.Debug("Rejected playlist after %d entries: %v", resp.Count, decodeErr)
	}

	resp.Error = decodeErr.Error()
	resp.Kind = kind
	writeDecodeResponse(w, status, resp)
}

// classifyDecodeError maps a decode failure to an HTTP status and error kind
func classifyDecodeError(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, kindTooLarge
	}

	kind := metrics.Outcome(err)
	switch kind {
	case metrics.OutcomeNotPLS:
		return http.StatusUnsupportedMediaType, kind
	case metrics.OutcomeCorrupt:
		return http.StatusUnprocessableEntity, kind
	default:
		return http.StatusInternalServerError, kind
	}
}

func writeDecodeResponse(w http.ResponseWriter, status int, resp DecodeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeJSON(w, resp)
}
