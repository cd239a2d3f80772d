// Package handlers implements the HTTP endpoints of the decode service.
//
// # Decode
//
//	POST /api/decode[?charset=NAME]
//
// The request body is a PLS document. The optional charset names the body's
// encoding (WHATWG labels such as latin1 or shift_jis); the configured default
// applies otherwise. Responses are JSON:
//
//	{"count": 2, "entries": [{"url": "...", "title": "...", "length": "-1"}, ...]}
//
// Failures keep the same shape and add "error" and "kind". When a playlist
// breaks part way through, the entries decoded before the failure are still
// returned.
//
//	400 charset  unknown charset parameter
//	413 too_large body exceeds MAX_PLAYLIST_BYTES
//	415 not_pls   body is not a PLS document
//	422 corrupt   NumberOfEntries or a per-entry key is invalid
//	500 error     the body could not be read
//
// # Health and Version
//
//   - GET /health: status, version and uptime
//   - GET /livez: always 200 while the process runs
//   - GET /readyz: 200 once the server has finished starting
//   - GET /version: build information
package handlers
