// Package charset converts legacy-encoded playlist text to UTF-8.
//
// Playlists written by older players are frequently Windows-1252, Latin-1 or
// Shift_JIS rather than UTF-8. [NewReader] wraps a source with the decoder
// for a WHATWG encoding label so the parsers downstream only ever see UTF-8.
package charset
