// Package playlist decodes PLS playlists.
//
// A PLS file is INI text with a single [playlist] section:
//
//	[playlist]
//	NumberOfEntries=2
//	File1=http://example.com:8000/stream
//	Title1=Example Radio
//	Length1=-1
//	File2=song.mp3
//	Title2=A Song
//	Length2=210
//	Version=2
//
// The generic section and key/value syntax is handled by package ini; this
// package applies the PLS rules on top of the parsed document:
//   - The [playlist] section must exist, otherwise [ErrNotPLS]
//   - NumberOfEntries must be a non-negative decimal integer, otherwise [ErrCorruptPLS]
//   - Every FileN, TitleN and LengthN for N in 1..NumberOfEntries must exist,
//     otherwise a [*FieldError] wrapping [ErrCorruptPLS]
//
// Entries are produced lazily by a [Decoder]. Nothing is read until the first
// call to [Decoder.Next], and a missing field for entry N is reported only when
// entry N is requested, after entries 1..N-1 have been delivered. Values are
// passed through exactly as written; Length is not interpreted.
package playlist
