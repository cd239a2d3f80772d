// Package ini reads sectioned key/value text into a [Document].
//
// The reader knows nothing about any particular file format built on top of
// INI syntax. It recognizes:
//   - Section headers: [name]
//   - Key/value pairs: key=value (whitespace around key and value is trimmed)
//   - Blank lines and comment lines starting with '#' or ';'
//
// Section and key names are case-insensitive and stored in lower case.
// A repeated key within a section keeps its last value, and a repeated
// section header continues the earlier section. Values are kept verbatim:
// inline '#' or ';' characters and surrounding quotes are not stripped.
//
// Only the first '=' splits a line, so values may contain '='. Backticks
// and triple quotes have no special meaning. A leading UTF-8 byte order
// mark is skipped.
//
// Any key/value pair that appears before the first section header or under
// an explicit [DEFAULT] header, and any line that has none of the shapes
// above, is reported as [ErrMalformedStructure] with the line number.
// Formats layered on this package use that error to decide that the input
// is not theirs.
package ini
