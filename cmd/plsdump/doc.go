// Package main provides plsdump, a command line tool that prints the entries
// of one or more PLS playlists.
//
// # Usage
//
//	plsdump [-charset NAME] [-json] [-v] FILE...
//
// A FILE of "-" reads the playlist from standard input. It may appear once.
//
// # Output
//
// When standard output is a terminal, entries are printed as an aligned
// table. Otherwise each entry is written as one tab-separated line of
// url, title and length, which suits cut(1) and awk(1). With -json each
// file produces one JSON object per line:
//
//	{"file":"radio.pls","count":1,"entries":[{"url":"...","title":"...","length":"-1"}]}
//
// Entries decoded before a failure are still printed. The failure is
// reported on standard error.
//
// # Exit Codes
//
//	0  every playlist decoded
//	1  at least one playlist could not be read or decoded
//	2  invalid flags, no files given, or "-" repeated
package main
