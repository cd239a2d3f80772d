package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"pls-decoder/internal/charset"
	"pls-decoder/internal/logging"
	"pls-decoder/internal/playlist"
	"pls-decoder/internal/workers"

	"golang.org/x/term"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	stdinName = "-"
)

type outputMode int

const (
	modeTSV outputMode = iota
	modeTable
	modeJSON
)

type fileResult struct {
	File    string           `json:"file"`
	Count   int              `json:"count"`
	Entries []playlist.Entry `json:"entries"`
	Error   string           `json:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd()))))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, isTerminal bool) int {
	fs := flag.NewFlagSet("plsdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	charsetName := fs.String("charset", "utf-8", "character encoding of the input")
	asJSON := fs.Bool("json", false, "write one JSON object per file")
	verbose := fs.Bool("v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		printUsage(stderr)
		return exitUsage
	}
	if countStdin(fs.Args()) > 1 {
		fmt.Fprintln(stderr, "plsdump: standard input (-) may be given only once")
		return exitUsage
	}
	if _, err := charset.Lookup(*charsetName); err != nil {
		fmt.Fprintf(stderr, "plsdump: %v\n", err)
		return exitUsage
	}

	if *verbose {
		logging.SetLevel(logging.LevelDebug)
	}

	mode := modeTSV
	switch {
	case *asJSON:
		mode = modeJSON
	case isTerminal:
		mode = modeTable
	}

	names := fs.Args()
	results := workers.Map(names, workers.ForIO(len(names)), func(name string) fileResult {
		return dumpFile(name, *charsetName, stdin)
	})

	code := exitOK
	multiple := len(names) > 1
	for i, result := range results {
		name := names[i]
		if result.Error != "" {
			fmt.Fprintf(stderr, "plsdump: %s: %s\n", sanitizeName(name), result.Error)
			code = exitFailure
		}

		if mode == modeJSON {
			if err := json.NewEncoder(stdout).Encode(result); err != nil {
				fmt.Fprintf(stderr, "plsdump: %v\n", err)
				return exitFailure
			}
			continue
		}

		if multiple && mode == modeTable {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "==> %s <==\n", sanitizeName(name))
		}
		if mode == modeTable {
			writeTable(stdout, result.Entries)
		} else {
			writeTSV(stdout, result.Entries)
		}
	}

	return code
}

// dumpFile decodes one playlist. Entries decoded before a failure are kept.
func dumpFile(name, charsetName string, stdin io.Reader) fileResult {
	result := fileResult{File: name, Entries: []playlist.Entry{}}

	var src io.Reader = stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		defer f.Close()
		src = f
	}

	r, err := charset.NewReader(src, charsetName)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	logging.Debug("Decoding %s as %s", sanitizeName(name), charsetName)

	entries, err := playlist.Decode(r)
	result.Entries = append(result.Entries, entries...)
	result.Count = len(result.Entries)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	logging.Debug("Decoded %d entries from %s", result.Count, sanitizeName(name))
	return result
}

func writeTable(w io.Writer, entries []playlist.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tLENGTH\tURL")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, cleanField(e.Title), cleanField(e.Length), cleanField(e.URL))
	}
	tw.Flush()
}

func writeTSV(w io.Writer, entries []playlist.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cleanField(e.URL), cleanField(e.Title), cleanField(e.Length))
	}
}

// countStdin counts "-" arguments; stdin can only be decoded once.
func countStdin(names []string) int {
	n := 0
	for _, name := range names {
		if name == stdinName {
			n++
		}
	}
	return n
}

// cleanField replaces tabs and control characters so a value stays in its column.
func cleanField(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}

// sanitizeName returns a printable form of a file name for messages.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return '?'
		}
		return r
	}, name)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "PLS Playlist Dump")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage: plsdump [-charset NAME] [-json] [-v] FILE...")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -charset NAME  - Character encoding of the input (default: utf-8)")
	fmt.Fprintln(w, "  -json          - Write one JSON object per file")
	fmt.Fprintln(w, "  -v             - Enable debug logging")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use - as FILE to read from standard input.")
}
