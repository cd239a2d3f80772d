package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedStructure is returned when the input contains a key/value pair
// outside of any section or a line that cannot be tokenized.
var ErrMalformedStructure = errors.New("malformed INI structure")

// defaultSection names the header whose keys are treated as sectionless.
const defaultSection = "default"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Section is one named group of key/value pairs.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

// Name returns the lower-cased section name.
func (s *Section) Name() string {
	return s.name
}

// Get returns the value stored under key, matched case-insensitively.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[strings.ToLower(key)]
	return v, ok
}

// Keys returns the lower-cased key names in the order they first appeared.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of distinct keys in the section.
func (s *Section) Len() int {
	return len(s.keys)
}

// Document is the parsed form of an INI stream.
type Document struct {
	sections []*Section
	index    map[string]*Section
}

// HasSection reports whether a section with the given name exists.
func (d *Document) HasSection(name string) bool {
	_, ok := d.index[strings.ToLower(name)]
	return ok
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.index[strings.ToLower(name)]
	return s, ok
}

// Sections returns the lower-cased section names in file order.
func (d *Document) Sections() []string {
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}
	return names
}

// Get looks up a key within a section. Both names are case-insensitive.
func (d *Document) Get(section, key string) (string, bool) {
	s, ok := d.Section(section)
	if !ok {
		return "", false
	}
	return s.Get(key)
}

// Read consumes r to the end and parses it. It never closes r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read INI source: %w", err)
	}
	return Parse(data)
}

// Parse parses an in-memory INI document.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	doc := &Document{index: make(map[string]*Section)}

	// nil until the first header; also nil inside [default]
	var current *Section

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(nil, len(data)+1)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "", line[0] == '#', line[0] == ';':
			continue

		case line[0] == '[':
			if line[len(line)-1] != ']' {
				return nil, fmt.Errorf("%w: line %d: unclosed section header %q",
					ErrMalformedStructure, lineNo, line)
			}
			name := strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			if name == "" {
				return nil, fmt.Errorf("%w: line %d: empty section name", ErrMalformedStructure, lineNo)
			}
			if name == defaultSection {
				current = nil
				continue
			}
			current = doc.section(name)

		default:
			key, value, ok := strings.Cut(line, "=")
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				return nil, fmt.Errorf("%w: line %d: expected key=value, got %q",
					ErrMalformedStructure, lineNo, line)
			}
			if current == nil {
				return nil, fmt.Errorf("%w: line %d: key %q appears outside a section",
					ErrMalformedStructure, lineNo, key)
			}
			current.set(strings.ToLower(key), strings.TrimSpace(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan INI source: %w", err)
	}

	return doc, nil
}

// section returns the named section, creating it on first use.
func (d *Document) section(name string) *Section {
	if s, ok := d.index[name]; ok {
		return s
	}
	s := &Section{name: name, values: make(map[string]string)}
	d.sections = append(d.sections, s)
	d.index[name] = s
	return s
}

func (s *Section) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}
