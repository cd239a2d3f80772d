package playlist

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	"pls-decoder/internal/ini"
)

const (
	sectionPlaylist    = "playlist"
	keyNumberOfEntries = "NumberOfEntries"
)

// Entry is a single playlist item as written in the source file.
type Entry struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Length string `json:"length"`
}

// Decoder is a forward-only cursor over the entries of one PLS stream.
// A Decoder is not safe for concurrent use; independent Decoders share nothing.
type Decoder struct {
	r       io.Reader
	section *ini.Section
	count   int
	next    int
	opened  bool
	err     error
}

// NewDecoder returns a Decoder reading from r. No data is read until the
// first call to Next, Count or All. The Decoder never closes r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, next: 1}
}

// Next returns the next entry. It returns io.EOF once all declared entries
// have been returned. After any other error, every later call returns that
// same error.
func (d *Decoder) Next() (Entry, error) {
	if err := d.open(); err != nil {
		return Entry{}, err
	}
	if d.err != nil {
		return Entry{}, d.err
	}
	if d.next > d.count {
		d.err = io.EOF
		return Entry{}, d.err
	}

	entry, err := d.entry(d.next)
	if err != nil {
		d.err = err
		return Entry{}, err
	}
	d.next++
	return entry, nil
}

// Count returns the number of entries declared by NumberOfEntries.
func (d *Decoder) Count() (int, error) {
	if err := d.open(); err != nil {
		return 0, err
	}
	return d.count, nil
}

// All returns an iterator over the remaining entries. A failure is yielded
// as the final pair with a zero Entry; io.EOF is not yielded.
func (d *Decoder) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for {
			entry, err := d.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Entry{}, err)
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Decode reads every entry from r. On failure it returns the entries
// decoded before the failing one together with the error.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	for entry, err := range NewDecoder(r).All() {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// open parses the stream and validates the playlist header on first use.
func (d *Decoder) open() error {
	if d.opened {
		if d.section == nil {
			return d.err
		}
		return nil
	}
	d.opened = true

	doc, err := ini.Read(d.r)
	if err != nil {
		if errors.Is(err, ini.ErrMalformedStructure) {
			err = fmt.Errorf("%w: %w", ErrNotPLS, err)
		}
		d.err = err
		return err
	}

	section, ok := doc.Section(sectionPlaylist)
	if !ok {
		d.err = fmt.Errorf("%w: no [%s] section", ErrNotPLS, sectionPlaylist)
		return d.err
	}

	raw, ok := section.Get(keyNumberOfEntries)
	if !ok {
		d.err = fmt.Errorf("%w: %s is missing", ErrCorruptPLS, keyNumberOfEntries)
		return d.err
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		d.err = fmt.Errorf("%w: invalid %s %q", ErrCorruptPLS, keyNumberOfEntries, raw)
		return d.err
	}

	d.section = section
	d.count = count
	return nil
}

func (d *Decoder) entry(index int) (Entry, error) {
	var values [3]string
	for i, prefix := range [3]string{"File", "Title", "Length"} {
		key := prefix + strconv.Itoa(index)
		v, ok := d.section.Get(key)
		if !ok {
			return Entry{}, &FieldError{Index: index, Key: key}
		}
		values[i] = v
	}
	return Entry{URL: values[0], Title: values[1], Length: values[2]}, nil
}
