package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned for labels that name no supported encoding.
var ErrUnknownCharset = errors.New("unknown charset")

// Lookup resolves a WHATWG encoding label such as "latin1" or "shift_jis".
func Lookup(name string) (encoding.Encoding, error) {
	label := strings.TrimSpace(name)
	if label == "" {
		return unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// NewReader returns a reader that yields the content of r as UTF-8.
// UTF-8 sources are returned unchanged.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
