package charset

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func encode(t *testing.T, tr transform.Transformer, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, tr)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatalf("Failed to encode test data: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to flush test data: %v", err)
	}
	return buf.Bytes()
}

func TestNewReaderDecodes(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		data    []byte
		want    string
	}{
		{
			name:    "Latin-1",
			charset: "latin1",
			data:    encode(t, charmap.Windows1252.NewEncoder(), "Title1=Café Müller"),
			want:    "Title1=Café Müller",
		},
		{
			name:    "Windows-1252 label",
			charset: "windows-1252",
			data:    encode(t, charmap.Windows1252.NewEncoder(), "Title1=Naïve"),
			want:    "Title1=Naïve",
		},
		{
			name:    "Shift_JIS",
			charset: "shift_jis",
			data:    encode(t, japanese.ShiftJIS.NewEncoder(), "Title1=東方紅魔郷"),
			want:    "Title1=東方紅魔郷",
		},
		{
			name:    "UTF-8 explicit",
			charset: "utf-8",
			data:    []byte("Title1=plain"),
			want:    "Title1=plain",
		},
		{
			name:    "Empty label defaults to UTF-8",
			charset: "",
			data:    []byte("Title1=plain"),
			want:    "Title1=plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(bytes.NewReader(tt.data), tt.charset)
			if err != nil {
				t.Fatalf("NewReader(%q) failed: %v", tt.charset, err)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Decoded %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewReaderUTF8Passthrough(t *testing.T) {
	src := strings.NewReader("x")
	r, err := NewReader(src, "UTF-8")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if r != io.Reader(src) {
		t.Error("Expected UTF-8 source to be returned unchanged")
	}
}

func TestNewReaderUnknownCharset(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), "klingon-8")
	if !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("Expected ErrUnknownCharset, got %v", err)
	}
}
