package fileloader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when a text encoding name cannot be resolved
var ErrUnknownEncoding = errors.New("unknown text encoding")

// LookupEncoding resolves an encoding name as commonly written in export
// tooling ("latin1", "utf-8", "cp1252", ...). Names not in the short list are
// resolved through the IANA registry. An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "utf_8", "utf-8-sig", "utf_8_sig":
		// UTF8BOM strips a leading byte order mark when decoding
		return unicode.UTF8BOM, nil
	case "latin1", "latin-1", "latin_1", "iso-8859-1", "iso8859-1", "iso_8859_1", "l1":
		return charmap.ISO8859_1, nil
	case "latin9", "latin-9", "iso-8859-15", "iso8859-15", "iso_8859_15":
		return charmap.ISO8859_15, nil
	case "cp1252", "windows-1252", "windows1252":
		return charmap.Windows1252, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// NewDecodingReader wraps r so that reads yield UTF-8 text decoded from the
// named encoding.
func NewDecodingReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
