// Package fileloader provides file reading and ingestion for the delimited and
// XLSX inputs accepted by finload. It handles text decoding, separators,
// transparent decompression and header normalization, and hands back the raw
// string cells for callers to type.
package fileloader

// FileType represents the physical format of a data file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeDelimited
	FileTypeXLSX
)

// String returns the string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeDelimited:
		return "Delimited"
	case FileTypeXLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

const (
	// DefaultSeparator is the field separator used by FEC exports
	DefaultSeparator = '|'
	// DefaultEncoding is the text encoding used by FEC exports
	DefaultEncoding = "latin1"
)

// FileOptions contains the parsing hints for a single file.
// Separator and Encoding are ignored for XLSX files.
type FileOptions struct {
	Separator   rune   `json:"separator,omitempty" yaml:"separator,omitempty"`
	Encoding    string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	NoHeaderRow bool   `json:"noHeaderRow,omitempty" yaml:"noHeaderRow,omitempty"`
}

// DefaultFileOptions returns the default parsing options
func DefaultFileOptions() FileOptions {
	return FileOptions{
		Separator: DefaultSeparator,
		Encoding:  DefaultEncoding,
	}
}

// separator returns the configured separator, falling back to the default
func (fo FileOptions) separator() rune {
	if fo.Separator == 0 {
		return DefaultSeparator
	}
	return fo.Separator
}

// RawTable is a file's content before any typing: normalized header names
// and one string slice per record, each exactly len(Header) long.
type RawTable struct {
	Header  []string
	Records [][]string
	// Hash is the HighwayHash of the file bytes as read from disk
	Hash string
}

// Column returns the cells of column i in record order
func (rt *RawTable) Column(i int) []string {
	cells := make([]string, len(rt.Records))
	for r, rec := range rt.Records {
		cells[r] = rec[i]
	}
	return cells
}

// ColumnIndex returns the position of the named column, or -1
func (rt *RawTable) ColumnIndex(name string) int {
	for i, h := range rt.Header {
		if h == name {
			return i
		}
	}
	return -1
}
