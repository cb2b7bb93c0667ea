package fileloader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Delimited text reading
// The separator and text encoding come from FileOptions; records are decoded
// to UTF-8 before being split.

// ErrNoColumns is returned for input that does not contain a single row
var ErrNoColumns = errors.New("no columns to parse from file")

// newCSVReader returns a csv.Reader configured for loosely formatted exports
func newCSVReader(r io.Reader, delim rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delim
	// FEC exports routinely carry stray quotes inside labels
	reader.LazyQuotes = true
	// Row width is checked against the header below, with a better message
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	return reader
}

// ReadCSVFromBytes parses delimited text held in memory.
// If options.NoHeaderRow is true, the first row is treated as data and synthetic headers are generated.
// Rows shorter than the header are padded with empty cells; longer rows are an error.
func ReadCSVFromBytes(data []byte, options FileOptions) (*RawTable, error) {
	decoded, err := NewDecodingReader(bytes.NewReader(data), options.Encoding)
	if err != nil {
		return nil, err
	}

	reader := newCSVReader(decoded, options.separator())

	firstRow, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// CSV reader reuses the record slice, must create a copy
	first := make([]string, len(firstRow))
	copy(first, firstRow)

	table := &RawTable{}
	if options.NoHeaderRow {
		table.Header = syntheticHeaders(len(first))
		table.Records = append(table.Records, first)
	} else {
		table.Header = NormalizeHeaders(first)
	}
	width := len(table.Header)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if len(record) > width {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, width, len(record))
		}

		row := make([]string, width)
		copy(row, record)
		table.Records = append(table.Records, row)
	}

	return table, nil
}
