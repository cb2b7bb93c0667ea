package financial

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is against the typed errors below
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrMissingColumn       = errors.New("missing column")
	ErrConversion          = errors.New("conversion failed")
)

// ConfigurationError reports a file type tag outside the supported set
type ConfigurationError struct {
	Value     string
	Supported []string
}

func (e *ConfigurationError) Error() string {
	quoted := make([]string, len(e.Supported))
	for i, s := range e.Supported {
		quoted[i] = "'" + s + "'"
	}
	return fmt.Sprintf("unsupported file_type: %q. Supported types are %s", e.Value, strings.Join(quoted, ", "))
}

func (e *ConfigurationError) Unwrap() error { return ErrUnsupportedFileType }

// IOError reports a file that could not be read or parsed as delimited text
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// SchemaError reports an expected column absent from the file header
type SchemaError struct {
	Path   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Path, e.Column)
}

func (e *SchemaError) Unwrap() error { return ErrMissingColumn }

// ConversionError reports a cell that could not be converted to its
// column's declared type. Row is the 0-based data row.
type ConversionError struct {
	Path   string
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: column %q row %d: cannot convert %q to float: %v", e.Path, e.Column, e.Row, e.Value, e.Err)
}

// Unwrap exposes both the sentinel and the underlying parse error
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}
