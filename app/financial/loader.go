package financial

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"finload/app/fileloader"
)

// Loader reads financial files. It holds only its options and a logger, so
// one Loader can serve concurrent loads.
type Loader struct {
	options fileloader.FileOptions
	log     logrus.FieldLogger
}

// Option configures a Loader
type Option func(*Loader)

// WithSeparator sets the field separator (default '|')
func WithSeparator(sep rune) Option {
	return func(l *Loader) { l.options.Separator = sep }
}

// WithEncoding sets the text encoding name (default "latin1")
func WithEncoding(name string) Option {
	return func(l *Loader) { l.options.Encoding = name }
}

// WithFileOptions replaces all file parsing options at once
func WithFileOptions(options fileloader.FileOptions) Option {
	return func(l *Loader) { l.options = options }
}

// WithLogger sets the logger notices and diagnostics are written to
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader returns a Loader using FEC defaults unless overridden
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		options: fileloader.DefaultFileOptions(),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads path as the file type named by tag
func (l *Loader) Load(path, tag string) (Result, error) {
	ft, err := ParseFileType(tag)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path, ft)
}

// LoadFile reads path and harmonizes it according to ft.
// The returned error is one of *ConfigurationError, *IOError, *SchemaError
// or *ConversionError.
func (l *Loader) LoadFile(path string, ft FileType) (Result, error) {
	if ft == nil {
		return nil, &ConfigurationError{Supported: SupportedFileTypes()}
	}

	meta := Meta{ID: uuid.NewString(), Source: path}
	log := l.log.WithFields(logrus.Fields{
		"load_id":   meta.ID,
		"path":      path,
		"file_type": ft.Tag(),
	})

	raw, err := fileloader.ReadTable(path, l.options)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	meta.SourceHash = raw.Hash

	log.WithFields(logrus.Fields{
		"rows":    len(raw.Records),
		"columns": len(raw.Header),
	}).Debug("file read")

	return ft.harmonize(source{meta: meta, raw: raw, log: log})
}

// Load reads path as the file type named by tag with a one-off Loader
func Load(path, tag string, opts ...Option) (Result, error) {
	return NewLoader(opts...).Load(path, tag)
}
