package settings

// Settings holds user-overridable defaults for loading and output.
type Settings struct {
	// Field separator for delimited files; a single character
	Separator string `yaml:"separator" json:"separator"`
	// Text encoding of delimited files, e.g. "latin1", "utf-8", "cp1252"
	Encoding string `yaml:"encoding" json:"encoding"`
	// File type assumed when none is given: fec, balance_sheet or income_statement
	FileType string `yaml:"file_type" json:"file_type"`
	// Output format of the load command: text, csv, json or xlsx
	OutputFormat string `yaml:"output_format" json:"output_format"`
	// Log level name understood by logrus (debug, info, warn, error, ...)
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Log format: text or json
	LogFormat string `yaml:"log_format" json:"log_format"`
}

// defaultSettings defines the built-in defaults.
var defaultSettings = Settings{
	Separator:    "|",
	Encoding:     "latin1",
	FileType:     "fec",
	OutputFormat: "text",
	LogLevel:     "info",
	LogFormat:    "text",
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return defaultSettings
}
