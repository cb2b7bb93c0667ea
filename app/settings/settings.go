package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"finload/app/export"
	"finload/app/fileloader"
	"finload/app/financial"
)

// FileName is the settings file looked up next to the executable
const FileName = "finload.yml"

// GetEffectiveSettings returns the effective settings (defaults overlaid with
// the file next to the executable, if any). If anything goes wrong, it returns defaults.
func GetEffectiveSettings() Settings {
	path, err := DefaultPath()
	if err != nil {
		return defaultSettings
	}
	settings, err := LoadFile(path)
	if err != nil {
		return defaultSettings
	}
	return settings
}

// LoadFile returns the defaults overlaid with the values found in path.
// A missing file is not an error. Keys with invalid values are ignored.
func LoadFile(path string) (Settings, error) {
	settings := defaultSettings

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}

	// Unmarshal into a generic map to detect key presence
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings, err
	}

	for _, key := range Keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		if vs, oks := v.(string); oks {
			// An invalid value leaves the default in place
			_ = settings.Set(key, vs)
		}
	}
	return settings, nil
}

// Keys lists the settings file keys in the order they are shown
var Keys = []string{"separator", "encoding", "file_type", "output_format", "log_level", "log_format"}

// ErrUnknownKey is returned by Set for a key not in Keys
var ErrUnknownKey = errors.New("unknown settings key")

// Set validates value and assigns it to the setting named key
func (s *Settings) Set(key, value string) error {
	switch key {
	case "separator":
		if utf8.RuneCountInString(value) != 1 {
			return fmt.Errorf("separator must be a single character, got %q", value)
		}
		s.Separator = value
	case "encoding":
		if _, err := fileloader.LookupEncoding(value); err != nil {
			return err
		}
		s.Encoding = value
	case "file_type":
		if _, err := financial.ParseFileType(value); err != nil {
			return err
		}
		s.FileType = value
	case "output_format":
		f, err := export.ParseFormat(value)
		if err != nil {
			return err
		}
		s.OutputFormat = string(f)
	case "log_level":
		if _, err := logrus.ParseLevel(value); err != nil {
			return err
		}
		s.LogLevel = strings.ToLower(value)
	case "log_format":
		v := strings.ToLower(value)
		if v != "text" && v != "json" {
			return fmt.Errorf("unknown log format %q", value)
		}
		s.LogFormat = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// SaveFile writes the values of settings that differ from the defaults.
// When nothing differs, an existing file is removed.
func SaveFile(path string, settings Settings) error {
	data := map[string]any{}
	if settings.Separator != defaultSettings.Separator {
		data["separator"] = settings.Separator
	}
	if settings.Encoding != defaultSettings.Encoding {
		data["encoding"] = settings.Encoding
	}
	if settings.FileType != defaultSettings.FileType {
		data["file_type"] = settings.FileType
	}
	if settings.OutputFormat != defaultSettings.OutputFormat {
		data["output_format"] = settings.OutputFormat
	}
	if settings.LogLevel != defaultSettings.LogLevel {
		data["log_level"] = settings.LogLevel
	}
	if settings.LogFormat != defaultSettings.LogFormat {
		data["log_format"] = settings.LogFormat
	}

	if len(data) == 0 {
		// Reflect a defaults-only state by removing any existing file
		if _, statErr := os.Stat(path); statErr == nil {
			return os.Remove(path)
		}
		return nil
	}

	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}

// FileOptions converts the loading settings into parsing options
func (s Settings) FileOptions() fileloader.FileOptions {
	options := fileloader.DefaultFileOptions()
	if r, size := utf8.DecodeRuneInString(s.Separator); size > 0 && r != utf8.RuneError {
		options.Separator = r
	}
	if s.Encoding != "" {
		options.Encoding = s.Encoding
	}
	return options
}

// DefaultPath returns the settings file path next to the executable
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(exe)
	return filepath.Join(dir, FileName), nil
}
