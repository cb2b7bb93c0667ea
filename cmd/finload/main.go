// Finload is a command line wrapper around the financial file loader: it
// reads an FEC export, balance sheet or income statement and prints the
// resulting table or a ledger summary.
package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finload/app/financial"
	"finload/app/logging"
	"finload/app/settings"
)

// version is the application version reported by the version command.
const version = "1.0.0"

var (
	flagConfig   string
	flagLogLevel string

	cfg settings.Settings
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "finload",
	Short:         "Load and harmonize financial data files",
	Long:          `Load FEC accounting exports, balance sheets and income statements into a clean table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagConfig != "" {
			cfg, err = settings.LoadFile(flagConfig)
			if err != nil {
				return fmt.Errorf("reading settings: %w", err)
			}
		} else {
			cfg = settings.GetEffectiveSettings()
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}

		log, err = logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "settings file (default finload.yml next to the executable)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(loadCmd, summaryCmd, hashCmd, configCmd, versionCmd)
}

// newLoader builds a loader from the settings overlaid with command flags
func newLoader(sep, encoding string, noHeader bool) (*financial.Loader, error) {
	options := cfg.FileOptions()
	if sep != "" {
		r, size := utf8.DecodeRuneInString(sep)
		if size != len(sep) {
			return nil, fmt.Errorf("separator must be a single character, got %q", sep)
		}
		options.Separator = r
	}
	if encoding != "" {
		options.Encoding = encoding
	}
	options.NoHeaderRow = noHeader
	return financial.NewLoader(financial.WithFileOptions(options), financial.WithLogger(log)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
