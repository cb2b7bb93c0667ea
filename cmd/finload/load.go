package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finload/app/export"
	"finload/app/financial"
)

var loadFlags struct {
	fileType string
	sep      string
	encoding string
	format   string
	out      string
	noHeader bool
}

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load a financial file and print the resulting table",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVarP(&loadFlags.fileType, "type", "t", "", "file type: fec, balance_sheet or income_statement")
	f.StringVarP(&loadFlags.sep, "sep", "s", "", "field separator (default |)")
	f.StringVarP(&loadFlags.encoding, "encoding", "e", "", "text encoding (default latin1)")
	f.StringVarP(&loadFlags.format, "format", "f", "", "output format: text, csv, json or xlsx")
	f.StringVarP(&loadFlags.out, "out", "o", "", "write output to this file instead of stdout")
	f.BoolVar(&loadFlags.noHeader, "no-header", false, "treat the first row as data and name columns Unnamed_A, Unnamed_B, ...")
}

func runLoad(cmd *cobra.Command, args []string) error {
	fileType := loadFlags.fileType
	if fileType == "" {
		fileType = cfg.FileType
	}
	formatName := loadFlags.format
	if formatName == "" {
		formatName = cfg.OutputFormat
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	loader, err := newLoader(loadFlags.sep, loadFlags.encoding, loadFlags.noHeader)
	if err != nil {
		return err
	}

	result, err := loader.Load(args[0], fileType)
	if err != nil {
		return err
	}

	meta := result.Meta()
	log.WithFields(logrus.Fields{
		"load_id":     meta.ID,
		"source_hash": meta.SourceHash,
		"rows":        result.Table().Len(),
		"harmonized":  result.Harmonized(),
	}).Info("loaded")

	if loadFlags.out == "" {
		if err := export.Write(cmd.OutOrStdout(), result.Table(), format, ','); err != nil {
			return fmt.Errorf("writing %s output: %w", format, err)
		}
	} else if err := writeFile(loadFlags.out, result, format); err != nil {
		return err
	}

	if u, ok := result.(*financial.Unharmonized); ok && format == export.FormatText {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nNote: %s\n", u.Notice())
	}
	return nil
}

// writeFile exports result to path, including a failed Close in the error
func writeFile(path string, result financial.Result, format export.Format) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(file, result.Table(), format, ','); err != nil {
		file.Close()
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
