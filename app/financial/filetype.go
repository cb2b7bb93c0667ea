// Package financial loads French accounting exports (FEC), balance sheets and
// income statements into typed tables.
//
// Each supported format is a FileType variant with its own harmonization
// step. FEC files are fully harmonized into a Ledger; balance sheets and
// income statements are read as-is and returned as Unharmonized results.
package financial

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"finload/app/fileloader"
	"finload/app/table"
)

// FileType is the declared kind of a financial file. The set is closed:
// the only implementations are FEC, BalanceSheet and IncomeStatement.
type FileType interface {
	// Tag returns the identifier used on the command line and in settings ("fec", ...)
	Tag() string
	// String returns a human-readable name
	String() string

	harmonize(src source) (Result, error)
}

// source is everything a FileType needs to turn a raw file into a Result
type source struct {
	meta Meta
	raw  *fileloader.RawTable
	log  logrus.FieldLogger
}

type fecFileType struct{}
type balanceSheetFileType struct{}
type incomeStatementFileType struct{}

var (
	FEC             FileType = fecFileType{}
	BalanceSheet    FileType = balanceSheetFileType{}
	IncomeStatement FileType = incomeStatementFileType{}
)

var fileTypes = []FileType{FEC, BalanceSheet, IncomeStatement}

func (fecFileType) Tag() string    { return "fec" }
func (fecFileType) String() string { return "FEC" }

func (balanceSheetFileType) Tag() string    { return "balance_sheet" }
func (balanceSheetFileType) String() string { return "Balance Sheet" }

func (incomeStatementFileType) Tag() string    { return "income_statement" }
func (incomeStatementFileType) String() string { return "Income Statement" }

// FileTypes returns every supported file type
func FileTypes() []FileType {
	out := make([]FileType, len(fileTypes))
	copy(out, fileTypes)
	return out
}

// SupportedFileTypes returns the tags of every supported file type
func SupportedFileTypes() []string {
	tags := make([]string, len(fileTypes))
	for i, ft := range fileTypes {
		tags[i] = ft.Tag()
	}
	return tags
}

// ParseFileType maps a tag to its FileType. Matching is exact.
func ParseFileType(tag string) (FileType, error) {
	for _, ft := range fileTypes {
		if ft.Tag() == tag {
			return ft, nil
		}
	}
	return nil, &ConfigurationError{Value: tag, Supported: SupportedFileTypes()}
}

func (fecFileType) harmonize(src source) (Result, error) {
	t, err := FECSchema.apply(src.meta.Source, src.raw)
	if err != nil {
		return nil, err
	}

	credit, _ := t.Column(ColumnCredit)
	debit, _ := t.Column(ColumnDebit)
	solde, err := table.Subtract(ColumnSolde, credit, debit)
	if err != nil {
		return nil, err
	}
	if err := t.SetColumn(solde); err != nil {
		return nil, err
	}

	src.log.WithField("rows", t.Len()).Debug("FEC harmonized")
	return &Ledger{meta: src.meta, table: t}, nil
}

func (balanceSheetFileType) harmonize(src source) (Result, error) {
	return unharmonized(src, BalanceSheet)
}

func (incomeStatementFileType) harmonize(src source) (Result, error) {
	return unharmonized(src, IncomeStatement)
}

// unharmonized reads a placeholder format with default typing and reports
// that no schema mapping was applied.
func unharmonized(src source, ft FileType) (Result, error) {
	t, err := Schema{}.apply(src.meta.Source, src.raw)
	if err != nil {
		return nil, err
	}

	notice := fmt.Sprintf("%s harmonization not fully implemented. Loaded data from %s.", ft, src.meta.Source)
	src.log.Warn(notice)

	return &Unharmonized{meta: src.meta, fileType: ft, table: t, notice: notice}, nil
}
