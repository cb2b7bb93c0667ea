package financial

import (
	"errors"
	"math"
	"strings"

	"finload/app/fileloader"
	"finload/app/table"
)

// FEC column names used by the harmonization step
const (
	ColumnCompteNum = "CompteNum"
	ColumnCredit    = "Credit"
	ColumnDebit     = "Debit"
	ColumnSolde     = "Solde"
)

// ColumnParser converts the raw cells of one column. path and name are
// carried into any error it returns.
type ColumnParser func(path, name string, cells []string) (*table.Column, error)

// ColumnSpec declares the type of one required column
type ColumnSpec struct {
	Name  string
	Kind  table.Kind
	Parse ColumnParser
}

// Schema lists the columns a file must carry and how to type them.
// Columns not declared pass through with default typing.
type Schema struct {
	Columns []ColumnSpec
}

// FECSchema is the declared typing of an FEC export
var FECSchema = Schema{Columns: []ColumnSpec{
	{Name: ColumnCompteNum, Kind: table.KindString, Parse: parseText},
	{Name: ColumnCredit, Kind: table.KindFloat, Parse: parseDecimalComma},
	{Name: ColumnDebit, Kind: table.KindFloat, Parse: parseDecimalComma},
}}

func (s Schema) lookup(name string) (ColumnSpec, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSpec{}, false
}

// apply builds a typed table from raw, in the raw column order
func (s Schema) apply(path string, raw *fileloader.RawTable) (*table.Table, error) {
	for _, c := range s.Columns {
		if raw.ColumnIndex(c.Name) < 0 {
			return nil, &SchemaError{Path: path, Column: c.Name}
		}
	}

	t := table.New()
	for i, name := range raw.Header {
		cells := raw.Column(i)

		var col *table.Column
		if spec, declared := s.lookup(name); declared {
			var err error
			if col, err = spec.Parse(path, name, cells); err != nil {
				return nil, err
			}
		} else {
			col = table.InferColumn(name, cells)
		}

		if err := t.AddColumn(col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func parseText(_, name string, cells []string) (*table.Column, error) {
	return table.StringColumn(name, cells), nil
}

var errNotFinite = errors.New("not a finite number")

// parseDecimalComma replaces every ',' with '.' and parses the result as a
// decimal float64. Empty, non-numeric or hex cells are errors, never zero.
func parseDecimalComma(path, name string, cells []string) (*table.Column, error) {
	values := make([]float64, len(cells))
	for i, cell := range cells {
		normalized := strings.TrimSpace(strings.ReplaceAll(cell, ",", "."))
		f, err := table.ParseNumber(normalized)
		if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
			err = errNotFinite
		}
		if err != nil {
			return nil, &ConversionError{Path: path, Column: name, Row: i, Value: cell, Err: err}
		}
		values[i] = f
	}
	return table.FloatColumn(name, values), nil
}
