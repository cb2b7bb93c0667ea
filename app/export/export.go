// Package export writes tables out as CSV, JSON or XLSX.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/xuri/excelize/v2"

	"finload/app/table"
)

// Format is an output format name
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported output format
var Formats = []Format{FormatText, FormatCSV, FormatJSON, FormatXLSX}

// ParseFormat maps a name to a Format, ignoring case
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Write renders t to w in format f. sep is used by CSV only.
func Write(w io.Writer, t *table.Table, f Format, sep rune) error {
	switch f {
	case FormatText:
		return WriteText(w, t)
	case FormatCSV:
		return WriteCSV(w, t, sep)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatXLSX:
		return WriteXLSX(w, t)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// WriteCSV writes a header row followed by one record per row
func WriteCSV(w io.Writer, t *table.Table, sep rune) error {
	cw := csv.NewWriter(w)
	if sep != 0 {
		cw.Comma = sep
	}

	if err := cw.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, t.Width())
	for _, row := range t.Rows() {
		for i, v := range row.Values() {
			record[i] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes {"columns": [{"name", "kind"}...], "rows": [[...], ...]}.
// Rows are arrays so column order survives; missing cells are null.
func WriteJSON(w io.Writer, t *table.Table) error {
	columns := make([]any, 0, t.Width())
	for _, c := range t.Schema() {
		columns = append(columns, map[string]any{
			"name": c.Name,
			"kind": c.Kind.String(),
		})
	}

	rows := make([]any, 0, t.Len())
	for _, row := range t.Rows() {
		cells := make([]any, 0, t.Width())
		for _, v := range row.Values() {
			cells = append(cells, v.Interface())
		}
		rows = append(rows, cells)
	}

	out, err := oj.Marshal(map[string]any{
		"columns": columns,
		"rows":    rows,
	}, &oj.Options{Indent: 2, Sort: true})
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// WriteXLSX writes t to the first sheet of a new workbook. Numeric cells
// stay numeric; the header row is bold.
func WriteXLSX(w io.Writer, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, name := range t.ColumnNames() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return err
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(len(name) + 4)
		if width < 12 {
			width = 12
		}
		if err := f.SetColWidth(sheetName, colName, colName, width); err != nil {
			return err
		}
	}

	for r, row := range t.Rows() {
		for c, v := range row.Values() {
			if v.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v.Interface()); err != nil {
				return err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
