package fileloader

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX (Excel) reading
// Only the first sheet is read. Cells come back as their stored values, not
// the display text: a number styled "#,##0.00" reads as "1234.56", not "1,234.56".

// ReadXLSXFromBytes parses the first sheet of XLSX data held in memory.
// If options.NoHeaderRow is true, the first row is treated as data and synthetic headers are generated.
func ReadXLSXFromBytes(data []byte, options FileOptions) (*RawTable, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in XLSX data")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoColumns
	}

	table := &RawTable{}
	body := rows[1:]
	firstLine := 2
	if options.NoHeaderRow {
		table.Header = syntheticHeaders(widest(rows))
		body = rows
		firstLine = 1
	} else {
		table.Header = NormalizeHeaders(rows[0])
	}
	width := len(table.Header)

	for i, r := range body {
		// GetRows drops trailing empty cells, so short rows are normal here
		if len(r) > width {
			return nil, fmt.Errorf("sheet %q row %d: expected %d fields, saw %d", sheets[0], i+firstLine, width, len(r))
		}
		row := make([]string, width)
		copy(row, r)
		table.Records = append(table.Records, row)
	}

	return table, nil
}

func widest(rows [][]string) int {
	n := 0
	for _, r := range rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}
