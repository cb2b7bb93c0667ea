package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Column is a named, typed sequence of cells
type Column struct {
	Name   string
	Kind   Kind
	Values []Value
}

// Len returns the number of cells in the column
func (c *Column) Len() int { return len(c.Values) }

// missingTokens are the cell contents read as "no value", the same set
// spreadsheet and dataframe tools treat as NA by default.
var missingTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissingToken reports whether a raw cell should be read as missing
func IsMissingToken(cell string) bool {
	_, ok := missingTokens[strings.TrimSpace(cell)]
	return ok
}

// ParseNumber parses a plain decimal number. Hex floats ("0x10") and
// underscore digit separators, which strconv.ParseFloat also accepts, are
// rejected.
func ParseNumber(s string) (float64, error) {
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") || strings.Contains(s, "_") {
		return 0, &strconv.NumError{Func: "ParseNumber", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}

// StringColumn keeps every cell verbatim as a string. Leading zeros and
// mixed alphanumeric codes survive untouched; only NA tokens become missing.
func StringColumn(name string, cells []string) *Column {
	col := &Column{Name: name, Kind: KindString, Values: make([]Value, len(cells))}
	for i, cell := range cells {
		if IsMissingToken(cell) {
			col.Values[i] = Missing(KindString)
			continue
		}
		col.Values[i] = StringValue(cell)
	}
	return col
}

// FloatColumn wraps already converted floats
func FloatColumn(name string, values []float64) *Column {
	col := &Column{Name: name, Kind: KindFloat, Values: make([]Value, len(values))}
	for i, f := range values {
		col.Values[i] = FloatValue(f)
	}
	return col
}

// InferColumn types cells the way a default delimited reader does:
//   - Int when every cell is an integer and none is missing
//   - Float when every present cell is a number (including integer columns with gaps)
//   - String otherwise
//
// A column with no present cell at all is Float.
func InferColumn(name string, cells []string) *Column {
	allInt, allFloat, anyMissing := true, true, false
	for _, cell := range cells {
		if IsMissingToken(cell) {
			anyMissing = true
			continue
		}
		s := strings.TrimSpace(cell)
		if allInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := ParseNumber(s); err != nil {
				allFloat = false
			}
		}
		if !allInt && !allFloat {
			return StringColumn(name, cells)
		}
	}

	if allInt && !anyMissing && len(cells) > 0 {
		col := &Column{Name: name, Kind: KindInt, Values: make([]Value, len(cells))}
		for i, cell := range cells {
			n, _ := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			col.Values[i] = IntValue(n)
		}
		return col
	}

	col := &Column{Name: name, Kind: KindFloat, Values: make([]Value, len(cells))}
	for i, cell := range cells {
		if IsMissingToken(cell) {
			col.Values[i] = Missing(KindFloat)
			continue
		}
		f, _ := ParseNumber(strings.TrimSpace(cell))
		col.Values[i] = FloatValue(f)
	}
	return col
}

// Subtract returns a Float column holding a[i] - b[i]. A missing operand
// yields a missing cell.
func Subtract(name string, a, b *Column) (*Column, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("cannot subtract %q (%d rows) and %q (%d rows)", a.Name, a.Len(), b.Name, b.Len())
	}
	col := &Column{Name: name, Kind: KindFloat, Values: make([]Value, a.Len())}
	for i := range a.Values {
		x, okA := a.Values[i].Float()
		y, okB := b.Values[i].Float()
		if !okA || !okB {
			col.Values[i] = Missing(KindFloat)
			continue
		}
		col.Values[i] = FloatValue(x - y)
	}
	return col, nil
}
