// Package table holds the in-memory tabular result produced by the loaders:
// ordered, typed columns with a row view on top.
package table

import (
	"strconv"
)

// Kind is the declared type of a column
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a single cell. A missing cell keeps the kind of its column.
type Value struct {
	kind    Kind
	missing bool
	str     string
	i       int64
	f       float64
}

// StringValue returns a present string cell
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue returns a present integer cell
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a present floating-point cell
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// Missing returns an empty cell of the given kind
func Missing(kind Kind) Value { return Value{kind: kind, missing: true} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsMissing() bool { return v.missing }

// Str returns the string content of a present string cell
func (v Value) Str() (string, bool) {
	if v.missing || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Int returns the content of a present integer cell
func (v Value) Int() (int64, bool) {
	if v.missing || v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Float returns the numeric content of a present int or float cell
func (v Value) Float() (float64, bool) {
	if v.missing {
		return 0, false
	}
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Interface returns the cell as nil, string, int64 or float64
func (v Value) Interface() any {
	if v.missing {
		return nil
	}
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.str
	}
}

// String renders the cell as text; missing cells render empty
func (v Value) String() string {
	if v.missing {
		return ""
	}
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.str
	}
}
