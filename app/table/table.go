package table

import (
	"fmt"
)

// Table is an ordered set of equally long columns
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New returns an empty table
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// AddColumn appends c. The first column fixes the row count.
func (t *Table) AddColumn(c *Column) error {
	if _, exists := t.index[c.Name]; exists {
		return fmt.Errorf("duplicate column %q", c.Name)
	}
	if len(t.columns) > 0 && c.Len() != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d", c.Name, c.Len(), t.rows)
	}
	t.index[c.Name] = len(t.columns)
	t.columns = append(t.columns, c)
	t.rows = c.Len()
	return nil
}

// SetColumn replaces the column named c.Name in place, or appends it
func (t *Table) SetColumn(c *Column) error {
	i, exists := t.index[c.Name]
	if !exists {
		return t.AddColumn(c)
	}
	if c.Len() != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d", c.Name, c.Len(), t.rows)
	}
	t.columns[i] = c
	return nil
}

// Column returns the named column
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// HasColumn reports whether the table has a column called name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnNames returns the column names in order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Schema returns each column's name and kind in order
func (t *Table) Schema() []ColumnInfo {
	info := make([]ColumnInfo, len(t.columns))
	for i, c := range t.columns {
		info[i] = ColumnInfo{Name: c.Name, Kind: c.Kind}
	}
	return info
}

// ColumnInfo describes one column of a table
type ColumnInfo struct {
	Name string
	Kind Kind
}

// Len returns the number of rows
func (t *Table) Len() int { return t.rows }

// Width returns the number of columns
func (t *Table) Width() int { return len(t.columns) }

// Row returns a view of row i
func (t *Table) Row(i int) Row {
	return Row{table: t, index: i}
}

// Rows returns a view of every row in order
func (t *Table) Rows() []Row {
	rows := make([]Row, t.rows)
	for i := range rows {
		rows[i] = Row{table: t, index: i}
	}
	return rows
}

// Row is a read-only view of one row, keyed by column name
type Row struct {
	table *Table
	index int
}

// Index returns the 0-based position of the row
func (r Row) Index() int { return r.index }

// Get returns the cell in the named column
func (r Row) Get(name string) (Value, bool) {
	c, ok := r.table.Column(name)
	if !ok {
		return Value{}, false
	}
	return c.Values[r.index], true
}

// Values returns the row's cells in column order
func (r Row) Values() []Value {
	values := make([]Value, len(r.table.columns))
	for i, c := range r.table.columns {
		values[i] = c.Values[r.index]
	}
	return values
}

// Map returns the row as column name -> cell
func (r Row) Map() map[string]Value {
	m := make(map[string]Value, len(r.table.columns))
	for _, c := range r.table.columns {
		m[c.Name] = c.Values[r.index]
	}
	return m
}
