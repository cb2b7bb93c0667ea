package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"finload/app/table"
)

// WriteText writes t as aligned columns for reading in a terminal
func WriteText(w io.Writer, t *table.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(t.ColumnNames(), "\t"))

	cells := make([]string, t.Width())
	for _, row := range t.Rows() {
		for i, v := range row.Values() {
			cells[i] = v.String()
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
