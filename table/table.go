// Package table renders flattened FBR rows as console tables. Rows carry no
// enforced schema, so a table's columns are the union of the keys appearing
// across its rows.
package table

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fbrfetch/fbrfetch/fbrapi"
)

// preferredColumns are printed first when present, in this order.
var preferredColumns = []string{
	"league_type",
	"league_id",
	"competition_name",
	"gender",
	"season_id",
}

// Table is an ordered view over flattened rows.
type Table struct {
	Columns []string
	Rows    []fbrapi.Row
}

// New builds a table from rows. Preferred columns come first, the remaining
// columns follow in sorted order.
func New(rows []fbrapi.Row) *Table {
	seen := make(map[string]bool)
	var columns []string

	for _, col := range preferredColumns {
		for _, row := range rows {
			if _, ok := row[col]; ok {
				columns = append(columns, col)
				seen[col] = true
				break
			}
		}
	}

	var rest []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)

	return &Table{
		Columns: append(columns, rest...),
		Rows:    rows,
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Head returns a table limited to the first n rows. The column set is kept
// so a preview lines up with the full table.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= len(t.Rows) {
		return t
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// Render formats the table for console display. Cells missing from a row
// render empty.
func (t *Table) Render() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = formatCell(row[col])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	w.Flush()
	return sb.String()
}

// formatCell renders a single value. JSON numbers arrive as float64; whole
// numbers print without a decimal point so ids stay readable.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
