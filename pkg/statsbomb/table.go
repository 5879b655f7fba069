package statsbomb

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

///////////////////////////////////////////////////////////////////////////////
/// TABLE
///////////////////////////////////////////////////////////////////////////////

/**
* Table is a column-ordered collection of rows. Rows are maps so the
* flatteners can add whichever columns a json happens to contain, while
* the table keeps a stable column order for export. Missing cells are
* simply absent from the row's map.
 */
type Table struct {
	Columns []string
	Rows    []map[string]any

	colSet map[string]bool
}

func NewTable(leadingColumns ...string) *Table {
	t := &Table{colSet: map[string]bool{}}
	for _, c := range leadingColumns {
		t.addColumn(c)
	}
	return t
}

func (t *Table) addColumn(name string) {
	if !t.colSet[name] {
		t.colSet[name] = true
		t.Columns = append(t.Columns, name)
	}
}

// AddRow appends a row, registering any columns not seen before in
// first-seen order after the leading columns
func (t *Table) AddRow(row map[string]any) {
	// register in sorted order so rows with the same new columns
	// produce the same table regardless of map iteration order
	newCols := make([]string, 0)
	for k := range row {
		if !t.colSet[k] {
			newCols = append(newCols, k)
		}
	}
	sort.Strings(newCols)
	for _, c := range newCols {
		t.addColumn(c)
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) NumRows() int { return len(t.Rows) }

// Column returns every value of the named column, with NaN for missing
// or non-numeric cells. Handy for feeding locations straight into the
// binning functions.
func (t *Table) Column(name string) []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = math.NaN()
		switch v := row[name].(type) {
		case float64:
			out[i] = v
		case int:
			out[i] = float64(v)
		case int64:
			out[i] = float64(v)
		}
	}
	return out
}

// Strings returns every value of the named column as strings, empty
// for missing cells
func (t *Table) Strings(name string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if v, ok := row[name]; ok {
			out[i] = cellString(v)
		}
	}
	return out
}

// Filter returns a new table holding the rows the predicate accepts
func (t *Table) Filter(keep func(row map[string]any) bool) *Table {
	out := NewTable(t.Columns...)
	for _, row := range t.Rows {
		if keep(row) {
			out.AddRow(row)
		}
	}
	return out
}

// SortBy sorts the rows by the given columns in order. Missing cells
// sort first.
func (t *Table) SortBy(columns ...string) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		for _, col := range columns {
			c := compareCells(t.Rows[i][col], t.Rows[j][col])
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
}

func compareCells(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	af, aok := cellFloat(a)
	bf, bok := cellFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(cellString(a), cellString(b))
}

func cellFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func cellString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}

/**
* CSV serialises the table with a header row. Missing cells become
* empty fields.
 */
func (t *Table) CSV() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(t.Columns); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = ""
			if v, ok := row[col]; ok {
				record[i] = cellString(v)
			}
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteCSV writes the table to a file
func (t *Table) WriteCSV(filePath string) error {
	content, err := t.CSV()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write csv file: %w", err)
	}
	return nil
}

/**
* JSONLines serialises the table as one json object per line, keys in
* column order. Missing cells are omitted rather than written as null.
 */
func (t *Table) JSONLines() (string, error) {
	var sb strings.Builder
	for _, row := range t.Rows {
		line := "{}"
		var err error
		for _, col := range t.Columns {
			v, ok := row[col]
			if !ok {
				continue
			}
			line, err = sjson.Set(line, escapeKey(col), v)
			if err != nil {
				return "", fmt.Errorf("failed to set %s: %w", col, err)
			}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// escapeKey protects dots in column names from sjson path syntax
func escapeKey(key string) string {
	return strings.ReplaceAll(key, ".", `\.`)
}
