package statsbomb

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableColumnOrder(t *testing.T) {
	table := NewTable("id", "name")
	table.AddRow(map[string]any{"id": 1, "name": "a", "zebra": true, "apple": 2})
	table.AddRow(map[string]any{"id": 2, "extra": "x"})

	// leading columns first, then new columns sorted per row
	assert.Equal(t, []string{"id", "name", "apple", "zebra", "extra"}, table.Columns)
	assert.Equal(t, 2, table.NumRows())
}

func TestTableColumn(t *testing.T) {
	table := NewTable()
	table.AddRow(map[string]any{"x": 1.5})
	table.AddRow(map[string]any{"x": 2})
	table.AddRow(map[string]any{"y": "missing"})

	x := table.Column("x")
	require.Len(t, x, 3)
	assert.Equal(t, 1.5, x[0])
	assert.Equal(t, 2.0, x[1])
	assert.True(t, math.IsNaN(x[2]))

	s := table.Strings("y")
	assert.Equal(t, []string{"", "", "missing"}, s)
}

func TestTableFilter(t *testing.T) {
	table := NewTable("n")
	for i := 1; i <= 5; i++ {
		table.AddRow(map[string]any{"n": i})
	}
	odd := table.Filter(func(row map[string]any) bool {
		return row["n"].(int)%2 == 1
	})
	assert.Equal(t, 3, odd.NumRows())
	assert.Equal(t, []string{"n"}, odd.Columns)
}

func TestTableSortBy(t *testing.T) {
	table := NewTable("a", "b")
	table.AddRow(map[string]any{"a": 2, "b": "x"})
	table.AddRow(map[string]any{"a": 1, "b": "z"})
	table.AddRow(map[string]any{"a": 1, "b": "y"})
	table.AddRow(map[string]any{"b": "w"})

	table.SortBy("a", "b")

	// missing cells sort first, ties break on the next column
	assert.Nil(t, table.Rows[0]["a"])
	assert.Equal(t, "y", table.Rows[1]["b"])
	assert.Equal(t, "z", table.Rows[2]["b"])
	assert.Equal(t, 2, table.Rows[3]["a"])
}

func TestTableCSV(t *testing.T) {
	table := NewTable("id", "name")
	table.AddRow(map[string]any{"id": 1, "name": "Messi"})
	table.AddRow(map[string]any{"id": 2})

	out, err := table.CSV()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name", lines[0])
	assert.Equal(t, "1,Messi", lines[1])
	assert.Equal(t, "2,", lines[2])
}

func TestTableJSONLines(t *testing.T) {
	table := NewTable("id", "ok")
	table.AddRow(map[string]any{"id": 1, "ok": true})
	table.AddRow(map[string]any{"id": 2})

	out, err := table.JSONLines()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"id":1,"ok":true}`, lines[0])
	// missing cells are omitted, not null
	assert.JSONEq(t, `{"id":2}`, lines[1])
}
