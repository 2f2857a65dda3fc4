package tabular

import (
	"testing"
	"time"
)

func TestCellKeys(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"null", NullCell(), ""},
		{"empty string folds to null", StringCell(""), ""},
		{"string", StringCell("GL"), "GL"},
		{"integer-valued number", NumberCell(2023), "2023"},
		{"fractional number", NumberCell(0.25), "0.25"},
		{"date", DateCell(time.Date(2023, 4, 1, 13, 30, 0, 0, time.UTC)), "2023-04-01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Key(); got != tc.want {
				t.Fatalf("Key() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDateCellTruncatesToDay(t *testing.T) {
	c := DateCell(time.Date(2023, 4, 1, 23, 59, 59, 0, time.UTC))
	d, ok := c.Date()
	if !ok {
		t.Fatalf("expected a date cell")
	}
	if !d.Equal(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date not truncated: %v", d)
	}
}

func TestWithColumnReplacesAndAppends(t *testing.T) {
	tb := New([]string{"A", "B"})
	tb.AppendRow([]Cell{StringCell("x"), NumberCell(1)})
	tb.AppendRow([]Cell{StringCell("y"), NumberCell(2)})

	replaced := tb.WithColumn("B", []Cell{NumberCell(10), NumberCell(20)})
	if got := replaced.Cell(1, "B").Key(); got != "20" {
		t.Fatalf("replace failed, got %q", got)
	}
	// original untouched
	if got := tb.Cell(1, "B").Key(); got != "2" {
		t.Fatalf("receiver mutated, got %q", got)
	}

	appended := tb.WithColumn("C", []Cell{StringCell("n"), StringCell("m")})
	cols := appended.Columns()
	if len(cols) != 3 || cols[2] != "C" {
		t.Fatalf("append failed, columns %v", cols)
	}
}

func TestSelectPreservesOrder(t *testing.T) {
	tb := New([]string{"N"})
	for i := 1; i <= 5; i++ {
		tb.AppendRow([]Cell{NumberCell(float64(i))})
	}
	odd := tb.Select(func(i int) bool { return i%2 == 0 }) // rows 0,2,4
	if odd.Len() != 3 {
		t.Fatalf("want 3 rows, got %d", odd.Len())
	}
	want := []string{"1", "3", "5"}
	for i, w := range want {
		if got := odd.Cell(i, "N").Key(); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestDistinctSortsNumericallyWhenPossible(t *testing.T) {
	tb := New([]string{"UY", "LOB"})
	rows := [][]Cell{
		{NumberCell(2023), StringCell("GL")},
		{NumberCell(999), StringCell("Auto")},
		{NumberCell(2023), NullCell()},
		{NullCell(), StringCell("GL")},
		{NumberCell(1100), StringCell("Property")},
	}
	for _, r := range rows {
		tb.AppendRow(r)
	}

	uy := tb.Distinct("UY")
	if len(uy) != 3 || uy[0] != "999" || uy[1] != "1100" || uy[2] != "2023" {
		t.Fatalf("numeric sort wrong: %v", uy)
	}

	lob := tb.Distinct("LOB")
	if len(lob) != 3 || lob[0] != "Auto" || lob[1] != "GL" || lob[2] != "Property" {
		t.Fatalf("lexical sort wrong: %v", lob)
	}
}
