package statement

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func cell(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func missing() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

func sampleRaw() Raw {
	return Raw{
		LineItems: []string{"Total Revenue", "Gross Profit", "Net Income"},
		Periods:   []time.Time{date("2025-06-30"), date("2024-06-30")},
		Cells: [][]decimal.NullDecimal{
			{cell("27237000000"), cell("26836000000")},
			{cell("15000000000"), missing()},
			{cell("9481000000"), cell("10188000000")},
		},
	}
}

func TestKinds_Order(t *testing.T) {
	kinds := Kinds()
	expected := []Kind{Income, BalanceSheet, CashFlow}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("Kinds() = %v, want %v", kinds, expected)
	}
}

func TestKind_FileName(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Income, "income_statement.csv"},
		{BalanceSheet, "balance_sheet.csv"},
		{CashFlow, "cash_flow.csv"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.FileName(); got != tt.expected {
				t.Errorf("FileName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
	}{
		{"zero value", Raw{}},
		{"no periods", Raw{LineItems: []string{"Total Revenue"}}},
		{"no line items", Raw{Periods: []time.Time{date("2025-06-30")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range Kinds() {
				n := Normalize(tt.raw, kind)
				if !n.Empty() {
					t.Errorf("Normalize(%s) on empty raw is not empty: %+v", kind, n)
				}
			}
		})
	}
}

func TestNormalize_Shape(t *testing.T) {
	raw := sampleRaw()
	n := Normalize(raw, Income)

	if got, want := len(n.Rows), len(raw.LineItems); got != want {
		t.Fatalf("rows = %d, want %d", got, want)
	}
	if got, want := len(n.Columns), len(raw.Periods)+2; got != want {
		t.Fatalf("cols = %d, want %d", got, want)
	}

	expectedColumns := []string{"line_item", "statement", "2025-06-30", "2024-06-30"}
	if !reflect.DeepEqual(n.Columns, expectedColumns) {
		t.Errorf("Columns = %v, want %v", n.Columns, expectedColumns)
	}
}

func TestNormalize_RowOrderAndValues(t *testing.T) {
	n := Normalize(sampleRaw(), BalanceSheet)

	expectedRows := [][]string{
		{"Total Revenue", "balance_sheet", "27237000000", "26836000000"},
		{"Gross Profit", "balance_sheet", "15000000000", ""},
		{"Net Income", "balance_sheet", "9481000000", "10188000000"},
	}
	if !reflect.DeepEqual(n.Rows, expectedRows) {
		t.Errorf("Rows = %v, want %v", n.Rows, expectedRows)
	}
}

func TestNormalize_StatementColumnPerKind(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			n := Normalize(sampleRaw(), kind)
			for i, row := range n.Rows {
				if row[1] != string(kind) {
					t.Errorf("row %d statement = %q, want %q", i, row[1], string(kind))
				}
			}
		})
	}
}

func TestNormalize_PreservesDecimalPrecision(t *testing.T) {
	raw := Raw{
		LineItems: []string{"Diluted EPS"},
		Periods:   []time.Time{date("2025-06-30")},
		Cells:     [][]decimal.NullDecimal{{cell("1234567890.12")}},
	}

	n := Normalize(raw, Income)
	if got := n.Rows[0][2]; got != "1234567890.12" {
		t.Errorf("cell = %q, want %q", got, "1234567890.12")
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(Normalized{})

	if !s.Empty {
		t.Error("Empty = false, want true")
	}
	if s.Rows != 0 || s.Cols != 0 {
		t.Errorf("Rows, Cols = %d, %d, want 0, 0", s.Rows, s.Cols)
	}
	if s.Columns == nil || len(s.Columns) != 0 {
		t.Errorf("Columns = %v, want empty slice", s.Columns)
	}
}

func TestSummarize_NonEmpty(t *testing.T) {
	n := Normalize(sampleRaw(), CashFlow)
	s := Summarize(n)

	if s.Empty {
		t.Error("Empty = true, want false")
	}
	if s.Rows != 3 {
		t.Errorf("Rows = %d, want 3", s.Rows)
	}
	if s.Cols != 4 {
		t.Errorf("Cols = %d, want 4", s.Cols)
	}
	if !reflect.DeepEqual(s.Columns, n.Columns) {
		t.Errorf("Columns = %v, want %v", s.Columns, n.Columns)
	}
}
