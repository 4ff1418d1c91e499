package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the three financial statements.
type Kind string

const (
	// Income is the income statement (profit and loss).
	Income Kind = "income"
	// BalanceSheet is the balance sheet.
	BalanceSheet Kind = "balance_sheet"
	// CashFlow is the cash flow statement.
	CashFlow Kind = "cash_flow"
)

// Kinds returns the statement kinds in export order.
func Kinds() []Kind {
	return []Kind{Income, BalanceSheet, CashFlow}
}

// FileName returns the CSV file name for this statement kind.
func (k Kind) FileName() string {
	return k.ManifestKey() + ".csv"
}

// ManifestKey returns the key used for this kind in the run manifest.
func (k Kind) ManifestKey() string {
	switch k {
	case Income:
		return "income_statement"
	case BalanceSheet:
		return "balance_sheet"
	case CashFlow:
		return "cash_flow"
	}
	return string(k)
}

// SheetName returns the worksheet title for this kind in the workbook export.
func (k Kind) SheetName() string {
	switch k {
	case Income:
		return "Income Statement"
	case BalanceSheet:
		return "Balance Sheet"
	case CashFlow:
		return "Cash Flow"
	}
	return string(k)
}

// Raw is a statement as returned by the data provider: line items down,
// reporting periods across. Cells may be missing (NullDecimal invalid)
// when the provider reports no value for a line item in a period.
type Raw struct {
	LineItems []string
	Periods   []time.Time
	Cells     [][]decimal.NullDecimal // indexed [line item][period]
}

// Empty reports whether the statement has no exportable rows.
func (r Raw) Empty() bool {
	return len(r.LineItems) == 0 || len(r.Periods) == 0
}

// Normalized is an export-ready statement table. Columns are, in order:
// line_item, statement, then one column per period. Rows preserve the
// provider's line item order; cell values are rendered exactly, with
// missing values as empty strings.
type Normalized struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether there is nothing to export.
func (n Normalized) Empty() bool {
	return len(n.Rows) == 0
}

// periodLabel formats a period end-date as a stable, locale-independent
// CSV header.
func periodLabel(t time.Time) string {
	return t.Format("2006-01-02")
}

// Normalize reshapes a raw statement for export. Row labels move into a
// leading line_item column, a constant statement column follows, and the
// period columns keep their original order. Values are not transformed.
// An empty raw statement normalizes to an empty table.
func Normalize(raw Raw, kind Kind) Normalized {
	if raw.Empty() {
		return Normalized{}
	}

	columns := make([]string, 0, len(raw.Periods)+2)
	columns = append(columns, "line_item", "statement")
	for _, p := range raw.Periods {
		columns = append(columns, periodLabel(p))
	}

	rows := make([][]string, 0, len(raw.LineItems))
	for i, item := range raw.LineItems {
		row := make([]string, 0, len(columns))
		row = append(row, item, string(kind))
		for j := range raw.Periods {
			row = append(row, renderCell(raw.Cells, i, j))
		}
		rows = append(rows, row)
	}

	return Normalized{Columns: columns, Rows: rows}
}

func renderCell(cells [][]decimal.NullDecimal, i, j int) string {
	if i >= len(cells) || j >= len(cells[i]) {
		return ""
	}
	cell := cells[i][j]
	if !cell.Valid {
		return ""
	}
	return cell.Decimal.String()
}

// Summary describes the shape of a normalized table for the run manifest.
type Summary struct {
	Empty   bool     `json:"empty"`
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Columns []string `json:"columns"`
}

// Summarize computes shape metadata for a normalized table. Pure; never
// fails. An empty table summarizes to zero rows and columns.
func Summarize(n Normalized) Summary {
	if n.Empty() {
		return Summary{Empty: true, Columns: []string{}}
	}
	columns := make([]string, len(n.Columns))
	copy(columns, n.Columns)
	return Summary{
		Rows:    len(n.Rows),
		Cols:    len(n.Columns),
		Columns: columns,
	}
}
