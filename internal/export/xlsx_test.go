package export

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"statementfetcher/internal/statement"
)

func TestWriteWorkbook_AllEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statements.xlsx")

	saved, err := WriteWorkbook(map[statement.Kind]statement.Normalized{}, path)
	if err != nil {
		t.Fatalf("WriteWorkbook() returned unexpected error: %v", err)
	}
	if saved {
		t.Error("saved = true, want false when every statement is empty")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file should not exist, stat err = %v", err)
	}
}

func TestWriteWorkbook_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statements.xlsx")

	statements := map[statement.Kind]statement.Normalized{
		statement.Income: sampleNormalized(),
		statement.BalanceSheet: {
			Columns: []string{"line_item", "statement", "2025-06-30"},
			Rows:    [][]string{{"Total Assets", "balance_sheet", "1000"}},
		},
		statement.CashFlow: {},
	}

	saved, err := WriteWorkbook(statements, path)
	if err != nil {
		t.Fatalf("WriteWorkbook() returned unexpected error: %v", err)
	}
	if !saved {
		t.Fatal("saved = false, want true")
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open written workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	expectedSheets := []string{"Income Statement", "Balance Sheet"}
	if !reflect.DeepEqual(sheets, expectedSheets) {
		t.Errorf("sheets = %v, want %v", sheets, expectedSheets)
	}

	rows, err := wb.GetRows("Income Statement")
	if err != nil {
		t.Fatalf("failed to read income sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("income sheet rows = %d, want 3", len(rows))
	}
	if got := rows[1][0]; got != "Total Revenue" {
		t.Errorf("first data cell = %q, want Total Revenue", got)
	}
}
