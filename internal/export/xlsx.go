package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"statementfetcher/internal/statement"
)

// WriteWorkbook writes the non-empty statements into a single workbook,
// one sheet per statement kind, in kind order. If every statement is
// empty no file is written and saved is false.
func WriteWorkbook(statements map[statement.Kind]statement.Normalized, path string) (saved bool, err error) {
	wb := excelize.NewFile()
	defer wb.Close()

	var sheets int
	for _, kind := range statement.Kinds() {
		n, ok := statements[kind]
		if !ok || n.Empty() {
			continue
		}
		if err := writeSheet(wb, kind.SheetName(), n); err != nil {
			return false, err
		}
		sheets++
	}

	if sheets == 0 {
		fmt.Printf("[WARN] Not saved (empty): %s\n", filepath.Base(path))
		return false, nil
	}

	// Drop excelize's default sheet so the workbook holds only statements.
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return false, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := wb.SaveAs(path); err != nil {
		return false, fmt.Errorf("failed to save workbook: %w", err)
	}

	fmt.Printf("[OK] Saved: %s\n", filepath.ToSlash(path))
	return true, nil
}

func writeSheet(wb *excelize.File, name string, n statement.Normalized) error {
	if _, err := wb.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return wb.SetSheetRow(name, cell, &row)
	}

	if err := writeRow(1, n.Columns); err != nil {
		return fmt.Errorf("failed to write header for sheet %s: %w", name, err)
	}
	for i, row := range n.Rows {
		if err := writeRow(i+2, row); err != nil {
			return fmt.Errorf("failed to write row %d for sheet %s: %w", i, name, err)
		}
	}

	return nil
}
