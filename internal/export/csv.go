package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"statementfetcher/internal/statement"
)

// utf8BOM makes the CSV open correctly in common spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a normalized statement to path as BOM-prefixed UTF-8
// CSV, creating parent directories as needed. An empty table is an
// expected skip: no file is written, a warning notice names the file,
// and saved is false. Filesystem errors propagate to the caller.
func WriteCSV(n statement.Normalized, path string) (saved bool, err error) {
	if n.Empty() {
		fmt.Printf("[WARN] Not saved (empty): %s\n", filepath.Base(path))
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return false, fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(n.Columns); err != nil {
		return false, fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range n.Rows {
		if err := writer.Write(row); err != nil {
			return false, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return false, fmt.Errorf("failed to flush csv: %w", err)
	}

	slog.Debug("wrote csv",
		"path", path,
		"rows", len(n.Rows),
		"cols", len(n.Columns))
	fmt.Printf("[OK] Saved: %s\n", filepath.ToSlash(path))

	return true, nil
}
