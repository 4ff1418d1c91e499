package run

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"statementfetcher/internal/statement"
	"statementfetcher/internal/testutil"
)

func fixedClock() *testutil.FixedClock {
	return &testutil.FixedClock{
		Start: time.Date(2026, 8, 26, 10, 15, 0, 0, time.UTC),
		Step:  1500 * time.Millisecond,
	}
}

func TestNew_DefaultOutputRoot(t *testing.T) {
	r := New(&testutil.MockProvider{}, SystemClock(), strings.NewReader(""), Options{})
	if r.opts.OutputRoot != "outputs" {
		t.Errorf("OutputRoot = %q, want outputs", r.opts.OutputRoot)
	}
}

func TestRun_EmptyTicker(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "outputs")

	tests := []string{"", "\n", "   \n", " \t \n"}
	for _, input := range tests {
		r := New(&testutil.MockProvider{}, fixedClock(), strings.NewReader(input), Options{OutputRoot: root})

		if err := r.Run(context.Background()); err != nil {
			t.Errorf("Run(%q) returned unexpected error: %v", input, err)
		}
		if _, err := os.Stat(root); !os.IsNotExist(err) {
			t.Errorf("Run(%q) created output root, stat err = %v", input, err)
		}
	}
}

func TestRun_FetchFailureAbortsBeforeAnyWrite(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "outputs")

	income := statement.Raw{
		LineItems: []string{"Total Revenue"},
		Periods:   []time.Time{time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
	}
	p := testutil.NewStaticProvider(income, statement.Raw{}, statement.Raw{}, nil)
	fetchErr := errors.New("upstream unavailable")
	p.CashFlowFunc = func(context.Context, string) (statement.Raw, error) {
		return statement.Raw{}, fetchErr
	}

	r := New(p, fixedClock(), strings.NewReader("CBA.AX\n"), Options{OutputRoot: root})
	err := r.Run(context.Background())
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("Run() error = %v, want wrapped %v", err, fetchErr)
	}

	// Fail-fast: nothing may have been written, not even the statements
	// that fetched fine.
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("output root exists after failed fetch, stat err = %v", err)
	}
}

func TestRun_QuoteFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "outputs")

	p := testutil.NewStaticProvider(statement.Raw{}, statement.Raw{}, statement.Raw{}, nil)
	p.QuoteFunc = func(context.Context, string) (map[string]any, error) {
		return nil, errors.New("quote endpoint down")
	}

	r := New(p, fixedClock(), strings.NewReader("AAPL\n"), Options{OutputRoot: root})
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	manifestPath := filepath.Join(root, "20260826_101500", "AAPL", "run_metadata.json")
	if _, err := os.Stat(manifestPath); err != nil {
		t.Errorf("manifest not written despite quote failure: %v", err)
	}
}

func TestRun_OutputDirUsesClockAndFolderName(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "outputs")

	p := testutil.NewStaticProvider(statement.Raw{}, statement.Raw{}, statement.Raw{}, nil)
	r := New(p, fixedClock(), strings.NewReader("cba.ax\n"), Options{OutputRoot: root})
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	expected := filepath.Join(root, "20260826_101500", "CBA_AX")
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("expected output dir %s: %v", expected, err)
	}
}

func TestReadTicker(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"newline terminated", "cba.ax\n", "CBA.AX"},
		{"eof terminated", "aapl", "AAPL"},
		{"windows line ending", "msft\r\n", "MSFT"},
		{"surrounding spaces", "  brk.b  \n", "BRK.B"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&testutil.MockProvider{}, SystemClock(), strings.NewReader(tt.input), Options{})
			got, err := r.readTicker()
			if err != nil {
				t.Fatalf("readTicker() returned unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("readTicker() = %q, want %q", got, tt.expected)
			}
		})
	}
}
