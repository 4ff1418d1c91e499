package run

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"statementfetcher/internal/export"
	"statementfetcher/internal/manifest"
	"statementfetcher/internal/provider"
	"statementfetcher/internal/statement"
	"statementfetcher/internal/ticker"
)

// runStampLayout names run output directories; sortable and path-safe.
const runStampLayout = "20060102_150405"

// Clock supplies the current time. Injected so runs are reproducible in
// tests; the system clock's readings carry Go's monotonic component, so
// durations computed from them are monotonic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// Options configures a Runner.
type Options struct {
	// OutputRoot is the directory run folders are created under.
	OutputRoot string
	// ExportWorkbook additionally writes the statements into one XLSX workbook.
	ExportWorkbook bool
	// FetchTimeout bounds the provider calls; zero means no bound.
	// It does not cover the interactive prompt.
	FetchTimeout time.Duration
}

// Runner drives a single fetch-normalize-export run.
type Runner struct {
	provider provider.Provider
	clock    Clock
	in       io.Reader
	opts     Options
}

// New creates a Runner reading the ticker from in.
func New(p provider.Provider, clock Clock, in io.Reader, opts Options) *Runner {
	if opts.OutputRoot == "" {
		opts.OutputRoot = "outputs"
	}
	return &Runner{
		provider: p,
		clock:    clock,
		in:       in,
		opts:     opts,
	}
}

// Run executes one run: prompt for a ticker, fetch the three statements,
// export each as CSV, take a best-effort quote snapshot, and write the
// run manifest. An empty ticker returns nil without creating anything.
// A failed statement fetch returns an error before any file is written.
func (r *Runner) Run(ctx context.Context) error {
	started := r.clock.Now()

	symbol, err := r.readTicker()
	if err != nil {
		return err
	}
	if symbol == "" {
		fmt.Println("No ticker entered. Exiting.")
		return nil
	}

	folder := ticker.FolderName(symbol)
	outputDir := filepath.Join(r.opts.OutputRoot, started.Format(runStampLayout), folder)
	slog.Debug("starting run", "ticker", symbol, "output_dir", outputDir)

	fetchCtx := ctx
	if r.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, r.opts.FetchTimeout)
		defer cancel()
	}

	// Fetch everything up front: a failed fetch aborts the run with no
	// partial CSVs and no manifest.
	rawStatements := make(map[statement.Kind]statement.Raw, len(statement.Kinds()))
	for _, kind := range statement.Kinds() {
		raw, err := provider.Statement(fetchCtx, r.provider, symbol, kind)
		if err != nil {
			return fmt.Errorf("failed to fetch %s statement for %s: %w", kind, symbol, err)
		}
		rawStatements[kind] = raw
	}

	generated := make(map[string]manifest.ExportResult, len(statement.Kinds()))
	normalized := make(map[statement.Kind]statement.Normalized, len(statement.Kinds()))
	for _, kind := range statement.Kinds() {
		n := statement.Normalize(rawStatements[kind], kind)
		normalized[kind] = n

		path := filepath.Join(outputDir, kind.FileName())
		saved, err := export.WriteCSV(n, path)
		if err != nil {
			return fmt.Errorf("failed to export %s statement: %w", kind, err)
		}

		generated[kind.ManifestKey()] = manifest.ExportResult{
			Saved:   saved,
			Path:    filepath.ToSlash(path),
			Summary: statement.Summarize(n),
		}
	}

	if r.opts.ExportWorkbook {
		if _, err := export.WriteWorkbook(normalized, filepath.Join(outputDir, "statements.xlsx")); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
	}

	// Quote snapshot is best-effort: on any error the manifest just
	// carries an empty section.
	quote, err := r.provider.Quote(fetchCtx, symbol)
	if err != nil {
		slog.Debug("quote snapshot unavailable", "ticker", symbol, "error", err)
		quote = nil
	}

	ended := r.clock.Now()

	meta := manifest.RunMetadata{
		RunID:          uuid.NewString(),
		RunStarted:     started,
		RunEnded:       ended,
		DurationSec:    ended.Sub(started).Seconds(),
		Ticker:         symbol,
		TickerFolder:   folder,
		OutputDir:      filepath.ToSlash(outputDir),
		GeneratedFiles: generated,
		QuoteSnapshot:  manifest.Snapshot(quote),
		Environment:    manifest.CaptureEnvironment(),
	}

	return manifest.Write(meta, filepath.Join(outputDir, manifest.FileName))
}

// readTicker prompts the operator and reads one trimmed, upper-cased
// line. EOF before any input reads as an empty ticker.
func (r *Runner) readTicker() (string, error) {
	fmt.Print("Enter a ticker (e.g. CBA.AX, WBC.AX, AAPL): ")

	line, err := bufio.NewReader(r.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read ticker: %w", err)
	}

	return ticker.Normalize(strings.TrimSuffix(line, "\n")), nil
}
