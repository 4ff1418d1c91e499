package manifest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"statementfetcher/internal/statement"
)

// FileName is the manifest file written into every run output directory.
const FileName = "run_metadata.json"

// ExportResult records the outcome of exporting one statement.
type ExportResult struct {
	Saved   bool              `json:"saved"`
	Path    string            `json:"path"`
	Summary statement.Summary `json:"summary"`
}

// Environment describes the runtime that produced a manifest.
type Environment struct {
	GoVersion string            `json:"go_version"`
	Platform  string            `json:"platform"`
	Libraries map[string]string `json:"libraries"`
}

// RunMetadata is the manifest describing a single run.
type RunMetadata struct {
	RunID          string                  `json:"run_id"`
	RunStarted     time.Time               `json:"run_started"`
	RunEnded       time.Time               `json:"run_ended"`
	DurationSec    float64                 `json:"duration_sec"`
	Ticker         string                  `json:"ticker"`
	TickerFolder   string                  `json:"ticker_folder"`
	OutputDir      string                  `json:"output_dir"`
	GeneratedFiles map[string]ExportResult `json:"generated_files"`
	QuoteSnapshot  map[string]Value        `json:"quote_snapshot"`
	Environment    Environment             `json:"environment"`
}

// CaptureEnvironment reads version information for the running binary.
// Library versions come from the build info when available; a binary
// built outside module mode just reports an empty mapping.
func CaptureEnvironment() Environment {
	env := Environment{
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Libraries: map[string]string{},
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return env
	}
	for _, dep := range info.Deps {
		env.Libraries[dep.Path] = dep.Version
	}

	return env
}

// Write serializes the manifest as indented UTF-8 JSON (no BOM) to path,
// creating parent directories as needed, and names the file on success.
func Write(meta RunMetadata, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run metadata: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run metadata: %w", err)
	}

	slog.Debug("wrote run metadata", "path", path, "bytes", len(data))
	fmt.Printf("[OK] Saved: %s\n", filepath.ToSlash(path))

	return nil
}
