package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/madhan/dataset-cleaner/pkg/audit"
	"github.com/madhan/dataset-cleaner/pkg/cleaner"
	"github.com/madhan/dataset-cleaner/pkg/config"
	"github.com/madhan/dataset-cleaner/pkg/model"
)

// RemovalSink persists removed rows outside the audit log file
type RemovalSink interface {
	Record(ctx context.Context, rows []model.RemovedRow) error
}

// Runner orchestrates a cleaning run: it verifies the directory layout,
// discovers the CSV files under the data root and processes them one at a
// time, persisting removal records between files. Execution is fully
// sequential; the audit log is the only resource shared across files.
type Runner struct {
	cfg      *config.Config
	cleaner  *cleaner.FileCleaner
	auditLog *audit.Log
	sink     RemovalSink
	logger   *zap.Logger
	status   *StatusPrinter
}

// NewRunner creates a runner with the default column-role resolver,
// printing status lines to stdout
func NewRunner(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	fileCleaner, err := cleaner.NewFileCleaner(cfg.DataDir, cfg.CleanedDir, cfg.ChunkSize, cleaner.NewResolver(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create file cleaner: %w", err)
	}

	auditLog, err := audit.NewLog(cfg.AuditLogFile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log: %w", err)
	}

	return &Runner{
		cfg:      cfg,
		cleaner:  fileCleaner,
		auditLog: auditLog,
		logger:   logger,
		status:   NewStatusPrinter(os.Stdout),
	}, nil
}

// WithStatusWriter redirects the tagged status lines and returns the runner
func (r *Runner) WithStatusWriter(w io.Writer) *Runner {
	r.status = NewStatusPrinter(w)
	return r
}

// WithSink adds an additional removal sink and returns the runner
func (r *Runner) WithSink(sink RemovalSink) *Runner {
	r.sink = sink
	return r
}

// Run executes one cleaning run over the whole data tree. A missing data
// root is fatal; any I/O error while processing a file aborts the run and
// leaves the output tree and log partially written.
func (r *Runner) Run(ctx context.Context) (*RunSummary, error) {
	summary := NewRunSummary()

	// Fail fast on a missing input tree before touching anything
	info, err := os.Stat(r.cfg.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data directory not found: %s", r.cfg.DataDir)
		}
		return nil, fmt.Errorf("failed to check data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path is not a directory: %s", r.cfg.DataDir)
	}

	if err := r.ensureCleanedRoot(); err != nil {
		return nil, err
	}

	cleared, err := r.auditLog.Reset()
	if err != nil {
		return nil, err
	}
	if cleared {
		r.status.Infof("Cleared previous log: %s", r.auditLog.Path())
	}

	files, err := discoverCSVFiles(r.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan data directory: %w", err)
	}

	if len(files) == 0 {
		r.status.Warnf("No CSV files found under %s", r.cfg.DataDir)
		r.logger.Warn("No CSV files found", zap.String("dataDir", r.cfg.DataDir))
		summary.Complete()
		return summary, nil
	}

	r.status.Infof("Found %d CSV files under %s", len(files), r.cfg.DataDir)
	r.logger.Info("Starting cleaning run",
		zap.String("runID", summary.RunID),
		zap.Int("fileCount", len(files)),
		zap.String("dataDir", r.cfg.DataDir))

	for _, relPath := range files {
		if err := r.processFile(ctx, relPath, summary); err != nil {
			return nil, err
		}
	}

	summary.Complete()

	r.status.Donef("Finished cleaning. Cleaned files in %s", r.cfg.CleanedDir)
	r.status.Logf("Removed entries logged to %s", r.auditLog.Path())
	r.logger.Info("Cleaning run completed",
		zap.String("runID", summary.RunID),
		zap.Int("filesProcessed", summary.FilesProcessed),
		zap.Int("filesSkipped", summary.FilesSkipped),
		zap.Int64("rowsRead", summary.TotalRowsRead),
		zap.Int64("rowsRemoved", summary.TotalRowsRemoved),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

// processFile cleans a single file and persists its removal records
func (r *Runner) processFile(ctx context.Context, relPath string, summary *RunSummary) error {
	result, err := r.cleaner.CleanFile(relPath)
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", relPath, err)
	}

	if result.Skipped {
		r.status.Skipf("No state/district columns in %s", relPath)
	}

	if result.RowsRemoved > 0 {
		r.status.Removef("%d rows from %s", result.RowsRemoved, relPath)

		if err := r.auditLog.Append(result.Removals); err != nil {
			return fmt.Errorf("failed to log removals for %s: %w", relPath, err)
		}

		if r.sink != nil {
			if err := r.sink.Record(ctx, flattenRemovals(summary.RunID, result)); err != nil {
				return fmt.Errorf("failed to record removals for %s: %w", relPath, err)
			}
		}
	} else {
		r.status.Cleanf("No rows with value %s in %s", cleaner.Sentinel, relPath)
	}

	summary.AddFileResult(result)
	return nil
}

// ensureCleanedRoot creates the output root if absent and reports whether
// it pre-existed
func (r *Runner) ensureCleanedRoot() error {
	if _, err := os.Stat(r.cfg.CleanedDir); err == nil {
		r.status.Infof("Cleaned dataset dir exists: %s", r.cfg.CleanedDir)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check cleaned output directory: %w", err)
	}

	if err := os.MkdirAll(r.cfg.CleanedDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cleaned output directory: %w", err)
	}
	r.status.Infof("Created cleaned dataset dir: %s", r.cfg.CleanedDir)
	return nil
}

// discoverCSVFiles recursively collects the .csv files under root, returned
// as paths relative to it. filepath.WalkDir visits entries in lexical
// order, so discovery is deterministic for a given tree.
func discoverCSVFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".csv") {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// flattenRemovals converts a file's removal entries into per-row sink records
func flattenRemovals(runID string, result *cleaner.FileResult) []model.RemovedRow {
	var rows []model.RemovedRow
	for _, entry := range result.Removals {
		for _, row := range entry.Rows {
			column, value, _ := result.Roles.Match(row, cleaner.Sentinel)
			rows = append(rows, model.RemovedRow{
				RunID:      runID,
				FilePath:   entry.RelPath,
				ColumnName: column,
				CellValue:  value,
				RowData:    strings.Join(row, "\t"),
			})
		}
	}
	return rows
}
