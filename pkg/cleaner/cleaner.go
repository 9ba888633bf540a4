// pkg/cleaner/cleaner.go
package cleaner

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/madhan/dataset-cleaner/pkg/model"
)

// FileCleaner streams a single CSV file in chunks, drops rows whose role
// columns carry the sentinel value, and mirrors the kept rows under the
// cleaned output root
type FileCleaner struct {
	dataDir    string
	cleanedDir string
	chunkSize  int
	resolver   *Resolver
	logger     *zap.Logger
}

// NewFileCleaner creates a new FileCleaner instance
func NewFileCleaner(dataDir, cleanedDir string, chunkSize int, resolver *Resolver, logger *zap.Logger) (*FileCleaner, error) {
	if dataDir == "" {
		return nil, errors.New("data directory cannot be empty")
	}
	if cleanedDir == "" {
		return nil, errors.New("cleaned output directory cannot be empty")
	}
	if chunkSize <= 0 {
		return nil, errors.New("chunk size must be positive")
	}
	if resolver == nil {
		return nil, errors.New("resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &FileCleaner{
		dataDir:    dataDir,
		cleanedDir: cleanedDir,
		chunkSize:  chunkSize,
		resolver:   resolver,
		logger:     logger,
	}, nil
}

// FileResult describes the outcome of cleaning one file. Removal entries are
// returned as values; persisting them is the caller's responsibility.
type FileResult struct {
	RelPath     string
	Roles       Roles
	Skipped     bool // no role columns found, file copied unfiltered
	RowsRead    int64
	RowsKept    int64
	RowsRemoved int64
	Removals    []model.RemovalEntry
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

// Complete marks the file as processed and calculates duration
func (r *FileResult) Complete() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// CleanFile processes a single source file identified by its path relative
// to the data root. The source is streamed chunk by chunk; role columns are
// resolved once from the header and reused for every chunk. Any read or
// write failure aborts the file and propagates to the caller.
func (c *FileCleaner) CleanFile(relPath string) (*FileResult, error) {
	result := &FileResult{
		RelPath:   relPath,
		Roles:     Roles{StateIndex: -1, DistrictIndex: -1},
		StartTime: time.Now(),
	}

	srcPath := filepath.Join(c.dataDir, relPath)
	dstPath := filepath.Join(c.cleanedDir, relPath)

	// Mirror the relative path under the output root. MkdirAll is
	// idempotent, so pre-existing directories are fine.
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory for %s: %w", relPath, err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file %s: %w", relPath, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", relPath, err)
	}
	defer dst.Close()

	reader := csv.NewReader(src)
	writer := csv.NewWriter(dst)

	header, err := reader.Read()
	if err == io.EOF {
		// Empty source: mirror it as an empty file
		result.Complete()
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", relPath, err)
	}

	// Role columns are resolved once per file; later chunks reuse them
	result.Roles = c.resolver.Resolve(header)
	if !result.Roles.Found() {
		result.Skipped = true
		c.logger.Warn("No state/district columns found, copying unfiltered",
			zap.String("file", relPath),
			zap.Strings("header", header))
	} else {
		c.logger.Debug("Resolved role columns",
			zap.String("file", relPath),
			zap.String("stateColumn", result.Roles.StateColumn),
			zap.String("districtColumn", result.Roles.DistrictColumn))
	}

	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header of %s: %w", relPath, err)
	}

	chunk := make([][]string, 0, c.chunkSize)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
		}

		chunk = append(chunk, record)
		if len(chunk) == c.chunkSize {
			if err := c.processChunk(chunk, header, writer, result); err != nil {
				return nil, err
			}
			chunk = chunk[:0]
		}
	}
	if len(chunk) > 0 {
		if err := c.processChunk(chunk, header, writer, result); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to write output for %s: %w", relPath, err)
	}

	result.Complete()
	return result, nil
}

// processChunk partitions one chunk, appends the kept rows to the output and
// accumulates the removed rows on the result
func (c *FileCleaner) processChunk(chunk [][]string, header []string, writer *csv.Writer, result *FileResult) error {
	result.RowsRead += int64(len(chunk))

	kept, removed := Partition(chunk, result.Roles, Sentinel)
	result.RowsKept += int64(len(kept))
	result.RowsRemoved += int64(len(removed))

	for _, record := range kept {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row of %s: %w", result.RelPath, err)
		}
	}

	if len(removed) > 0 {
		result.Removals = append(result.Removals, model.RemovalEntry{
			RelPath: result.RelPath,
			Header:  header,
			Rows:    removed,
		})
	}

	return nil
}
