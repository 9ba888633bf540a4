// pkg/audit/log.go
package audit

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/madhan/dataset-cleaner/pkg/model"
)

// Log is the single shared audit file recording all removed rows of a run.
// It is reset once at run start and only appended afterwards; the file
// handle is acquired per append and closed before returning.
type Log struct {
	path   string
	logger *zap.Logger
}

// NewLog creates a new audit log bound to the given path
func NewLog(path string, logger *zap.Logger) (*Log, error) {
	if path == "" {
		return nil, errors.New("audit log path cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Log{path: path, logger: logger}, nil
}

// Path returns the audit log file location
func (l *Log) Path() string {
	return l.path
}

// Reset removes any log left over from a previous run so the current run
// starts with a clean file. It reports whether a previous log was cleared.
func (l *Log) Reset() (bool, error) {
	err := os.Remove(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to clear previous audit log: %w", err)
	}

	l.logger.Info("Cleared previous audit log", zap.String("path", l.path))
	return true, nil
}

// Append writes the removal entries of one file to the audit log. The file
// is opened in append mode and closed after writing.
func (l *Log) Append(entries []model.RemovalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	rows := 0
	for _, entry := range entries {
		if _, err := f.WriteString(entry.Render()); err != nil {
			return fmt.Errorf("failed to append to audit log: %w", err)
		}
		rows += entry.RowCount()
	}

	l.logger.Debug("Appended removal entries to audit log",
		zap.String("file", entries[0].RelPath),
		zap.Int("entries", len(entries)),
		zap.Int("rows", rows))

	return nil
}
