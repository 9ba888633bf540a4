package runner

import (
	"time"

	"github.com/google/uuid"

	"github.com/madhan/dataset-cleaner/pkg/cleaner"
)

// RunSummary tracks the outcome of a cleaning run across all files
type RunSummary struct {
	RunID             string
	FilesProcessed    int
	FilesSkipped      int // files with no role columns, copied unfiltered
	FilesWithRemovals int
	TotalRowsRead     int64
	TotalRowsKept     int64
	TotalRowsRemoved  int64
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}

// NewRunSummary initializes a summary for a new run
func NewRunSummary() *RunSummary {
	return &RunSummary{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
	}
}

// AddFileResult incorporates a file result into the summary
func (s *RunSummary) AddFileResult(result *cleaner.FileResult) {
	s.FilesProcessed++
	if result.Skipped {
		s.FilesSkipped++
	}
	if result.RowsRemoved > 0 {
		s.FilesWithRemovals++
	}
	s.TotalRowsRead += result.RowsRead
	s.TotalRowsKept += result.RowsKept
	s.TotalRowsRemoved += result.RowsRemoved
}

// Complete marks the run as complete and calculates duration
func (s *RunSummary) Complete() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// RemovalRate returns the percentage of input rows that were removed
func (s *RunSummary) RemovalRate() float64 {
	if s.TotalRowsRead == 0 {
		return 0
	}
	return float64(s.TotalRowsRemoved) / float64(s.TotalRowsRead) * 100
}
