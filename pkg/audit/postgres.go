// pkg/audit/postgres.go
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/madhan/dataset-cleaner/pkg/config"
	"github.com/madhan/dataset-cleaner/pkg/model"
)

// PostgresSink records removed rows in a Postgres tracking table, in
// addition to the audit log file. It is optional: runs without Postgres
// configuration never construct one.
type PostgresSink struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPostgresSink connects to Postgres and ensures the tracking table exists
func NewPostgresSink(cfg *config.PostgresConfig, logger *zap.Logger) (*PostgresSink, error) {
	if cfg == nil {
		return nil, errors.New("postgres configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	db, err := sqlx.Connect("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	sink := &PostgresSink{
		db:     db,
		logger: logger,
	}

	// Ensure the tracking table exists
	if err := sink.setupTrackingTable(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup tracking table: %w", err)
	}

	return sink, nil
}

// setupTrackingTable ensures the removed_rows tracking table exists
func (s *PostgresSink) setupTrackingTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	createTableSQL := `
		CREATE TABLE IF NOT EXISTS public.removed_rows (
			id SERIAL PRIMARY KEY,
			run_id TEXT NOT NULL,
			file_path TEXT NOT NULL,
			column_name TEXT NOT NULL,
			cell_value TEXT NOT NULL,
			row_data TEXT NOT NULL,
			removed_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create tracking table: %w", err)
	}

	s.logger.Info("Ensured removed_rows table exists")
	return nil
}

// Record batch inserts removed rows into the tracking table
func (s *PostgresSink) Record(ctx context.Context, rows []model.RemovedRow) error {
	if len(rows) == 0 {
		return nil
	}

	// Begin transaction
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("Failed to rollback transaction",
					zap.Error(rbErr),
					zap.Error(err))
			}
		}
	}()

	// Prepare statement
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO public.removed_rows
		(run_id, file_path, column_name, cell_value, row_data)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	// Execute batch insert
	for _, row := range rows {
		_, err = stmt.ExecContext(ctx,
			row.RunID,
			row.FilePath,
			row.ColumnName,
			row.CellValue,
			row.RowData,
		)
		if err != nil {
			return fmt.Errorf("failed to insert removed row: %w", err)
		}
	}

	// Commit transaction
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Recorded removed rows", zap.Int("count", len(rows)))
	return nil
}

// Close releases the database connection
func (s *PostgresSink) Close() error {
	return s.db.Close()
}
