// pkg/store/postgres.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/GrayMists/sales-ingress/pkg/config"
	"github.com/GrayMists/sales-ingress/pkg/model"
)

// Postgres is a direct database connection to the same project the REST
// client talks to. It handles the paths the REST surface does not cover:
// the cleaning audit trail and row-count verification after uploads.
type Postgres struct {
	db     *sqlx.DB
	logger *zap.Logger
	cfg    *config.PostgresConfig
}

// NewPostgres opens and verifies a direct database connection.
func NewPostgres(ctx context.Context, cfg *config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	logger.Info("Connecting to PostgreSQL",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.String("user", cfg.User))

	db, err := sqlx.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &Postgres{db: db, logger: logger, cfg: cfg}, nil
}

// EnsureAuditTable creates the cleaning audit table when it is missing.
func (p *Postgres) EnsureAuditTable(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cleaning_audit (
			id BIGSERIAL PRIMARY KEY,
			region TEXT NOT NULL,
			column_name TEXT NOT NULL,
			original_value TEXT,
			new_value TEXT,
			row_identifier TEXT,
			operation TEXT NOT NULL,
			reason TEXT,
			cleaned_at TIMESTAMP WITH TIME ZONE NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure cleaning audit table: %w", err)
	}
	return nil
}

// RecordCleaningOperations persists the audit trail for one ingestion run.
func (p *Postgres) RecordCleaningOperations(ctx context.Context, ops []model.CleaningOperation) error {
	if len(ops) == 0 {
		return nil
	}

	query := `
		INSERT INTO cleaning_audit
			(region, column_name, original_value, new_value, row_identifier, operation, reason, cleaned_at)
		VALUES
			(:region, :column_name, :original_value, :new_value, :row_identifier, :operation, :reason, :cleaned_at)
	`

	if _, err := p.db.NamedExecContext(ctx, query, ops); err != nil {
		return fmt.Errorf("failed to record cleaning operations: %w", err)
	}

	p.logger.Debug("Cleaning operations recorded", zap.Int("count", len(ops)))
	return nil
}

// CountSalesRows counts rows in the sales table for one source file date.
// Used to verify uploads landed completely.
func (p *Postgres) CountSalesRows(ctx context.Context, table, sourceFileDate string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE source_file_date = $1", pqQuoteIdentifier(table))
	if err := p.db.GetContext(ctx, &count, query, sourceFileDate); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

// Close closes the database connection.
func (p *Postgres) Close() error {
	p.logger.Info("Closing PostgreSQL connection")
	return p.db.Close()
}

// pqQuoteIdentifier quotes a table name so configured names cannot break the
// count query.
func pqQuoteIdentifier(name string) string {
	return `"` + name + `"`
}
