package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"deal-formatter/models"
	"deal-formatter/utils"
)

// PostgresWriter persists generated listings to PostgreSQL. It is an
// optional sink alongside the CSV output; failures here are reported to the
// caller and never abort the batch.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, waits for the server
// to answer pings, runs schema migrations, and returns a ready-to-use
// PostgresWriter.
func NewPostgresWriter(dsn string, connectAttempts int, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: connectAttempts,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS deal_listings (
			id               SERIAL PRIMARY KEY,
			raw_title        TEXT        NOT NULL,
			formatted_title  TEXT        NOT NULL,
			html_description TEXT        NOT NULL DEFAULT '',
			seo_description  TEXT        NOT NULL DEFAULT '',
			generation_error TEXT        NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_deal_listings_title ON deal_listings(formatted_title);
	`)
	return err
}

// WriteResults inserts one record per row inside a single transaction.
func (pw *PostgresWriter) WriteResults(rows []*models.DealRow, results []models.GenerationResult) error {
	if len(rows) != len(results) {
		return fmt.Errorf("postgres: row/result count mismatch: %d rows, %d results", len(rows), len(results))
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO deal_listings (raw_title, formatted_title, html_description, seo_description, generation_error)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("postgres: prepare: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		res := results[i]
		if _, err := stmt.Exec(row.RawTitle, res.Title, res.HTMLDescription, res.SEODescription, res.Err); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("postgres: insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
