// Package repository persists suspension records and serves the eligible
// symbol allow-list from PostgreSQL.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
)

// SuspensionRepository is the persistence surface the pipeline needs.
type SuspensionRepository interface {
	UpsertRecords(ctx context.Context, records []suspension.Record) error
	AllowedSymbols(ctx context.Context) ([]string, error)
}

// PostgresSuspensionRepository implements SuspensionRepository on pgx.
type PostgresSuspensionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSuspensionRepository creates a new PostgreSQL repository.
func NewPostgresSuspensionRepository(pool *pgxpool.Pool) *PostgresSuspensionRepository {
	return &PostgresSuspensionRepository{pool: pool}
}

// UpsertRecords writes the clean record set, replacing the document URL
// and reason for rows already present for the same symbol and date.
func (r *PostgresSuspensionRepository) UpsertRecords(ctx context.Context, records []suspension.Record) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO idx_suspension (symbol, pdf_url, suspension_date, reason)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol, suspension_date)
		DO UPDATE SET pdf_url = EXCLUDED.pdf_url, reason = EXCLUDED.reason`

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query, rec.Symbol, rec.DocumentURL, rec.SuspensionDate, rec.Reason)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert record %s: %w", records[i].Symbol, err)
		}
	}
	return nil
}

// AllowedSymbols returns every listed symbol from the company profile
// table, in full "CODE.JK" form.
func (r *PostgresSuspensionRepository) AllowedSymbols(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT symbol FROM idx_company_profile`)
	if err != nil {
		return nil, fmt.Errorf("failed to query company profiles: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read symbols: %w", err)
	}
	return symbols, nil
}
