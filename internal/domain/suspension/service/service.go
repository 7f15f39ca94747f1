// Package service orchestrates the suspension batch: per-announcement
// extraction, long-suspension reconciliation, and sanitization into clean
// and incomplete record sets.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension/dates"
	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension/extract"
	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension/registry"
)

// DocumentProvider returns the flattened plain text of one announcement
// document, given its feed reference path.
type DocumentProvider interface {
	DocumentText(ctx context.Context, ref string) (string, error)
}

// SymbolSet is the allow-list of eligible symbols in full "CODE.JK" form.
type SymbolSet map[string]struct{}

// NewSymbolSet builds a SymbolSet from a symbol list.
func NewSymbolSet(symbols []string) SymbolSet {
	set := make(SymbolSet, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports whether symbol is eligible.
func (s SymbolSet) Contains(symbol string) bool {
	_, ok := s[symbol]
	return ok
}

// BatchResult is the outcome of one full pipeline run.
type BatchResult struct {
	RunID          uuid.UUID
	Clean          []suspension.Record
	Incomplete     []suspension.Record
	EntriesTotal   int
	EntriesFailed  int
	EntriesSkipped int
	Duplicates     int
}

// IncompleteSink receives records that could not be fully resolved, for
// manual follow-up. Appends must never overwrite earlier rows.
type IncompleteSink interface {
	Append(records []suspension.Record) error
}

// SuspensionService drives per-document extraction across an announcement
// batch and produces the reconciled, sanitized record set.
type SuspensionService struct {
	docs    DocumentProvider
	baseURL string
	sink    IncompleteSink
	logger  *slog.Logger
}

// NewSuspensionService creates the batch service. baseURL prefixes every
// document reference to form the record's document URL.
func NewSuspensionService(docs DocumentProvider, baseURL string, logger *slog.Logger) *SuspensionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SuspensionService{docs: docs, baseURL: baseURL, logger: logger}
}

// WithIncompleteSink attaches a side channel for incomplete records.
func (s *SuspensionService) WithIncompleteSink(sink IncompleteSink) *SuspensionService {
	s.sink = sink
	return s
}

// Process runs the full batch: extraction entry by entry, reconciliation
// against the long-suspension registry, then sanitization. A failure on
// one entry is logged with its symbol code and skipped; the batch always
// completes with both output sets.
func (s *SuspensionService) Process(ctx context.Context, allowed SymbolSet, entries []suspension.AnnouncementEntry, reg registry.Registry) (*BatchResult, error) {
	result := &BatchResult{
		RunID:        uuid.New(),
		EntriesTotal: len(entries),
	}
	logger := s.logger.With(slog.String("run_id", result.RunID.String()))
	logger.Info("processing announcement batch", slog.Int("entries", len(entries)))

	var records []suspension.Record
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch aborted: %w", err)
		}

		extracted, err := s.processEntry(ctx, logger, allowed, entry, result)
		if err != nil {
			result.EntriesFailed++
			logger.Error("failed to process announcement",
				slog.String("symbol", entry.SymbolCode),
				slog.Any("error", err),
			)
			continue
		}
		records = append(records, extracted...)
	}

	records = registry.Reconcile(records, reg)

	clean, incomplete, duplicates := sanitize(records)
	result.Clean = clean
	result.Incomplete = incomplete
	result.Duplicates = duplicates

	if s.sink != nil && len(incomplete) > 0 {
		if err := s.sink.Append(incomplete); err != nil {
			logger.Error("failed to persist incomplete records", slog.Any("error", err))
		}
	}

	logger.Info("announcement batch done",
		slog.Int("clean", len(clean)),
		slog.Int("incomplete", len(incomplete)),
		slog.Int("failed", result.EntriesFailed),
		slog.Int("duplicates", duplicates),
	)
	return result, nil
}

// processEntry extracts records for one announcement entry, already
// filtered by the allow-list.
func (s *SuspensionService) processEntry(ctx context.Context, logger *slog.Logger, allowed SymbolSet, entry suspension.AnnouncementEntry, result *BatchResult) ([]suspension.Record, error) {
	text, err := s.docs.DocumentText(ctx, entry.DocumentRef)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", entry.DocumentRef, err)
	}

	if suspension.IsMultiSymbolTitle(entry.Title) {
		logger.Info("processing multi-symbol announcement", slog.String("symbol", entry.SymbolCode))

		all := extract.Multi(text, entry.SymbolCode, entry.DocumentRef, s.baseURL)
		filtered := all[:0:0]
		for _, rec := range all {
			if allowed.Contains(rec.Symbol) {
				filtered = append(filtered, rec)
			}
		}
		if len(filtered) == 0 {
			logger.Info("no allowed symbols in multi-symbol announcement",
				slog.String("symbol", entry.SymbolCode))
		}
		return filtered, nil
	}

	symbol := suspension.FullSymbol(entry.SymbolCode)
	if !allowed.Contains(symbol) {
		result.EntriesSkipped++
		logger.Warn("symbol not in allowed set, skipping", slog.String("symbol", symbol))
		return nil, nil
	}

	logger.Info("processing single announcement", slog.String("symbol", symbol))
	date, why, _, _ := extract.Single(text, symbol)
	return []suspension.Record{{
		Symbol:         symbol,
		DocumentURL:    s.baseURL + entry.DocumentRef,
		SuspensionDate: date,
		Reason:         why,
	}}, nil
}

// sanitize partitions incomplete records out, normalizes the remaining
// suspension dates, and deduplicates on (symbol, date), first seen wins.
// A non-empty date that fails normalization routes its record to the
// incomplete set rather than dropping it silently.
func sanitize(records []suspension.Record) (clean, incomplete []suspension.Record, duplicates int) {
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if !rec.Complete() {
			incomplete = append(incomplete, rec)
			continue
		}

		normalized, err := dates.Normalize(rec.SuspensionDate)
		if err != nil {
			incomplete = append(incomplete, rec)
			continue
		}
		rec.SuspensionDate = normalized

		key := rec.Symbol + "|" + rec.SuspensionDate
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
		clean = append(clean, rec)
	}
	return clean, incomplete, duplicates
}
