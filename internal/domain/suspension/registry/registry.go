// Package registry loads the long-suspension registry (stocks suspended
// for more than six months) from the exchange's spreadsheet feed and
// applies it over extracted records.
package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
)

// LongSuspensionReason is the fixed reason applied to every registry match.
const LongSuspensionReason = "Suspend more than 6 month"

// Spreadsheet header names, as published by the exchange.
const (
	codeHeader = "kode"
	dateHeader = "tanggal suspensi"
)

// Registry maps a bare symbol code to its suspension date string, exactly
// as the spreadsheet carries it. Values are normalized later in the shared
// sanitization pass, not here.
type Registry map[string]string

// FromXLSX reads the registry spreadsheet, locating the code and date
// columns by header on the first sheet.
func FromXLSX(r io.Reader) (Registry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("registry spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Registry{}, nil
	}

	codeCol, dateCol := -1, -1
	for i, header := range rows[0] {
		switch h := strings.ToLower(strings.TrimSpace(header)); {
		case codeCol < 0 && strings.Contains(h, codeHeader):
			codeCol = i
		case dateCol < 0 && strings.Contains(h, dateHeader):
			dateCol = i
		}
	}
	if codeCol < 0 || dateCol < 0 {
		return nil, fmt.Errorf("registry spreadsheet missing %q or %q column", codeHeader, dateHeader)
	}

	cell := func(row []string, idx int) string {
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	reg := make(Registry, len(rows)-1)
	for _, row := range rows[1:] {
		code := strings.ToUpper(cell(row, codeCol))
		if code == "" {
			continue
		}
		reg[code] = cell(row, dateCol)
	}
	return reg, nil
}

// Reconcile overwrites reason and suspension date for every record whose
// bare symbol appears in the registry; other records pass through
// unchanged. The slice is updated in place and returned.
func Reconcile(records []suspension.Record, reg Registry) []suspension.Record {
	for i := range records {
		date, ok := reg[records[i].BareSymbol()]
		if !ok {
			continue
		}
		records[i].Reason = LongSuspensionReason
		records[i].SuspensionDate = date
	}
	return records
}
