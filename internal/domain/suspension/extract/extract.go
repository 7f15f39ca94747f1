// Package extract pulls suspension dates and symbol lists out of raw
// announcement document text. The matching windows and section markers are
// tuned to the layout of one document family and are not general NLP.
package extract

import (
	"regexp"
	"strings"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension/reason"
)

const datePattern = `(\d{1,2}\s+\w+\s+\d{4})`

// Suspension keyword followed within 200 characters by an optional
// "tanggal" marker and a day-month-year token. Two keyword variants are
// scanned separately; candidates keep their matched snippet so the
// "sesi ii" preference can inspect context.
var dateAfterKeyword = []*regexp.Regexp{
	regexp.MustCompile(`(?is)suspensi.{0,200}?(?:tanggal\s+)?` + datePattern),
	regexp.MustCompile(`(?is)penghentian\s+sementara.{0,200}?(?:tanggal\s+)?` + datePattern),
}

var (
	decisionMarker = regexp.MustCompile(`(?is)Atas dasar hal tersebut di atas, Bursa memutuskan untuk:(.*)`)
	sectionA       = regexp.MustCompile(`(?is)a\.(.*?)b\.`)
	sectionB       = regexp.MustCompile(`(?is)b\.(.*)`)
	anyDate        = regexp.MustCompile(`(?i)` + datePattern)
	parenSymbol    = regexp.MustCompile(`\(([A-Z]{4})\)`)
	numberedSymbol = regexp.MustCompile(`\d+\.\s+([A-Z]{3,4})\b`)
)

type dateCandidate struct {
	raw     string
	snippet string
}

// SingleDate finds the suspension effective date in a single-symbol
// announcement. It returns the raw date text (normalization happens in
// the sanitizer) and false when no candidate exists.
//
// When any candidate's surrounding snippet mentions "sesi ii" the last
// such candidate wins; otherwise the last candidate overall does. The
// documents restate the date several times and the operative one comes
// last.
func SingleDate(documentText string) (string, bool) {
	text := suspension.CollapseWhitespace(documentText)

	var candidates []dateCandidate
	for _, re := range dateAfterKeyword {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			candidates = append(candidates, dateCandidate{
				raw:     text[m[2]:m[3]],
				snippet: strings.ToLower(text[m[0]:m[1]]),
			})
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	for i := len(candidates) - 1; i >= 0; i-- {
		if strings.Contains(candidates[i].snippet, "sesi ii") {
			return candidates[i].raw, true
		}
	}
	return candidates[len(candidates)-1].raw, true
}

// Single extracts the date and reason for a single-symbol announcement.
func Single(documentText, symbol string) (date, why string, dateOK, whyOK bool) {
	date, dateOK = SingleDate(documentText)
	why, whyOK = reason.Classify(documentText, symbol)
	return date, why, dateOK, whyOK
}

// Multi extracts one record per affected symbol from a multi-symbol
// announcement.
//
// The decision clause (everything after the standard "Bursa memutuskan
// untuk:" marker, or the whole text when absent) is split into an "a."
// section and a "b." section. Section A symbols share the section's first
// date; section B enumerates additional symbols without restating a date.
// Documents lacking both markers fall back to numbered-line symbol lists
// with the single-announcement date heuristic. Allow-list filtering is
// the caller's job.
func Multi(documentText, symbolHint, documentRef, baseURL string) []suspension.Record {
	text := suspension.CollapseWhitespace(documentText)

	why, _ := reason.Classify(text, symbolHint)
	documentURL := baseURL + documentRef

	scope := text
	if m := decisionMarker.FindStringSubmatch(text); m != nil {
		scope = m[1]
	}

	var records []suspension.Record
	emit := func(code, date string) {
		records = append(records, suspension.Record{
			Symbol:         code + suspension.SymbolSuffix,
			DocumentURL:    documentURL,
			SuspensionDate: date,
			Reason:         why,
		})
	}

	matchedA := sectionA.FindStringSubmatch(scope)
	matchedB := sectionB.FindStringSubmatch(scope)

	if matchedA != nil {
		section := matchedA[1]
		date := ""
		if dm := anyDate.FindStringSubmatch(section); dm != nil {
			date = dm[1]
		}
		for _, sm := range parenSymbol.FindAllStringSubmatch(section, -1) {
			emit(sm[1], date)
		}
	}

	if matchedB != nil {
		for _, sm := range parenSymbol.FindAllStringSubmatch(matchedB[1], -1) {
			emit(sm[1], "")
		}
	}

	if matchedA == nil && matchedB == nil {
		date, _ := SingleDate(text)
		for _, sm := range numberedSymbol.FindAllStringSubmatch(scope, -1) {
			emit(sm[1], date)
		}
	}

	return records
}
