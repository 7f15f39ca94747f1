// Package suspension implements the IDX stock-suspension record pipeline:
// extraction from announcement documents, long-suspension reconciliation,
// and sanitization into a clean deduplicated record set.
package suspension

import (
	"regexp"
	"strings"
)

// SymbolSuffix is appended to every bare IDX ticker code.
const SymbolSuffix = ".JK"

// AnnouncementEntry is one item from the exchange announcement feed.
type AnnouncementEntry struct {
	Title       string `json:"Judul"`
	SymbolCode  string `json:"Kode"`
	DocumentRef string `json:"Data_Download"`
}

// Record is one extracted suspension row. SuspensionDate holds the raw
// document text until the sanitizer normalizes it to ISO form; either
// SuspensionDate or Reason may be empty until then.
type Record struct {
	Symbol         string `csv:"symbol"`
	DocumentURL    string `csv:"pdf_url"`
	SuspensionDate string `csv:"suspension_date"`
	Reason         string `csv:"reason"`
}

// Complete reports whether both optional fields were resolved.
func (r Record) Complete() bool {
	return r.SuspensionDate != "" && r.Reason != ""
}

// BareSymbol strips the exchange suffix: "BBRI.JK" -> "BBRI".
func (r Record) BareSymbol() string {
	return strings.TrimSuffix(r.Symbol, SymbolSuffix)
}

// FullSymbol builds the canonical "CODE.JK" form from a bare code.
func FullSymbol(code string) string {
	return strings.ToUpper(strings.TrimSpace(code)) + SymbolSuffix
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace folds all whitespace runs in s to single spaces.
// Every text matcher in this package operates on collapsed text so that
// PDF line breaks and column gaps do not split phrases.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// The feed serves multi-symbol titles both with a literal ">" and with
// the JSON unicode escape left intact, so both spellings are checked.
const (
	multiMarker        = ">1 kode"
	multiMarkerEscaped = `\u003e1 kode`
)

// IsMultiSymbolTitle reports whether the entry title announces a
// multi-symbol suspension document.
func IsMultiSymbolTitle(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, multiMarker) || strings.Contains(t, multiMarkerEscaped)
}
