// Package dates normalizes the mixed date formats found in IDX suspension
// sources (ISO spreadsheet values, Indonesian "5 Januari 2025" document text)
// to canonical "YYYY-MM-DD" strings.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrUnparsableDate indicates the raw text matched no known date format.
// Callers treat it as "date unresolved", never as a fatal condition.
var ErrUnparsableDate = errors.New("unparsable date")

// directFormats are tried verbatim before any month-name substitution.
// Spreadsheet exports deliver the first three; RFC3339 covers feed JSON.
var directFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
}

// monthReplacement maps an Indonesian month name or abbreviation to its
// two-digit number.
type monthReplacement struct {
	re  *regexp.Regexp
	num string
}

var monthTable = buildMonthTable([]struct {
	name string
	num  string
}{
	{"januari", "01"}, {"jan", "01"},
	{"februari", "02"}, {"feb", "02"},
	{"maret", "03"}, {"mar", "03"},
	{"april", "04"}, {"apr", "04"},
	{"mei", "05"},
	{"juni", "06"}, {"jun", "06"},
	{"juli", "07"}, {"jul", "07"},
	{"agustus", "08"}, {"agu", "08"}, {"agt", "08"},
	{"september", "09"}, {"sep", "09"}, {"sept", "09"},
	{"oktober", "10"}, {"okt", "10"},
	{"november", "11"}, {"nov", "11"},
	{"desember", "12"}, {"des", "12"},
})

func buildMonthTable(entries []struct {
	name string
	num  string
}) []monthReplacement {
	table := make([]monthReplacement, 0, len(entries))
	for _, e := range entries {
		// Word boundaries so "mei" inside a longer token is untouched.
		table = append(table, monthReplacement{
			re:  regexp.MustCompile(`\b` + e.name + `\b`),
			num: e.num,
		})
	}
	return table
}

var spaceRun = regexp.MustCompile(`\s+`)

// Normalize converts a raw date string to canonical "YYYY-MM-DD".
//
// Already-unambiguous values (ISO dates, spreadsheet datetimes) parse
// directly; otherwise Indonesian month names are replaced by numbers and
// the result is parsed as "day month year". An unrecognized value returns
// ErrUnparsableDate wrapping the offending text.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty input", ErrUnparsableDate)
	}

	for _, layout := range directFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	s := strings.ToLower(trimmed)
	for _, m := range monthTable {
		s = m.re.ReplaceAllString(s, m.num)
	}
	s = spaceRun.ReplaceAllString(s, " ")

	t, err := time.Parse("2 1 2006", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparsableDate, raw)
	}
	return t.Format("2006-01-02"), nil
}
