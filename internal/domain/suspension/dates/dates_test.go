package dates

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize_IndonesianMonths(t *testing.T) {
	tests := []struct {
		month string
		num   string
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
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			got, err := Normalize("5 " + tt.month + " 2025")
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			want := "2025-" + tt.num + "-05"
			if got != want {
				t.Errorf("Normalize() = %q, want %q", got, want)
			}
		})
	}
}

func TestNormalize_DirectFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ISO date", "2025-01-10", "2025-01-10"},
		{"spreadsheet datetime", "2024-07-01 00:00:00", "2024-07-01"},
		{"ISO datetime", "2025-03-15T09:30:00", "2025-03-15"},
		{"slashed date", "10/01/2025", "2025-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_MixedCaseAndSpacing(t *testing.T) {
	got, err := Normalize("  12   Agustus   2024 ")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got != "2024-08-12" {
		t.Errorf("Normalize() = %q, want %q", got, "2024-08-12")
	}
}

func TestNormalize_WordBoundaries(t *testing.T) {
	// "mei" inside a longer token must not be replaced.
	_, err := Normalize("5 ramei 2025")
	if !errors.Is(err, ErrUnparsableDate) {
		t.Fatalf("Normalize() error = %v, want ErrUnparsableDate", err)
	}
}

func TestNormalize_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"garbage", "segera diumumkan"},
		{"unknown month", "5 frimaire 2025"},
		{"day only", "17 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if !errors.Is(err, ErrUnparsableDate) {
				t.Fatalf("Normalize(%q) error = %v, want ErrUnparsableDate", tt.input, err)
			}
			if got != "" {
				t.Errorf("Normalize(%q) = %q, want empty", tt.input, got)
			}
			if tt.input != "" && !strings.Contains(err.Error(), strings.TrimSpace(tt.input)) && strings.TrimSpace(tt.input) != "" {
				t.Errorf("error %q should surface the offending input %q", err, tt.input)
			}
		})
	}
}
