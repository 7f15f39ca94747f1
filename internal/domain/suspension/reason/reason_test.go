package reason

import (
	"strings"
	"testing"
)

func TestClassify_CombinedCondition(t *testing.T) {
	// Both trigger phrases present yields the merged sentence, in either
	// order of appearance.
	tests := []struct {
		name string
		text string
	}{
		{
			"increase then cooling down",
			"terjadi peningkatan harga kumulatif yang signifikan sehingga perlu cooling down sebagai bentuk perlindungan bagi investor",
		},
		{
			"cooling down then increase",
			"dalam rangka cooling down sebagai bentuk perlindungan bagi investor atas peningkatan harga kumulatif yang signifikan",
		},
	}

	want := "Terjadinya peningkatan harga kumulatif yang signifikan pada saham ABCD.JK, dalam rangka cooling down sebagai bentuk perlindungan bagi investor"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.text, "ABCD.JK")
			if !ok {
				t.Fatal("Classify() returned no match")
			}
			if got != want {
				t.Errorf("Classify() = %q, want %q", got, want)
			}
		})
	}
}

func TestClassify_SymbolInterpolation(t *testing.T) {
	got, ok := Classify("Perseroan berencana untuk melakukan pembubaran dan likuidasi", "WXYZ.JK")
	if !ok {
		t.Fatal("Classify() returned no match")
	}
	if got != "Berencana untuk melakukan pembubaran dan likuidasi WXYZ.JK" {
		t.Errorf("Classify() = %q", got)
	}
}

func TestClassify_DeclarationOrderWins(t *testing.T) {
	// Two catalog phrases in one document: the earlier declared one must
	// win regardless of textual position.
	catalog := Catalog()
	early, late := catalog[3], catalog[11] // penurunan harga / keraguan kelangsungan usaha

	text := "bursa menilai " + late + " dan juga " + early
	got, ok := Classify(text, "ABCD.JK")
	if !ok {
		t.Fatal("Classify() returned no match")
	}
	if got != "Terjadinya penurunan harga kumulatif yang signifikan pada saham ABCD.JK" {
		t.Errorf("Classify() = %q, want the earlier-declared pattern's template", got)
	}
}

func TestClassify_CaseAndWhitespaceInsensitive(t *testing.T) {
	text := "BELUM   MENYAMPAIKAN\nLAPORAN\tKEUANGAN   AUDITAN TAHUNAN"
	got, ok := Classify(text, "ABCD.JK")
	if !ok {
		t.Fatal("Classify() returned no match")
	}
	if got != "Belum menyampaikan laporan keuangan auditan tahunan" {
		t.Errorf("Classify() = %q", got)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	if got, ok := Classify("pengumuman jadwal perdagangan bursa", "ABCD.JK"); ok {
		t.Errorf("Classify() = %q, want no match", got)
	}
	if _, ok := Classify("", "ABCD.JK"); ok {
		t.Error("Classify(empty) matched")
	}
}

func TestCatalog_StableOrder(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 12 {
		t.Fatalf("catalog has %d entries, want 12", len(catalog))
	}
	if !strings.HasPrefix(catalog[0], "peningkatan harga kumulatif") {
		t.Errorf("first catalog entry = %q", catalog[0])
	}
	if catalog[11] != "terdapat keraguan atas kelangsungan usaha perseroan" {
		t.Errorf("last catalog entry = %q", catalog[11])
	}
}
