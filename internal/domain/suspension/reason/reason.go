// Package reason maps announcement text to a canonical suspension reason
// using a fixed, order-sensitive phrase catalog.
package reason

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// pattern pairs a lowercase trigger phrase with its canonical template.
// Templates with a %s emit the subject symbol.
type pattern struct {
	trigger  string
	template string
}

// catalog is scanned in declaration order: when several phrases occur in
// the same document, the earliest declared one wins. The order is part of
// the contract, tuned to the announcement family.
var catalog = []pattern{
	{
		"peningkatan harga kumulatif yang signifikan",
		"Terjadinya peningkatan harga kumulatif yang signifikan pada saham %s",
	},
	{
		"cooling down sebagai bentuk perlindungan bagi investor",
		"Dalam rangka cooling down sebagai bentuk perlindungan bagi investor",
	},
	{
		"untuk melakukan pembubaran dan likuidasi",
		"Berencana untuk melakukan pembubaran dan likuidasi %s",
	},
	{
		"penurunan harga kumulatif yang signifikan",
		"Terjadinya penurunan harga kumulatif yang signifikan pada saham %s",
	},
	{
		"perihal penundaan pembayaran pelunasan pokok & bunga mtn xv pp properti tahun 2022 ke-12 (ppro15xxmf)",
		"Perihal Penundaan Pembayaran Pelunasan Pokok & Bunga MTN XV PP Properti Tahun 2022 Ke-12 (PPRO15XXMF)",
	},
	{
		"belum menyampaikan laporan keuangan auditan tahunan",
		"Belum menyampaikan laporan keuangan auditan tahunan",
	},
	{
		"berada dalam papan pemantauan khusus selama lebih dari 1 (satu) tahun berturut-turut",
		"Efek Perseroan telah berada dalam papan pemantauan khusus selama lebih dari 1 (satu) tahun berturut-turut",
	},
	{
		"pengalihan saham hasil pelaksanaan pembelian kembali saham",
		"Dalam rangka pengalihan saham hasil pelaksanaan pembelian kembali saham (buyback) dalam rangka delisting perseroan",
	},
	{
		"belum menyampaikan laporan keuangan interim per 31 maret 2025",
		"Belum menyampaikan laporan keuangan interim per 31 maret 2025 dan/atau belum melakukan pembayaran denda atas keterlambatan penyampaian laporan keuangan tersebut",
	},
	{
		"belum memenuhi ketentuan v.1.1.",
		"Belum memenuhi ketentuan V.1.1. dan/atau V.1.2. peraturan bursa nomor I-A",
	},
	{
		"keterlambatan pembayaran biaya pencatatan tahunan 2025",
		"Keterlambatan pembayaran biaya pencatatan tahunan 2025",
	},
	{
		"terdapat keraguan atas kelangsungan usaha perseroan",
		"Bursa menilai bahwa terdapat keraguan atas kelangsungan usaha perseroan",
	},
}

// The combined price-increase + cooling-down condition is checked before
// the catalog; both phrases present yields one merged sentence.
const (
	priceIncreaseTrigger = "peningkatan harga kumulatif yang signifikan"
	coolingDownTrigger   = "cooling down sebagai bentuk perlindungan bagi investor"
	combinedTemplate     = "Terjadinya peningkatan harga kumulatif yang signifikan pada saham %s, dalam rangka cooling down sebagai bentuk perlindungan bagi investor"
)

// matcher finds every catalog trigger in one pass; the hit with the
// smallest pattern index decides, which preserves declaration order.
var matcher = newMatcher()

func newMatcher() *ahocorasick.Matcher {
	triggers := make([][]byte, len(catalog))
	for i, p := range catalog {
		triggers[i] = []byte(p.trigger)
	}
	return ahocorasick.NewMatcher(triggers)
}

func normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// Classify returns the canonical reason for the document text, or
// ("", false) when no known phrase occurs. symbol is interpolated into
// templates that name the subject stock.
func Classify(text, symbol string) (string, bool) {
	normalized := normalize(text)
	if normalized == "" {
		return "", false
	}

	if strings.Contains(normalized, priceIncreaseTrigger) &&
		strings.Contains(normalized, coolingDownTrigger) {
		return fmt.Sprintf(combinedTemplate, symbol), true
	}

	hits := matcher.Match([]byte(normalized))
	if len(hits) == 0 {
		return "", false
	}

	best := hits[0]
	for _, h := range hits[1:] {
		if h < best {
			best = h
		}
	}

	p := catalog[best]
	if strings.Contains(p.template, "%s") {
		return fmt.Sprintf(p.template, symbol), true
	}
	return p.template, true
}

// Catalog exposes the trigger phrases in declaration order, mainly so the
// order-sensitivity contract is testable.
func Catalog() []string {
	triggers := make([]string, len(catalog))
	for i, p := range catalog {
		triggers[i] = p.trigger
	}
	return triggers
}
