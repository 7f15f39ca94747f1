package registry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
)

func buildSheet(t *testing.T, headers []interface{}, rows ...[]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headers))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestFromXLSX(t *testing.T) {
	sheet := buildSheet(t,
		[]interface{}{"No", "Kode", "Nama Perusahaan", "Tanggal Suspensi"},
		[]interface{}{1, "AAAA", "PT Alpha Tbk", "2025-01-10"},
		[]interface{}{2, "bbbb", "PT Beta Tbk", "5 Januari 2025"},
		[]interface{}{3, "", "PT Tanpa Kode", "2025-02-01"},
	)

	reg, err := FromXLSX(sheet)
	require.NoError(t, err)

	assert.Len(t, reg, 2)
	assert.Equal(t, "2025-01-10", reg["AAAA"])
	// Codes are uppercased; dates pass through verbatim.
	assert.Equal(t, "5 Januari 2025", reg["BBBB"])
}

func TestFromXLSX_MissingColumns(t *testing.T) {
	sheet := buildSheet(t,
		[]interface{}{"No", "Nama Perusahaan"},
		[]interface{}{1, "PT Alpha Tbk"},
	)

	_, err := FromXLSX(sheet)
	require.Error(t, err)
}

func TestFromXLSX_NotASpreadsheet(t *testing.T) {
	_, err := FromXLSX(bytes.NewReader([]byte("not a spreadsheet")))
	require.Error(t, err)
}

func TestReconcile(t *testing.T) {
	records := []suspension.Record{
		{Symbol: "CCCC.JK", SuspensionDate: "5 Januari 2025", Reason: "Belum menyampaikan laporan keuangan auditan tahunan"},
		{Symbol: "DDDD.JK", SuspensionDate: "6 Januari 2025", Reason: "some reason"},
	}
	reg := Registry{"CCCC": "2025-01-10"}

	got := Reconcile(records, reg)
	require.Len(t, got, 2)

	// Registry match overrides both fields.
	assert.Equal(t, LongSuspensionReason, got[0].Reason)
	assert.Equal(t, "2025-01-10", got[0].SuspensionDate)

	// Untouched record passes through.
	assert.Equal(t, "some reason", got[1].Reason)
	assert.Equal(t, "6 Januari 2025", got[1].SuspensionDate)
}

func TestReconcile_EmptyRegistry(t *testing.T) {
	records := []suspension.Record{{Symbol: "AAAA.JK", SuspensionDate: "x", Reason: "y"}}

	got := Reconcile(records, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].SuspensionDate)
	assert.Equal(t, "y", got[0].Reason)
}
