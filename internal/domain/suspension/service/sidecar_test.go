package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
)

func TestSidecarWriter_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "incomplete", "missing.csv")

	w, err := NewSidecarWriter(path)
	require.NoError(t, err)

	first := []suspension.Record{
		{Symbol: "AAAA.JK", DocumentURL: "https://www.idx.co.id/doc/a.pdf", Reason: "reason only"},
	}
	second := []suspension.Record{
		{Symbol: "BBBB.JK", DocumentURL: "https://www.idx.co.id/doc/b.pdf", SuspensionDate: "5 Januari 2025"},
	}

	require.NoError(t, w.Append(first))
	require.NoError(t, w.Append(second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	// Earlier rows survive later appends, and no header row is written.
	assert.Contains(t, content, "AAAA.JK")
	assert.Contains(t, content, "BBBB.JK")
	assert.NotContains(t, content, "symbol")

	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Len(t, lines, 2)
}

func TestSidecarWriter_EmptyAppendWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	w, err := NewSidecarWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(nil))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
