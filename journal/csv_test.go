package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/derivpricer/pricing"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	quotesPath := filepath.Join(dir, "quotes.csv")
	curvesPath := filepath.Join(dir, "curves.csv")

	j, err := NewCSV(quotesPath, curvesPath)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	assert.Equal(t, [][]string{quoteHeader}, readCSV(t, quotesPath))
	assert.Equal(t, [][]string{curveHeader}, readCSV(t, curvesPath))
}

func TestCSVJournalRecordQuote(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	quotesPath := filepath.Join(dir, "quotes.csv")
	curvesPath := filepath.Join(dir, "curves.csv")

	j, err := NewCSV(quotesPath, curvesPath)
	require.NoError(t, err)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, j.RecordQuote(sampleQuote("Q1", ts)))
	require.NoError(t, j.Close())

	rows := readCSV(t, quotesPath)
	require.Len(t, rows, 2)

	row := rows[1]
	require.Len(t, row, len(quoteHeader))
	assert.Equal(t, "Q1", row[0])
	assert.Equal(t, "2024-01-02T03:04:05Z", row[1])
	assert.Equal(t, "reiner-rubinstein", row[2])
	assert.Equal(t, "call", row[3])
	assert.Equal(t, "up-and-out", row[4])
	assert.Equal(t, "120", row[5])
	assert.Equal(t, "1.1760653996503296", row[11])
	assert.Equal(t, "long", row[20])
}

func TestCSVJournalRecordCurve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	quotesPath := filepath.Join(dir, "quotes.csv")
	curvesPath := filepath.Join(dir, "curves.csv")

	j, err := NewCSV(quotesPath, curvesPath)
	require.NoError(t, err)

	pts := []pricing.CurvePoint{{Spot: 50, Price: 0.5}, {Spot: 150, Price: 0}}
	require.NoError(t, j.RecordCurve("R1", pts))
	require.NoError(t, j.Close())

	assert.Equal(t, [][]string{
		curveHeader,
		{"R1", "0", "50", "0.5"},
		{"R1", "1", "150", "0"},
	}, readCSV(t, curvesPath))
}

func TestNewCSVBadPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := NewCSV(filepath.Join(dir, "missing", "quotes.csv"), filepath.Join(dir, "curves.csv"))
	assert.Error(t, err)
}
