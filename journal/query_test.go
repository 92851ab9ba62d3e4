package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuote(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	ts := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	want := sampleQuote("Q123", ts)
	require.NoError(t, j.RecordQuote(want))

	got, err := j.GetQuote("Q123")
	require.NoError(t, err)

	assert.True(t, got.Time.Equal(want.Time))
	got.Time = want.Time
	assert.Equal(t, want, got)
}

func TestGetQuoteNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetQuote("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListQuotesBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, q := range []QuoteRecord{
		sampleQuote("before", day.Add(-time.Minute)),
		sampleQuote("late", day.Add(23*time.Hour)),
		sampleQuote("early", day.Add(time.Hour)),
		sampleQuote("after", day.Add(24*time.Hour)),
	} {
		require.NoError(t, j.RecordQuote(q))
	}

	got, err := j.ListQuotesBetween(day, day.Add(24*time.Hour))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].RunID)
	assert.Equal(t, "late", got[1].RunID)
}

func TestListQuotesBetweenEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	got, err := j.ListQuotesBetween(time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}
