package id

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorMonotonicWithinMillisecond(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(func() time.Time { return fixed })

	prev := ""
	for i := 0; i < 100; i++ {
		s, ts, err := g.New()
		require.NoError(t, err)
		assert.True(t, ts.Equal(fixed))
		assert.Greater(t, s, prev)
		prev = s
	}
}

func TestGeneratorEncodesTime(t *testing.T) {
	t.Parallel()

	when := time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	g := NewGenerator(func() time.Time { return when })

	s, _, err := g.New()
	require.NoError(t, err)

	parsed, err := ulid.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, when.UnixMilli(), int64(parsed.Time()))
}
