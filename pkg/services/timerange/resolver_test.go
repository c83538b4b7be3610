package timerange

import (
	"testing"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Presets(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    Query
		expected domain.TimeRange
	}{
		{
			name:     "default preset is 30d",
			query:    Query{},
			expected: domain.TimeRange{Start: now.AddDate(0, 0, -30), End: now},
		},
		{
			name:     "7d",
			query:    Query{Preset: "7d"},
			expected: domain.TimeRange{Start: now.AddDate(0, 0, -7), End: now},
		},
		{
			name:     "90d",
			query:    Query{Preset: "90d"},
			expected: domain.TimeRange{Start: now.AddDate(0, 0, -90), End: now},
		},
		{
			name:  "ytd starts at January 1st",
			query: Query{Preset: "ytd"},
			expected: domain.TimeRange{
				Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   now,
			},
		},
		{
			name:  "month covers the whole current month",
			query: Query{Preset: "month"},
			expected: domain.TimeRange{
				Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := Resolve(tt.query, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rng)
		})
	}
}

func TestResolve_ExplicitDates(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("explicit pair takes precedence over preset", func(t *testing.T) {
		rng, err := Resolve(Query{
			Preset:    "7d",
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
		}, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), rng.End)
	})

	t.Run("start date alone falls back to the preset", func(t *testing.T) {
		rng, err := Resolve(Query{StartDate: "2024-03-01"}, now)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -30), rng.Start)
		assert.Equal(t, now, rng.End)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := Resolve(Query{StartDate: "2024-04-01", EndDate: "2024-03-01"}, now)
		assert.ErrorIs(t, err, ErrInvertedRange)
	})

	t.Run("malformed start date", func(t *testing.T) {
		_, err := Resolve(Query{StartDate: "01-03-2024", EndDate: "2024-03-31"}, now)
		assert.ErrorContains(t, err, "invalid startDate")
	})

	t.Run("malformed end date", func(t *testing.T) {
		_, err := Resolve(Query{StartDate: "2024-03-01", EndDate: "yesterday"}, now)
		assert.ErrorContains(t, err, "invalid endDate")
	})
}

func TestResolve_UnknownPreset(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	_, err := Resolve(Query{Preset: "14d"}, now)
	assert.ErrorContains(t, err, "unknown range preset")
}
