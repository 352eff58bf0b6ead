package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(hour, minute int) time.Time {
	return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "полное пересечение",
			aStart: ts(10, 0), aEnd: ts(11, 0),
			bStart: ts(10, 0), bEnd: ts(11, 0),
			expected: true,
		},
		{
			name:   "частичное пересечение",
			aStart: ts(10, 0), aEnd: ts(11, 0),
			bStart: ts(10, 30), bEnd: ts(11, 30),
			expected: true,
		},
		{
			name:   "один внутри другого",
			aStart: ts(9, 0), aEnd: ts(12, 0),
			bStart: ts(10, 0), bEnd: ts(10, 30),
			expected: true,
		},
		{
			name:   "встык: конец одного равен началу другого",
			aStart: ts(10, 0), aEnd: ts(11, 0),
			bStart: ts(11, 0), bEnd: ts(12, 0),
			expected: false,
		},
		{
			name:   "встык в обратном порядке",
			aStart: ts(11, 0), aEnd: ts(12, 0),
			bStart: ts(10, 0), bEnd: ts(11, 0),
			expected: false,
		},
		{
			name:   "нет пересечения",
			aStart: ts(9, 0), aEnd: ts(10, 0),
			bStart: ts(14, 0), bEnd: ts(15, 0),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestOverlaps_DifferentTimezones(t *testing.T) {
	// 10:00 UTC == 13:00 MSK: интервалы заданы в разных зонах, но совпадают
	msk := time.FixedZone("MSK", 3*60*60)

	aStart := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	aEnd := time.Date(2025, 6, 16, 11, 0, 0, 0, time.UTC)
	bStart := time.Date(2025, 6, 16, 13, 0, 0, 0, msk)
	bEnd := time.Date(2025, 6, 16, 14, 0, 0, 0, msk)

	assert.True(t, Overlaps(aStart, aEnd, bStart, bEnd))

	// Те же зоны, но интервалы встык
	bStart = time.Date(2025, 6, 16, 14, 0, 0, 0, msk)
	bEnd = time.Date(2025, 6, 16, 15, 0, 0, 0, msk)
	assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
}

func TestOverlapsTime(t *testing.T) {
	mk := func(s string) TimeString {
		v, err := NewTimeStringFromString(s)
		require.NoError(t, err)
		return v
	}

	assert.True(t, OverlapsTime(mk("10:00"), mk("11:00"), mk("10:30"), mk("11:30")))
	assert.False(t, OverlapsTime(mk("10:00"), mk("11:00"), mk("11:00"), mk("12:00")))
}
