package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("валидное время", func(t *testing.T) {
		v, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", v.String())
	})

	t.Run("некорректный формат", func(t *testing.T) {
		_, err := NewTimeStringFromString("9:30:15:00")
		assert.Error(t, err)

		_, err = NewTimeStringFromString("25:00")
		assert.Error(t, err)
	})
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	tests := []struct {
		value    string
		expected int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:30", 1410},
		{"24:00", 1440}, // конец суток
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := TimeString(tt.value)
			minutes, err := v.MinutesFromMidnight()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("внутри суток", func(t *testing.T) {
		v := TimeString("10:00")
		result, err := v.AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, "11:30", result.String())
	})

	t.Run("ровно до конца суток", func(t *testing.T) {
		v := TimeString("23:30")
		result, err := v.AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, "24:00", result.String())
	})

	t.Run("за границей суток", func(t *testing.T) {
		v := TimeString("23:30")
		_, err := v.AddMinutes(60)
		assert.Error(t, err)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("17:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(TimeString("09:00")))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	v := TimeString("14:30")
	result, err := v.OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 14, 30, 0, 0, time.UTC), result)

	// Конец суток - полночь следующего дня
	end := TimeString("24:00")
	result, err = end.OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), result)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("HH:MM:SS из базы", func(t *testing.T) {
		var v TimeString
		require.NoError(t, v.Scan("09:30:00"))
		assert.Equal(t, "09:30", v.String())
	})

	t.Run("байты", func(t *testing.T) {
		var v TimeString
		require.NoError(t, v.Scan([]byte("18:00")))
		assert.Equal(t, "18:00", v.String())
	})
}
