package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("accepts HH:MM", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("accepts HH:MM:SS and drops seconds", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30:00")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("accepts end of day sentinel", func(t *testing.T) {
		ts, err := NewTimeStringFromString("24:00")
		require.NoError(t, err)
		assert.Equal(t, "24:00", ts.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:99")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := NewTimeStringFromString("")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	t.Run("IsBefore", func(t *testing.T) {
		assert.True(t, TimeString("09:00").IsBefore("10:00"))
		assert.False(t, TimeString("10:00").IsBefore("10:00"))
		assert.False(t, TimeString("11:00").IsBefore("10:00"))
	})

	t.Run("IsAfter", func(t *testing.T) {
		assert.True(t, TimeString("11:00").IsAfter("10:00"))
		assert.False(t, TimeString("10:00").IsAfter("10:00"))
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, TimeString("10:00").Equal("10:00"))
		assert.False(t, TimeString("10:00").Equal("10:01"))
	})

	t.Run("24:00 is after any time of day", func(t *testing.T) {
		assert.True(t, TimeString("24:00").IsAfter("23:59"))
		assert.True(t, TimeString("23:59").IsBefore("24:00"))
	})

	t.Run("invalid values are never before", func(t *testing.T) {
		assert.False(t, TimeString("bogus").IsBefore("10:00"))
		assert.False(t, TimeString("10:00").IsBefore("bogus"))
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("adds within a day", func(t *testing.T) {
		got, err := TimeString("10:00").AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:00"), got)
	})

	t.Run("crosses an hour boundary", func(t *testing.T) {
		got, err := TimeString("10:30").AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:15"), got)
	})

	t.Run("reaches exactly 24:00", func(t *testing.T) {
		got, err := TimeString("23:00").AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, TimeString("24:00"), got)
	})

	t.Run("rejects result past midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("rejects negative result", func(t *testing.T) {
		_, err := TimeString("00:30").AddMinutes(-60)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	instant, err := TimeString("14:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 17, 14, 30, 0, 0, time.UTC), instant)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("scans postgres TIME string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("scans byte slice", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:15:00")))
		assert.Equal(t, TimeString("09:15"), ts)
	})

	t.Run("scans time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("08:45"), ts)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		v, err := TimeString("10:00").Value()
		require.NoError(t, err)
		assert.Equal(t, "10:00", v)
	})

	t.Run("invalid time", func(t *testing.T) {
		_, err := TimeString("nope").Value()
		assert.Error(t, err)
	})
}
