package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 14, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("13:40")
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:40"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString, "single-digit hour is not in HH:MM format")
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.True(t, TimeString("10:40").IsAfter("09:00"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
	assert.False(t, TimeString("08:00").IsAfter("08:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	_, err = TimeString("23:30").AddMinutes(90)
	assert.ErrorIs(t, err, ErrInvalidTimeString, "crossing midnight is rejected")
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("13:40:00")))
	assert.Equal(t, TimeString("13:40"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 14, 15, 20, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("15:20"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidScanValue)
}
