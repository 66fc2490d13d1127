package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	ct, err := ParseClockTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, ct.Hour())
	assert.Equal(t, 30, ct.Minute())
	assert.Equal(t, "09:30", ct.String())

	_, err = ParseClockTime("24:00")
	assert.Error(t, err)

	_, err = ParseClockTime("not-a-time")
	assert.Error(t, err)
}

func TestClockTimeOrdering(t *testing.T) {
	nine := NewClockTime(9, 0)
	ten := NewClockTime(10, 0)

	assert.True(t, nine.Before(ten))
	assert.True(t, ten.After(nine))
	assert.False(t, nine.Before(nine))
	assert.False(t, nine.After(nine))
}

func TestClockTimeJSON(t *testing.T) {
	ct := NewClockTime(14, 5)
	data, err := ct.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"14:05"`, string(data))

	var parsed ClockTime
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, ct, parsed)
}
