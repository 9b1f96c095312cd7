package julian

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCalendarDate(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		expected time.Time
	}{
		{"epoch", 0, Epoch},
		{"one day", 1, time.Date(1950, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"half day", 0.5, time.Date(1950, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"before epoch", -1.5, time.Date(1949, 12, 30, 12, 0, 0, 0, time.UTC)},
		{"argo era", 27028, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ToCalendarDate(tt.offset)
			require.True(t, d.Valid)
			assert.True(t, tt.expected.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestToCalendarDate_UnknownInputs(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e12, -1e12} {
		d := ToCalendarDate(v)
		assert.False(t, d.Valid, "offset %v must be unknown", v)
		assert.True(t, d.Time.IsZero(), "unknown date must not carry a timestamp")
	}

	assert.False(t, FromNullable(nil).Valid)
}

func TestRoundTrip(t *testing.T) {
	offsets := []float64{0, 1, -1, 0.25, 18262.75, 25567.123456, 27029.999, -3650.5, 1e6 + 0.125}

	for _, x := range offsets {
		d := ToCalendarDate(x)
		require.True(t, d.Valid)
		assert.InDelta(t, x, ToDayOffset(d.Time), 1e-9, "offset %v", x)
	}
}

func TestToDayOffset_NonUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	local := time.Date(1950, 1, 1, 3, 0, 0, 0, loc)

	assert.InDelta(t, 0.0, ToDayOffset(local), 1e-12)
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(ToCalendarDate(0.5))
	require.NoError(t, err)
	assert.Equal(t, `"1950-01-01T12:00:00.000Z"`, string(data))

	data, err = json.Marshal(ToCalendarDate(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01T00:00:00Z"`), &d))
	assert.True(t, d.Valid)
	assert.InDelta(t, 27028.0, ToDayOffset(d.Time), 1e-9)

	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.False(t, d.Valid)
}
