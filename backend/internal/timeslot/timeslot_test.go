package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  int
		expectErr bool
	}{
		{name: "Midnight", input: "00:00", expected: 0},
		{name: "SingleDigitHour", input: "9:05", expected: 545},
		{name: "Morning", input: "09:00", expected: 540},
		{name: "LastMinute", input: "23:59", expected: 1439},
		{name: "HourTooLarge", input: "24:00", expectErr: true},
		{name: "MinuteTooLarge", input: "10:60", expectErr: true},
		{name: "MissingMinutes", input: "10", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
		{name: "Garbage", input: "ten:30", expectErr: true},
		{name: "TrailingJunk", input: "10:30pm", expectErr: true},
		{name: "NegativeHour", input: "-1:30", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClock(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{name: "Disjoint", a: Interval{540, 600}, b: Interval{660, 720}, expected: false},
		{name: "BackToBack", a: Interval{540, 630}, b: Interval{630, 660}, expected: false},
		{name: "PartialOverlap", a: Interval{540, 630}, b: Interval{600, 645}, expected: true},
		{name: "Contained", a: Interval{540, 720}, b: Interval{600, 630}, expected: true},
		{name: "Identical", a: Interval{540, 630}, b: Interval{540, 630}, expected: true},
		{name: "TouchingOtherEnd", a: Interval{630, 660}, b: Interval{540, 630}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.a, tc.b))
			// symmetry must hold for every pair
			assert.Equal(t, Overlaps(tc.a, tc.b), Overlaps(tc.b, tc.a))
		})
	}
}

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, Interval{540, 630}, iv)

	// inverted windows parse fine; ordering is a separate rule
	iv, err = ParseInterval("11:00", "10:00")
	require.NoError(t, err)
	assert.Equal(t, Interval{660, 600}, iv)

	_, err = ParseInterval("09:00", "25:00")
	assert.Error(t, err)
	_, err = ParseInterval("bad", "10:00")
	assert.Error(t, err)
}
