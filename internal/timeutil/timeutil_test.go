package timeutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agendahub/agendahub/internal/domain"
	"github.com/agendahub/agendahub/internal/timeutil"
)

func TestStringToMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, timeutil.StringToMinutes(tc.in), tc.in)
	}
}

func TestMinutesToString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{750, "12:30"},
		{1439, "23:59"},
		{1440, "00:00"}, // wraps on day boundary
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, timeutil.MinutesToString(tc.in))
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for m := 0; m < 1440; m += 7 {
		assert.Equal(t, m, timeutil.StringToMinutes(timeutil.MinutesToString(m)))
	}
}

func TestNormalizeWeekday(t *testing.T) {
	t.Parallel()

	day, ok := timeutil.NormalizeWeekday(0)
	assert.True(t, ok)
	assert.Equal(t, domain.WeekdaySunday, day)

	day, ok = timeutil.NormalizeWeekday(6)
	assert.True(t, ok)
	assert.Equal(t, domain.WeekdaySaturday, day)

	_, ok = timeutil.NormalizeWeekday(7)
	assert.False(t, ok)

	_, ok = timeutil.NormalizeWeekday(-1)
	assert.False(t, ok)
}

func TestWeekdayIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, timeutil.WeekdayIndex(domain.WeekdayMonday))
	assert.Equal(t, 6, timeutil.WeekdayIndex(domain.WeekdaySaturday))
	assert.Equal(t, -1, timeutil.WeekdayIndex(domain.Weekday("funday")))

	for i := 0; i < 7; i++ {
		day, ok := timeutil.NormalizeWeekday(i)
		assert.True(t, ok)
		assert.Equal(t, i, timeutil.WeekdayIndex(day))
	}
}
