// Package timeutil converts between "HH:MM" clock strings and minute-of-day
// integers, and normalizes numeric weekday indexes.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agendahub/agendahub/internal/domain"
)

const minutesPerDay = 24 * 60

var weekdays = [7]domain.Weekday{
	domain.WeekdaySunday,
	domain.WeekdayMonday,
	domain.WeekdayTuesday,
	domain.WeekdayWednesday,
	domain.WeekdayThursday,
	domain.WeekdayFriday,
	domain.WeekdaySaturday,
}

// StringToMinutes parses an "HH:MM" string into minutes since midnight.
// Format validation happens upstream; malformed components count as zero.
func StringToMinutes(s string) int {
	hh, mm, _ := strings.Cut(s, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	return hours*60 + minutes
}

// MinutesToString is the zero-padded inverse of StringToMinutes, wrapping on
// the 1440-minute day.
func MinutesToString(total int) string {
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// NormalizeWeekday maps a numeric index (0=sunday .. 6=saturday) onto the
// weekday enum. Out-of-range indexes report ok=false.
func NormalizeWeekday(n int) (domain.Weekday, bool) {
	if n < 0 || n > 6 {
		return "", false
	}
	return weekdays[n], true
}

// WeekdayIndex is the inverse lookup; -1 for an unknown weekday.
func WeekdayIndex(day domain.Weekday) int {
	for i, d := range weekdays {
		if d == day {
			return i
		}
	}
	return -1
}
