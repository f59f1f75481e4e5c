package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrUnknownWeekday is returned for a label that is not a weekday name
var ErrUnknownWeekday = errors.New("unknown weekday")

// weekdayByLabel is the single label → day-number table of the service.
// Numbering follows time.Weekday: 0 = Sunday ... 6 = Saturday.
var weekdayByLabel = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

var weekdayLabels = [...]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// ParseWeekday maps a short or full English weekday label (any case) to a weekday
func ParseWeekday(label string) (time.Weekday, error) {
	day, ok := weekdayByLabel[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, label)
	}
	return day, nil
}

// ParseWeekdays maps every label; the first unknown label fails the whole set
func ParseWeekdays(labels []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(labels))
	for _, label := range labels {
		day, err := ParseWeekday(label)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// WeekdayLabel returns the short label of a weekday
func WeekdayLabel(day time.Weekday) string {
	if !IsValidWeekday(day) {
		return ""
	}
	return weekdayLabels[day]
}

// WeekdayNumber returns the wire number of a weekday
func WeekdayNumber(day time.Weekday) int {
	return int(day)
}

// IsValidWeekday reports whether day is within Sunday..Saturday
func IsValidWeekday(day time.Weekday) bool {
	return day >= time.Sunday && day <= time.Saturday
}

// WeekdayNumbers returns the sorted, de-duplicated wire numbers of days
func WeekdayNumbers(days []time.Weekday) []int {
	seen := make(map[int]struct{}, len(days))
	numbers := make([]int, 0, len(days))
	for _, day := range days {
		n := WeekdayNumber(day)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}
