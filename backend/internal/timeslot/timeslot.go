// Package timeslot parses "HH:mm" wall-clock strings and decides whether two
// time windows within a day overlap. All overlap semantics of the bulletin
// rules funnel through here.
package timeslot

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockRe = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// ParseClock converts "H:mm" or "HH:mm" into minutes since midnight.
// Malformed input is rejected with an error instead of producing a
// nonsensical offset.
func ParseClock(s string) (int, error) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	if minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}
	return hour*60 + minute, nil
}

// Interval is a half-open window [Start, End) in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// ParseInterval parses both endpoints of a window. It does not require
// Start < End; callers report that as its own rule violation.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether two half-open windows intersect. A window ending
// exactly when another begins does not overlap, so back-to-back services
// never conflict. The relation is symmetric.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}
