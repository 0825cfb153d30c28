package domain

import (
	"errors"
	"sort"
	"time"
)

// ErrInvertedInterval is returned when an interval ends before it starts
var ErrInvertedInterval = errors.New("domain: interval ends before it starts")

// DayKey is a date-only calendar day in YYYY-MM-DD form.
// Time-of-day and timezone components are dropped on construction, so keys
// derived from upstream ISO-8601 timestamps compare equal to keys derived
// from calendar-picker dates.
type DayKey string

// NewDayKey builds a day key from a timestamp, dropping the time-of-day
func NewDayKey(t time.Time) DayKey {
	return DayKey(t.Format(DateFormat))
}

// Time converts the key back to a UTC midnight timestamp
func (k DayKey) Time() time.Time {
	t, _ := time.Parse(DateFormat, string(k))
	return t
}

// DateInterval is an inclusive booking interval at day granularity.
// Invariant: From <= To (date-only). Immutable once created.
type DateInterval struct {
	From time.Time
	To   time.Time
}

// NewDateInterval builds an interval, rejecting inverted ranges.
// A single-day interval (From == To) is valid.
func NewDateInterval(from, to time.Time) (DateInterval, error) {
	if truncateToDay(to).Before(truncateToDay(from)) {
		return DateInterval{}, ErrInvertedInterval
	}
	return DateInterval{From: from, To: to}, nil
}

// Days expands the interval into its constituent calendar days, inclusive
// of both endpoints. From == To yields exactly one day.
func (i DateInterval) Days() []DayKey {
	from := truncateToDay(i.From)
	to := truncateToDay(i.To)

	if to.Before(from) {
		return nil
	}

	days := make([]DayKey, 0, int(to.Sub(from)/(24*time.Hour))+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, NewDayKey(d))
	}

	return days
}

// BlockedDays is the set of calendar days already covered by existing
// bookings. Rebuilt from a venue's booking list; extended only by additive
// Merge after a confirmed successful booking.
type BlockedDays map[DayKey]struct{}

// NewBlockedDays returns an empty blocked-day set
func NewBlockedDays() BlockedDays {
	return make(BlockedDays)
}

// ExpandIntervals turns a list of booking intervals into the concrete set of
// blocked days. Overlapping intervals collapse naturally via set semantics.
// Pure: no I/O, same input always yields the same output.
func ExpandIntervals(intervals []DateInterval) BlockedDays {
	blocked := NewBlockedDays()
	for _, interval := range intervals {
		blocked.Merge(interval)
	}
	return blocked
}

// Merge adds every day of the interval to the set
func (b BlockedDays) Merge(interval DateInterval) {
	for _, day := range interval.Days() {
		b[day] = struct{}{}
	}
}

// Union adds every day of another set
func (b BlockedDays) Union(other BlockedDays) {
	for day := range other {
		b[day] = struct{}{}
	}
}

// Contains reports whether the day of t is blocked
func (b BlockedDays) Contains(t time.Time) bool {
	_, ok := b[NewDayKey(t)]
	return ok
}

// Days returns the blocked days in ascending order
func (b BlockedDays) Days() []DayKey {
	days := make([]DayKey, 0, len(b))
	for day := range b {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// IsRangeAvailable decides whether the candidate range [start, end] can be
// booked against the blocked set:
//   - false if start is strictly before today (no past bookings),
//   - false if end < start,
//   - false if any day of [start, end] inclusive is blocked.
//
// Both ends are evaluated inclusively: a stay checking in on the day another
// booking checks out is a conflict. Day granularity, not time granularity.
func IsRangeAvailable(blocked BlockedDays, start, end, today time.Time) bool {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	if startDay.Before(truncateToDay(today)) {
		return false
	}

	if endDay.Before(startDay) {
		return false
	}

	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		if blocked.Contains(d) {
			return false
		}
	}

	return true
}

// truncateToDay drops the time-of-day, keeping only the calendar date
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
