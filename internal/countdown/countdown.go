// Package countdown turns a listing's end time and the wall clock into the remaining-time
// values every display surface renders. All functions are pure.
package countdown

import (
	"fmt"
	"strings"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

// Countdown is remaining time split into whole units
type Countdown struct {
	Days     int64 `json:"days"`
	Hours    int64 `json:"hours"`
	Minutes  int64 `json:"minutes"`
	Seconds  int64 `json:"seconds"`
	IsEnded  bool  `json:"is_ended"`
	IsUrgent bool  `json:"is_urgent"`
}

// Timing bundles every derived time value of a listing at one instant
type Timing struct {
	Countdown
	RemainingMs int64  `json:"remaining_ms"`
	Compact     string `json:"compact"`
	EndsIn      string `json:"ends_in"`
}

// Remaining is max(0, endTime-now) at millisecond precision
func Remaining(endTime, now time.Time) time.Duration {
	d := endTime.Sub(now).Truncate(time.Millisecond)
	if d < 0 {
		return 0
	}
	return d
}

// IsExpired reports whether the auction is over by time alone.
// It agrees with Remaining, so less than a millisecond left counts as ended.
func IsExpired(endTime, now time.Time) bool {
	return Remaining(endTime, now) == 0
}

// Decompose splits remaining into days, hours, minutes and seconds using floor division.
// Urgent means strictly less than one hour left and not ended.
func Decompose(remaining time.Duration) Countdown {
	ms := remaining.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return Countdown{
		Days:     ms / day.Milliseconds(),
		Hours:    ms % day.Milliseconds() / time.Hour.Milliseconds(),
		Minutes:  ms % time.Hour.Milliseconds() / time.Minute.Milliseconds(),
		Seconds:  ms % time.Minute.Milliseconds() / time.Second.Milliseconds(),
		IsEnded:  ms == 0,
		IsUrgent: ms > 0 && ms < time.Hour.Milliseconds(),
	}
}

// FormatCompact renders "ENDED", "2d 05:30" or "02:15:30"
func FormatCompact(remaining time.Duration) string {
	c := Decompose(remaining)
	if c.IsEnded {
		return "ENDED"
	}
	if c.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d", c.Days, c.Hours, c.Minutes)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// FormatEndTime renders a human countdown such as "2d 5h 30m", or "Ended".
// Less than a minute left renders as "" since no component qualifies.
func FormatEndTime(endTime, now time.Time) string {
	remaining := Remaining(endTime, now)
	if remaining == 0 {
		return "Ended"
	}
	c := Decompose(remaining)

	parts := make([]string, 0, 3)
	if c.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", c.Days))
	}
	if c.Hours > 0 || c.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", c.Hours))
	}
	if c.Minutes > 0 || (c.Hours > 0 && c.Days == 0) {
		parts = append(parts, fmt.Sprintf("%dm", c.Minutes))
	}
	return strings.Join(parts, " ")
}

// FormatRelativeTime renders how long ago past was, e.g. "3h ago".
// Weeks are 7 days and months 30 days.
func FormatRelativeTime(past, now time.Time) string {
	diff := now.Sub(past)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", diff/time.Minute)
	case diff < day:
		return fmt.Sprintf("%dh ago", diff/time.Hour)
	case diff < week:
		return fmt.Sprintf("%dd ago", diff/day)
	case diff < 4*week:
		return fmt.Sprintf("%dw ago", diff/week)
	default:
		return fmt.Sprintf("%dmo ago", diff/month)
	}
}

// Snapshot computes every derived value for endTime at now
func Snapshot(endTime, now time.Time) Timing {
	remaining := Remaining(endTime, now)
	return Timing{
		Countdown:   Decompose(remaining),
		RemainingMs: remaining.Milliseconds(),
		Compact:     FormatCompact(remaining),
		EndsIn:      FormatEndTime(endTime, now),
	}
}
