package scatex

import (
	"fmt"
	"strings"
	"time"
)

// Year is a specific calendar year.
type Year struct {
	Digits int
}

func (y Year) isExpression() {}

func (y Year) Evaluate(anchor time.Time) Interval {
	start := time.Date(y.Digits, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y.Digits, time.December, 31, 23, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (y Year) String() string {
	return fmt.Sprintf("Year(digits=%d)", y.Digits)
}

// Month is a specific month. Year is optional: without it the node is a
// partial date and evaluates to the open interval.
type Month struct {
	Month int
	Year  *int
}

func (m Month) isExpression() {}

func (m Month) Evaluate(anchor time.Time) Interval {
	if m.Year == nil {
		return Open()
	}
	start := time.Date(*m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(*m.Year, time.Month(m.Month), lastDayOfMonth(*m.Year, m.Month), 23, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (m Month) String() string {
	parts := []string{fmt.Sprintf("month=%d", m.Month)}
	parts = fmtOptInt(parts, "year", m.Year)
	return fmt.Sprintf("Month(%s)", strings.Join(parts, ", "))
}

// Day is a specific day of month. Month and year are optional; both must
// be present for the node to be evaluable.
type Day struct {
	Day   int
	Month *int
	Year  *int
}

func (d Day) isExpression() {}

func (d Day) Evaluate(anchor time.Time) Interval {
	if d.Year == nil || d.Month == nil {
		return Open()
	}
	start := time.Date(*d.Year, time.Month(*d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	end := time.Date(*d.Year, time.Month(*d.Month), d.Day, 23, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (d Day) String() string {
	parts := []string{fmt.Sprintf("day=%d", d.Day)}
	parts = fmtOptInt(parts, "month", d.Month)
	parts = fmtOptInt(parts, "year", d.Year)
	return fmt.Sprintf("Day(%s)", strings.Join(parts, ", "))
}

// Hour is a specific clock hour, optionally bound to a calendar date.
type Hour struct {
	Hour  int
	Day   *int
	Month *int
	Year  *int
}

func (h Hour) isExpression() {}

func (h Hour) Evaluate(anchor time.Time) Interval {
	if h.Year == nil || h.Month == nil || h.Day == nil {
		return Open()
	}
	start := time.Date(*h.Year, time.Month(*h.Month), *h.Day, h.Hour, 0, 0, 0, time.UTC)
	end := time.Date(*h.Year, time.Month(*h.Month), *h.Day, h.Hour, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (h Hour) String() string {
	parts := []string{fmt.Sprintf("hour=%d", h.Hour)}
	parts = fmtOptInt(parts, "day", h.Day)
	parts = fmtOptInt(parts, "month", h.Month)
	parts = fmtOptInt(parts, "year", h.Year)
	return fmt.Sprintf("Hour(%s)", strings.Join(parts, ", "))
}

// Minute is a specific clock minute with optional coarser context.
type Minute struct {
	Minute int
	Hour   *int
	Day    *int
	Month  *int
	Year   *int
}

func (m Minute) isExpression() {}

func (m Minute) Evaluate(anchor time.Time) Interval {
	if m.Year == nil || m.Month == nil || m.Day == nil || m.Hour == nil {
		return Open()
	}
	start := time.Date(*m.Year, time.Month(*m.Month), *m.Day, *m.Hour, m.Minute, 0, 0, time.UTC)
	end := time.Date(*m.Year, time.Month(*m.Month), *m.Day, *m.Hour, m.Minute, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (m Minute) String() string {
	parts := []string{fmt.Sprintf("minute=%d", m.Minute)}
	parts = fmtOptInt(parts, "hour", m.Hour)
	parts = fmtOptInt(parts, "day", m.Day)
	parts = fmtOptInt(parts, "month", m.Month)
	parts = fmtOptInt(parts, "year", m.Year)
	return fmt.Sprintf("Minute(%s)", strings.Join(parts, ", "))
}

// Second is a specific instant at second precision with optional coarser
// context.
type Second struct {
	Second int
	Minute *int
	Hour   *int
	Day    *int
	Month  *int
	Year   *int
}

func (s Second) isExpression() {}

func (s Second) Evaluate(anchor time.Time) Interval {
	if s.Year == nil || s.Month == nil || s.Day == nil || s.Hour == nil || s.Minute == nil {
		return Open()
	}
	at := time.Date(*s.Year, time.Month(*s.Month), *s.Day, *s.Hour, *s.Minute, s.Second, 0, time.UTC)
	return Interval{Start: &at, End: &at}
}

func (s Second) String() string {
	parts := []string{fmt.Sprintf("second=%d", s.Second)}
	parts = fmtOptInt(parts, "minute", s.Minute)
	parts = fmtOptInt(parts, "hour", s.Hour)
	parts = fmtOptInt(parts, "day", s.Day)
	parts = fmtOptInt(parts, "month", s.Month)
	parts = fmtOptInt(parts, "year", s.Year)
	return fmt.Sprintf("Second(%s)", strings.Join(parts, ", "))
}

// Instant wraps a fully resolved point in time.
type Instant struct {
	At time.Time
}

func (i Instant) isExpression() {}

func (i Instant) Evaluate(anchor time.Time) Interval {
	return Interval{Start: &i.At, End: &i.At}
}

func (i Instant) String() string {
	return fmt.Sprintf("Instant(dt=%s)", i.At.Format(time.RFC3339))
}

// Span is an explicit literal interval.
type Span struct {
	From time.Time
	To   time.Time
}

func (s Span) isExpression() {}

func (s Span) Evaluate(anchor time.Time) Interval {
	return Interval{Start: &s.From, End: &s.To}
}

func (s Span) String() string {
	return fmt.Sprintf("Span(start=%s, end=%s)", s.From.Format(time.RFC3339), s.To.Format(time.RFC3339))
}
