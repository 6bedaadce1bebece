package scatex

import (
	"fmt"
	"strings"
	"time"
)

// Now is the anchor instant itself.
type Now struct{}

func (Now) isExpression() {}

func (Now) Evaluate(anchor time.Time) Interval {
	return Interval{Start: &anchor, End: &anchor}
}

func (Now) String() string { return "Now()" }

// Today is the day containing the anchor.
type Today struct{}

func (Today) isExpression() {}

func (Today) Evaluate(anchor time.Time) Interval {
	start := startOfDay(anchor)
	end := endOfDay(anchor)
	return Interval{Start: &start, End: &end}
}

func (Today) String() string { return "Today()" }

// Yesterday is the day before the anchor's day.
type Yesterday struct{}

func (Yesterday) isExpression() {}

func (Yesterday) Evaluate(anchor time.Time) Interval {
	target := anchor.AddDate(0, 0, -1)
	start := startOfDay(target)
	end := endOfDay(target)
	return Interval{Start: &start, End: &end}
}

func (Yesterday) String() string { return "Yesterday()" }

// Tomorrow is the day after the anchor's day.
type Tomorrow struct{}

func (Tomorrow) isExpression() {}

func (Tomorrow) Evaluate(anchor time.Time) Interval {
	target := anchor.AddDate(0, 0, 1)
	start := startOfDay(target)
	end := endOfDay(target)
	return Interval{Start: &start, End: &end}
}

func (Tomorrow) String() string { return "Tomorrow()" }

// Decade is a ten-year span named by its first year (1990 for "the
// 1990s").
type Decade struct {
	StartYear int
}

func (d Decade) isExpression() {}

func (d Decade) Evaluate(anchor time.Time) Interval {
	start := time.Date(d.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(d.StartYear+9, time.December, 31, 23, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (d Decade) String() string {
	return fmt.Sprintf("Decade(start_year=%d)", d.StartYear)
}

// Century is a hundred-year span named by ordinal (20 for the 20th
// century, 1900-1999).
type Century struct {
	Number int
}

func (c Century) isExpression() {}

func (c Century) Evaluate(anchor time.Time) Interval {
	startYear := (c.Number - 1) * 100
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+99, time.December, 31, 23, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (c Century) String() string {
	return fmt.Sprintf("Century(number=%d)", c.Number)
}

// Quarter is a calendar quarter (1-4). Year is optional; without it the
// node evaluates open.
type Quarter struct {
	Quarter int
	Year    *int
}

func (q Quarter) isExpression() {}

func (q Quarter) Evaluate(anchor time.Time) Interval {
	if q.Year == nil {
		return Open()
	}
	startMonth := (q.Quarter-1)*3 + 1
	endMonth := startMonth + 2
	start := time.Date(*q.Year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(*q.Year, time.Month(endMonth), lastDayOfMonth(*q.Year, endMonth), 23, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (q Quarter) String() string {
	parts := []string{fmt.Sprintf("quarter=%d", q.Quarter)}
	parts = fmtOptInt(parts, "year", q.Year)
	return fmt.Sprintf("Quarter(%s)", strings.Join(parts, ", "))
}

// Unknown is an unresolvable expression. It always evaluates open and
// carries a diagnostic reason.
type Unknown struct {
	Reason string
}

func (u Unknown) isExpression() {}

func (u Unknown) Evaluate(anchor time.Time) Interval {
	return Open()
}

func (u Unknown) String() string {
	if u.Reason != "" {
		return fmt.Sprintf("Unknown(reason=%q)", u.Reason)
	}
	return "Unknown()"
}
