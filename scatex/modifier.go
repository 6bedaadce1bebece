package scatex

import (
	"fmt"
	"time"
)

// Position selects a third of an interval.
type Position string

const (
	PositionEarly Position = "early"
	PositionMid   Position = "mid"
	PositionLate  Position = "late"
)

// ModifiedInterval narrows an interval to its early, middle, or late
// third: "early morning" is the first third of 06:00-12:00.
type ModifiedInterval struct {
	Interval Expression
	Position Position
}

func (m ModifiedInterval) isExpression() {}

func (m ModifiedInterval) Evaluate(anchor time.Time) Interval {
	base := m.Interval.Evaluate(anchor)
	if !base.Bounded() {
		return Open()
	}

	third := base.Duration() / 3
	switch m.Position {
	case PositionEarly:
		end := base.Start.Add(third)
		return Interval{Start: base.Start, End: &end}
	case PositionMid:
		start := base.Start.Add(third)
		end := base.Start.Add(2 * third)
		return Interval{Start: &start, End: &end}
	case PositionLate:
		start := base.Start.Add(2 * third)
		return Interval{Start: &start, End: base.End}
	}
	// Unrecognized position keeps the full interval.
	return base
}

func (m ModifiedInterval) String() string {
	return fmt.Sprintf("ModifiedInterval(interval=%s, position=%q)", m.Interval, string(m.Position))
}

// Approximate widens an interval symmetrically by an explicit margin, or
// when none is given by max(10%% of duration, 1 hour).
type Approximate struct {
	Interval Expression
	Margin   *Period
}

func (a Approximate) isExpression() {}

func (a Approximate) Evaluate(anchor time.Time) Interval {
	base := a.Interval.Evaluate(anchor)
	if !base.Bounded() {
		return Open()
	}

	if a.Margin != nil {
		start := addPeriod(*base.Start, *a.Margin, -1)
		end := addPeriod(*base.End, *a.Margin, 1)
		return Interval{Start: &start, End: &end}
	}

	margin := base.Duration() / 10
	if margin < time.Hour {
		margin = time.Hour
	}
	start := base.Start.Add(-margin)
	end := base.End.Add(margin)
	return Interval{Start: &start, End: &end}
}

// addPeriod displaces t by sign*period using calendar arithmetic for day
// and coarser units, so a five-year margin on 1990 lands exactly on 1985
// rather than drifting across leap days.
func addPeriod(t time.Time, p Period, sign int) time.Time {
	n := sign * p.Value
	switch p.Unit {
	case UnitDay:
		return t.AddDate(0, 0, n)
	case UnitWeek:
		return t.AddDate(0, 0, 7*n)
	case UnitMonth:
		return t.AddDate(0, n, 0)
	case UnitQuarter:
		return t.AddDate(0, 3*n, 0)
	case UnitYear:
		return t.AddDate(n, 0, 0)
	case UnitDecade:
		return t.AddDate(10*n, 0, 0)
	case UnitCentury:
		return t.AddDate(100*n, 0, 0)
	}
	return t.Add(time.Duration(sign) * p.Duration())
}

func (a Approximate) String() string {
	if a.Margin != nil {
		return fmt.Sprintf("Approximate(interval=%s, margin=%s)", a.Interval, a.Margin)
	}
	return fmt.Sprintf("Approximate(interval=%s)", a.Interval)
}
