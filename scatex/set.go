package scatex

import (
	"fmt"
	"strings"
	"time"
)

// Union is the bounding envelope of its members: minimum start, maximum
// end, ignoring open bounds.
type Union struct {
	Intervals []Expression
}

func (u Union) isExpression() {}

func (u Union) Evaluate(anchor time.Time) Interval {
	var minStart, maxEnd *time.Time
	for _, member := range u.Intervals {
		iv := member.Evaluate(anchor)
		if iv.Start != nil && (minStart == nil || iv.Start.Before(*minStart)) {
			minStart = iv.Start
		}
		if iv.End != nil && (maxEnd == nil || iv.End.After(*maxEnd)) {
			maxEnd = iv.End
		}
	}
	return Interval{Start: minStart, End: maxEnd}
}

func (u Union) String() string {
	return fmt.Sprintf("Union(intervals=[%s])", joinExpressions(u.Intervals))
}

// Intersection is the overlap of its members: maximum start, minimum end.
// An empty overlap resolves to the open interval.
//
// Day-level and time-of-day members are fused rather than intersected:
// the day member supplies the calendar date and the time-of-day member
// supplies only the clock portion, so "Monday" ∩ "morning" is Monday
// 06:00-11:59 instead of the empty range two independent intervals would
// give.
type Intersection struct {
	Intervals []Expression
}

func (ix Intersection) isExpression() {}

func (ix Intersection) Evaluate(anchor time.Time) Interval {
	if len(ix.Intervals) == 0 {
		return Open()
	}

	var dayExprs, timeExprs, otherExprs []Expression
	for _, member := range ix.Intervals {
		switch {
		case isTimeOfDayExpr(member):
			timeExprs = append(timeExprs, member)
		case isDayLevelExpr(member):
			dayExprs = append(dayExprs, member)
		default:
			otherExprs = append(otherExprs, member)
		}
	}

	if len(dayExprs) > 0 && len(timeExprs) > 0 {
		return ix.fuseDayAndTime(anchor, dayExprs, timeExprs, otherExprs)
	}

	result := ix.Intervals[0].Evaluate(anchor)
	for _, member := range ix.Intervals[1:] {
		result = clampIntersect(result, member.Evaluate(anchor))
	}
	return validateOrdering(result)
}

// fuseDayAndTime stamps the time-of-day members' clock range onto the
// first day member's date, then intersects the remainder normally.
func (ix Intersection) fuseDayAndTime(anchor time.Time, dayExprs, timeExprs, otherExprs []Expression) Interval {
	day := dayExprs[0].Evaluate(anchor)
	if day.Start == nil {
		return Open()
	}

	result := day
	for _, te := range timeExprs {
		switch expr := te.(type) {
		case Repeating:
			// Hour-of-day pattern ("9 AM").
			hour := 0
			if expr.Value != nil {
				hour = *expr.Value
			}
			start := withClock(*result.Start, hour, 0, 0)
			result.Start = &start
			if result.End != nil {
				end := withClock(*result.End, hour, 59, 59)
				result.End = &end
			}
		case TimeOfDay:
			tod := expr.Instance(*day.Start, 0)
			if tod.Start != nil {
				start := withClock(*result.Start, tod.Start.Hour(), tod.Start.Minute(), tod.Start.Second())
				result.Start = &start
			}
			if tod.End != nil && result.End != nil {
				end := withClock(*result.End, tod.End.Hour(), tod.End.Minute(), tod.End.Second())
				result.End = &end
			}
		}
	}

	for _, de := range dayExprs[1:] {
		result = clampIntersect(result, de.Evaluate(anchor))
	}
	for _, oe := range otherExprs {
		result = clampIntersect(result, oe.Evaluate(anchor))
	}
	return validateOrdering(result)
}

func (ix Intersection) String() string {
	return fmt.Sprintf("Intersection(intervals=[%s])", joinExpressions(ix.Intervals))
}

// isDayLevelExpr reports whether an expression resolves to a whole-day
// interval: a concrete day, a weekday, today/tomorrow/yesterday, or a
// This/Last/Next wrapping one.
func isDayLevelExpr(expr Expression) bool {
	switch e := expr.(type) {
	case Today, Tomorrow, Yesterday, Day, DayOfWeek:
		return true
	case Next:
		return isDayLevelInner(e.Interval)
	case Last:
		return isDayLevelInner(e.Interval)
	case This:
		return isDayLevelInner(e.Interval)
	}
	return false
}

func isDayLevelInner(inner Expression) bool {
	switch e := inner.(type) {
	case DayOfWeek, MonthOfYear:
		return true
	case Repeating:
		return e.Unit == UnitDay || e.Unit == UnitWeek
	}
	return false
}

// isTimeOfDayExpr reports whether an expression is a clock-time pattern:
// a named time of day, or an hour-of-day repeating pattern.
func isTimeOfDayExpr(expr Expression) bool {
	switch e := expr.(type) {
	case TimeOfDay:
		return true
	case Repeating:
		return e.Unit == UnitHour && e.Range == UnitDay
	}
	return false
}

func clampIntersect(a, b Interval) Interval {
	result := a
	if b.Start != nil {
		if result.Start == nil || b.Start.After(*result.Start) {
			result.Start = b.Start
		}
	}
	if b.End != nil {
		if result.End == nil || b.End.Before(*result.End) {
			result.End = b.End
		}
	}
	return result
}

func validateOrdering(iv Interval) Interval {
	if iv.Bounded() && iv.Start.After(*iv.End) {
		return Open()
	}
	return iv
}

func withClock(t time.Time, hour, minute, second int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, second, 0, t.Location())
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
