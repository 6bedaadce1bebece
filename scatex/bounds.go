package scatex

import (
	"fmt"
	"reflect"
	"time"
)

// Before is the unbounded interval ending at its reference, optionally
// displaced earlier by a period ("two weeks before the launch").
type Before struct {
	Interval Expression
	Shift    *Period
}

func (b Before) isExpression() {}

func (b Before) Evaluate(anchor time.Time) Interval {
	base := b.Interval.Evaluate(anchor)
	ref := base.Start
	if ref == nil {
		ref = base.End
	}
	if ref == nil {
		return Open()
	}

	point := *ref
	if b.Shift != nil {
		point = point.Add(-b.Shift.Duration())
	}
	return Interval{End: &point}
}

func (b Before) String() string {
	if b.Shift != nil {
		return fmt.Sprintf("Before(interval=%s, shift=%s)", b.Interval, b.Shift)
	}
	return fmt.Sprintf("Before(interval=%s)", b.Interval)
}

// After is the unbounded interval starting at its reference, optionally
// displaced later by a period.
type After struct {
	Interval Expression
	Shift    *Period
}

func (a After) isExpression() {}

func (a After) Evaluate(anchor time.Time) Interval {
	base := a.Interval.Evaluate(anchor)
	ref := base.End
	if ref == nil {
		ref = base.Start
	}
	if ref == nil {
		return Open()
	}

	point := *ref
	if a.Shift != nil {
		point = point.Add(a.Shift.Duration())
	}
	return Interval{Start: &point}
}

func (a After) String() string {
	if a.Shift != nil {
		return fmt.Sprintf("After(interval=%s, shift=%s)", a.Interval, a.Shift)
	}
	return fmt.Sprintf("After(interval=%s)", a.Interval)
}

// Between takes the start bound of one expression and the end bound of
// another. The two children need not be the same kind, only each able to
// supply its bound. Ranges authored in reverse chronological order are
// preserved as-is, never swapped.
type Between struct {
	StartInterval Expression
	EndInterval   Expression
}

func (b Between) isExpression() {}

func (b Between) Evaluate(anchor time.Time) Interval {
	start := b.StartInterval.Evaluate(anchor)
	end := b.EndInterval.Evaluate(anchor)
	return Interval{Start: start.Start, End: end.End}
}

func (b Between) String() string {
	return fmt.Sprintf("Between(start_interval=%s, end_interval=%s)", b.StartInterval, b.EndInterval)
}

// rangeKind groups kinds that may face each other across a range
// endpoint pair. Kinds outside the table pair only with their exact
// own type.
func rangeKind(expr Expression) string {
	switch expr.(type) {
	case Year:
		return "year"
	case Month, MonthOfYear:
		return "month"
	case Day, Today, Yesterday, Tomorrow, DayOfWeek, Instant:
		return "day"
	case Hour, Minute, Second, TimeOfDay:
		return "clock"
	}
	return ""
}

// RangeCompatible reports whether two expressions can serve as the two
// endpoints of a range: a year pairs with a year, a month with a month,
// a day-level expression with a day-level one, a clock time with a
// clock time. "2020 to October" is not a range.
func RangeCompatible(a, b Expression) bool {
	ka, kb := rangeKind(a), rangeKind(b)
	if ka == "" || kb == "" {
		return reflect.TypeOf(a) == reflect.TypeOf(b)
	}
	return ka == kb
}
