package scatex

import (
	"fmt"
	"strings"
	"time"
)

// This resolves to the current instance of its interval relative to the
// anchor. An optional shift expression re-anchors inside the resolved
// base interval ("the 15th of this year").
type This struct {
	Interval Expression
	Shift    Expression
}

func (t This) isExpression() {}

func (t This) Evaluate(anchor time.Time) Interval {
	if t.Shift != nil {
		base := t.Interval.Evaluate(anchor)
		if base.Start == nil {
			return Open()
		}
		return t.Shift.Evaluate(*base.Start)
	}
	if rep, ok := t.Interval.(RepeatingExpression); ok {
		return rep.Instance(anchor, 0)
	}
	return t.Interval.Evaluate(anchor)
}

func (t This) String() string {
	if t.Shift != nil {
		return fmt.Sprintf("This(interval=%s, shift=%s)", t.Interval, t.Shift)
	}
	return fmt.Sprintf("This(interval=%s)", t.Interval)
}

// Last resolves to the count-th previous instance of its interval.
type Last struct {
	Interval Expression
	Shift    RepeatingExpression
	Count    int
}

func (l Last) isExpression() {}

func (l Last) count() int {
	if l.Count == 0 {
		return 1
	}
	return l.Count
}

func (l Last) Evaluate(anchor time.Time) Interval {
	if rep, ok := l.Interval.(RepeatingExpression); ok {
		return rep.Instance(anchor, -l.count())
	}
	base := l.Interval.Evaluate(anchor)
	if base.Start == nil {
		return Open()
	}
	if l.Shift != nil {
		return l.Shift.Instance(*base.Start, -l.count())
	}
	return base
}

func (l Last) String() string {
	parts := []string{fmt.Sprintf("interval=%s", l.Interval)}
	if l.Shift != nil {
		parts = append(parts, fmt.Sprintf("shift=%s", l.Shift))
	}
	if l.Count > 1 {
		parts = append(parts, fmt.Sprintf("count=%d", l.Count))
	}
	return fmt.Sprintf("Last(%s)", strings.Join(parts, ", "))
}

// Next resolves to the count-th upcoming instance of its interval.
type Next struct {
	Interval Expression
	Shift    RepeatingExpression
	Count    int
}

func (n Next) isExpression() {}

func (n Next) count() int {
	if n.Count == 0 {
		return 1
	}
	return n.Count
}

func (n Next) Evaluate(anchor time.Time) Interval {
	if rep, ok := n.Interval.(RepeatingExpression); ok {
		return rep.Instance(anchor, n.count())
	}
	base := n.Interval.Evaluate(anchor)
	if base.Start == nil {
		return Open()
	}
	if n.Shift != nil {
		return n.Shift.Instance(*base.Start, n.count())
	}
	return base
}

func (n Next) String() string {
	parts := []string{fmt.Sprintf("interval=%s", n.Interval)}
	if n.Shift != nil {
		parts = append(parts, fmt.Sprintf("shift=%s", n.Shift))
	}
	if n.Count > 1 {
		parts = append(parts, fmt.Sprintf("count=%d", n.Count))
	}
	return fmt.Sprintf("Next(%s)", strings.Join(parts, ", "))
}

// Shift displaces a base interval by a period in a direction: "3 days
// ago" is today shifted back by Period{UnitDay, 3}.
type Shift struct {
	Interval  Expression
	Period    Period
	Direction Direction
}

func (s Shift) isExpression() {}

func (s Shift) Evaluate(anchor time.Time) Interval {
	base := s.Interval.Evaluate(anchor)
	if base.Start == nil {
		return Open()
	}

	delta := s.Period.Duration()
	if s.Direction == DirectionBefore {
		delta = -delta
	}

	start := base.Start.Add(delta)
	shifted := Interval{Start: &start}
	if base.End != nil {
		end := base.End.Add(delta)
		shifted.End = &end
	}
	return shifted
}

func (s Shift) String() string {
	return fmt.Sprintf("Shift(interval=%s, period=%s, direction=%s)", s.Interval, s.Period, s.Direction)
}
