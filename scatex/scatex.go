// Package scatex implements an executable temporal expression algebra.
//
// Every expression kind resolves against an anchor instant to a concrete
// interval via Evaluate. Partial information is first-class: a node that
// lacks calendar context (for example a Day with no year) evaluates to the
// open interval rather than failing or defaulting. Evaluation is pure —
// no clock reads, no mutation — so a tree may be evaluated repeatedly
// against different anchors.
package scatex

import (
	"fmt"
	"time"
)

// Interval is the result of evaluating a temporal expression. Either bound
// may be nil: a nil Start means unbounded past, a nil End unbounded future,
// and both nil means the expression could not be resolved.
type Interval struct {
	Start *time.Time
	End   *time.Time
}

// Open is the fully unknown interval.
func Open() Interval {
	return Interval{}
}

// IsOpen reports whether both bounds are unknown.
func (iv Interval) IsOpen() bool {
	return iv.Start == nil && iv.End == nil
}

// Bounded reports whether both bounds are known.
func (iv Interval) Bounded() bool {
	return iv.Start != nil && iv.End != nil
}

// Duration returns the interval length, or zero when either bound is open.
func (iv Interval) Duration() time.Duration {
	if !iv.Bounded() {
		return 0
	}
	return iv.End.Sub(*iv.Start)
}

// Contains reports whether t falls inside the interval, treating open
// bounds as unbounded.
func (iv Interval) Contains(t time.Time) bool {
	if iv.Start != nil && t.Before(*iv.Start) {
		return false
	}
	if iv.End != nil && t.After(*iv.End) {
		return false
	}
	return iv.Start != nil || iv.End != nil
}

func (iv Interval) String() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "..."
		}
		return t.Format("2006-01-02T15:04:05")
	}
	return fmt.Sprintf("%s / %s", format(iv.Start), format(iv.End))
}

// NewInterval builds an Interval from concrete bounds.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: &start, End: &end}
}

// Expression is a temporal expression node. The set of implementations in
// this package is closed: every node kind embeds the unexported marker so
// call sites that switch on concrete kinds stay exhaustive.
type Expression interface {
	// Evaluate resolves the expression relative to the anchor instant.
	Evaluate(anchor time.Time) Interval
	fmt.Stringer

	isExpression()
}

// RepeatingExpression is an expression describing an infinite family of
// instances (every Monday, mornings, the 15th of each month).
type RepeatingExpression interface {
	Expression

	// Instance returns the offset-th occurrence relative to the anchor.
	// Offset 0 is the containing/current instance, negative offsets are
	// past occurrences, positive offsets future ones.
	Instance(anchor time.Time, offset int) Interval
}

// Unit is a temporal unit for repeating patterns and periods.
type Unit int

const (
	UnitNone Unit = iota
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
	UnitDecade
	UnitCentury
)

var unitNames = map[Unit]string{
	UnitNone:    "NONE",
	UnitSecond:  "SECOND",
	UnitMinute:  "MINUTE",
	UnitHour:    "HOUR",
	UnitDay:     "DAY",
	UnitWeek:    "WEEK",
	UnitMonth:   "MONTH",
	UnitQuarter: "QUARTER",
	UnitYear:    "YEAR",
	UnitDecade:  "DECADE",
	UnitCentury: "CENTURY",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Direction orients a Shift relative to its base interval.
type Direction int

const (
	DirectionBefore Direction = iota
	DirectionAfter
)

func (d Direction) String() string {
	if d == DirectionAfter {
		return "AFTER"
	}
	return "BEFORE"
}

// Period is a duration expressed as unit and count. It is not an
// Expression: a period has length but no anchor point. Calendar units are
// approximated as fixed spans, matching how the shift arithmetic treats
// them.
type Period struct {
	Unit  Unit
	Value int
}

// Duration converts the period to a time.Duration.
func (p Period) Duration() time.Duration {
	day := 24 * time.Hour
	switch p.Unit {
	case UnitSecond:
		return time.Duration(p.Value) * time.Second
	case UnitMinute:
		return time.Duration(p.Value) * time.Minute
	case UnitHour:
		return time.Duration(p.Value) * time.Hour
	case UnitDay:
		return time.Duration(p.Value) * day
	case UnitWeek:
		return time.Duration(p.Value) * 7 * day
	case UnitMonth:
		return time.Duration(p.Value) * 30 * day
	case UnitQuarter:
		return time.Duration(p.Value) * 91 * day
	case UnitYear:
		return time.Duration(p.Value) * 365 * day
	case UnitDecade:
		return time.Duration(p.Value) * 3650 * day
	case UnitCentury:
		return time.Duration(p.Value) * 36500 * day
	}
	return 0
}

func (p Period) String() string {
	return fmt.Sprintf("Period(unit=%s, value=%d)", p.Unit, p.Value)
}

// Granularity is a coarse precision tag attached to parse results,
// independent of the expression tree itself.
type Granularity string

const (
	GranularityTime   Granularity = "time"
	GranularitySecond Granularity = "second"
	GranularityMinute Granularity = "minute"
	GranularityHour   Granularity = "hour"
	GranularityDay    Granularity = "day"
	GranularityWeek   Granularity = "week"
	GranularityMonth  Granularity = "month"
	GranularityYear   Granularity = "year"
	GranularityDecade Granularity = "decade"
)

// Int returns a pointer to v, for populating optional calendar fields.
func Int(v int) *int {
	return &v
}

// Time returns a pointer to t.
func Time(t time.Time) *time.Time {
	return &t
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// lastDayOfMonth computes the true last day for a year/month pair,
// honoring leap years.
func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isoWeekday maps time.Weekday to Monday=0..Sunday=6 numbering.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

func fmtOptInt(parts []string, name string, v *int) []string {
	if v == nil {
		return parts
	}
	return append(parts, fmt.Sprintf("%s=%d", name, *v))
}
