package scatex

import (
	"fmt"
	"strings"
	"time"
)

// Weekday numbers days Monday=0 through Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// TimeOfDayKind names a fixed clock-hour period of the day.
type TimeOfDayKind int

const (
	Dawn TimeOfDayKind = iota
	Morning
	Noon
	Afternoon
	Evening
	Night
	Midnight
)

// timeOfDayHours maps each named period to its half-open [start, end) hour
// range. An end of 24 means through the final second of the day.
var timeOfDayHours = map[TimeOfDayKind][2]int{
	Dawn:      {5, 6},
	Morning:   {6, 12},
	Noon:      {12, 13},
	Afternoon: {12, 18},
	Evening:   {18, 21},
	Night:     {21, 24},
	Midnight:  {0, 1},
}

var timeOfDayNames = map[TimeOfDayKind]string{
	Dawn:      "DAWN",
	Morning:   "MORNING",
	Noon:      "NOON",
	Afternoon: "AFTERNOON",
	Evening:   "EVENING",
	Night:     "NIGHT",
	Midnight:  "MIDNIGHT",
}

func (k TimeOfDayKind) String() string {
	if name, ok := timeOfDayNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TimeOfDayKind(%d)", int(k))
}

// Hours returns the clock-hour range for the period.
func (k TimeOfDayKind) Hours() (start, end int) {
	hours := timeOfDayHours[k]
	return hours[0], hours[1]
}

// Repeating is a generic repeating interval pattern: a unit, an optional
// containing range, and an optional value within that range. Examples:
// Repeating{Unit: UnitDay, Range: UnitMonth, Value: Int(15)} is "the 15th
// of each month"; Repeating{Unit: UnitMonth, Range: UnitYear, Value:
// Int(4)} is "April of each year".
type Repeating struct {
	Unit  Unit
	Range Unit
	Value *int
}

func (r Repeating) isExpression() {}

func (r Repeating) Instance(anchor time.Time, offset int) Interval {
	switch r.Unit {
	case UnitYear:
		year := anchor.Year() + offset
		if r.Value != nil {
			year = *r.Value + offset
		}
		return Year{Digits: year}.Evaluate(anchor)

	case UnitMonth:
		if r.Value != nil && r.Range == UnitYear {
			// Specific month of year, offset in years.
			return Month{Month: *r.Value, Year: Int(anchor.Year() + offset)}.Evaluate(anchor)
		}
		year, month := addMonths(anchor.Year(), int(anchor.Month()), offset)
		return Month{Month: month, Year: Int(year)}.Evaluate(anchor)

	case UnitWeek:
		target := anchor.AddDate(0, 0, offset*7)
		start := startOfDay(target.AddDate(0, 0, -isoWeekday(target)))
		end := start.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		return Interval{Start: &start, End: &end}

	case UnitDay:
		switch {
		case r.Value != nil && r.Range == UnitMonth:
			year, month := addMonths(anchor.Year(), int(anchor.Month()), offset)
			day := *r.Value
			if last := lastDayOfMonth(year, month); day > last {
				day = last
			}
			return Day{Day: day, Month: Int(month), Year: Int(year)}.Evaluate(anchor)
		case r.Value != nil && r.Range == UnitWeek:
			diff := *r.Value - isoWeekday(anchor) + offset*7
			target := anchor.AddDate(0, 0, diff)
			return Day{Day: target.Day(), Month: Int(int(target.Month())), Year: Int(target.Year())}.Evaluate(anchor)
		default:
			target := anchor.AddDate(0, 0, offset)
			return Day{Day: target.Day(), Month: Int(int(target.Month())), Year: Int(target.Year())}.Evaluate(anchor)
		}

	case UnitHour:
		target := anchor.Add(time.Duration(offset) * time.Hour)
		hour := target.Hour()
		if r.Value != nil {
			hour = *r.Value
		}
		return Hour{
			Hour:  hour,
			Day:   Int(target.Day()),
			Month: Int(int(target.Month())),
			Year:  Int(target.Year()),
		}.Evaluate(anchor)
	}

	return Interval{Start: &anchor, End: &anchor}
}

// Evaluate resolves to the instance containing the anchor.
func (r Repeating) Evaluate(anchor time.Time) Interval {
	return r.Instance(anchor, 0)
}

func (r Repeating) String() string {
	parts := []string{fmt.Sprintf("unit=%s", r.Unit)}
	if r.Range != UnitNone {
		parts = append(parts, fmt.Sprintf("range=%s", r.Range))
	}
	parts = fmtOptInt(parts, "value", r.Value)
	return fmt.Sprintf("Repeating(%s)", strings.Join(parts, ", "))
}

// addMonths normalizes a year/month pair after adding an offset in months.
func addMonths(year, month, offset int) (int, int) {
	month += offset
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	return year, month
}

// DayOfWeek is a named weekday pattern ("Mondays").
type DayOfWeek struct {
	Weekday Weekday
}

func (d DayOfWeek) isExpression() {}

// Instance returns the offset-th occurrence of the weekday. Offset 0 is
// the occurrence in the week containing the anchor, which may lie before
// or after the anchor itself; offset -1/+1 are the adjacent occurrences
// outside the current week.
func (d DayOfWeek) Instance(anchor time.Time, offset int) Interval {
	diff := int(d.Weekday) - isoWeekday(anchor)
	switch {
	case offset < 0:
		if diff >= 0 {
			diff -= 7
		}
		diff += (offset + 1) * 7
	case offset > 0:
		if diff <= 0 {
			diff += 7
		}
		diff += (offset - 1) * 7
	}
	target := anchor.AddDate(0, 0, diff)
	return Day{Day: target.Day(), Month: Int(int(target.Month())), Year: Int(target.Year())}.Evaluate(anchor)
}

func (d DayOfWeek) Evaluate(anchor time.Time) Interval {
	return d.Instance(anchor, 0)
}

func (d DayOfWeek) String() string {
	return fmt.Sprintf("DayOfWeek(type=%s)", d.Weekday)
}

// MonthOfYear is a named month pattern ("Aprils").
type MonthOfYear struct {
	Month int
}

func (m MonthOfYear) isExpression() {}

func (m MonthOfYear) Instance(anchor time.Time, offset int) Interval {
	return Month{Month: m.Month, Year: Int(anchor.Year() + offset)}.Evaluate(anchor)
}

func (m MonthOfYear) Evaluate(anchor time.Time) Interval {
	return m.Instance(anchor, 0)
}

func (m MonthOfYear) String() string {
	return fmt.Sprintf("MonthOfYear(month=%d)", m.Month)
}

// TimeOfDay is a named period of the day ("mornings").
type TimeOfDay struct {
	Kind TimeOfDayKind
}

func (t TimeOfDay) isExpression() {}

func (t TimeOfDay) Instance(anchor time.Time, offset int) Interval {
	target := anchor.AddDate(0, 0, offset)
	startHour, endHour := t.Kind.Hours()

	start := time.Date(target.Year(), target.Month(), target.Day(), startHour, 0, 0, 0, target.Location())
	var end time.Time
	if endHour == 24 {
		end = endOfDay(target)
	} else {
		end = time.Date(target.Year(), target.Month(), target.Day(), endHour-1, 59, 59, 0, target.Location())
	}
	return Interval{Start: &start, End: &end}
}

func (t TimeOfDay) Evaluate(anchor time.Time) Interval {
	return t.Instance(anchor, 0)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("TimeOfDay(type=%s)", t.Kind)
}

// RepeatingIntersection combines repeating constraints into a single
// concrete instance: "April 30" is month-of-year April intersected with
// day-of-month 30.
type RepeatingIntersection struct {
	Shifts []Repeating
}

func (ri RepeatingIntersection) isExpression() {}

func (ri RepeatingIntersection) Instance(anchor time.Time, offset int) Interval {
	year := anchor.Year() + offset
	month := int(anchor.Month())
	day := anchor.Day()
	hour := 0
	minute := 0

	for _, shift := range ri.Shifts {
		switch {
		case shift.Unit == UnitMonth && shift.Range == UnitYear && shift.Value != nil:
			month = *shift.Value
		case shift.Unit == UnitDay && shift.Range == UnitMonth && shift.Value != nil:
			day = *shift.Value
		case shift.Unit == UnitDay && shift.Range == UnitWeek && shift.Value != nil:
			// Weekday constraint: first matching day of the month.
			target := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			for isoWeekday(target) != *shift.Value {
				target = target.AddDate(0, 0, 1)
			}
			day = target.Day()
		case shift.Unit == UnitHour && shift.Value != nil:
			hour = *shift.Value
		case shift.Unit == UnitMinute && shift.Value != nil:
			minute = *shift.Value
		}
	}

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	start := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), day, 23, 59, 59, 0, time.UTC)
	return Interval{Start: &start, End: &end}
}

func (ri RepeatingIntersection) Evaluate(anchor time.Time) Interval {
	return ri.Instance(anchor, 0)
}

func (ri RepeatingIntersection) String() string {
	shifts := make([]string, len(ri.Shifts))
	for i, s := range ri.Shifts {
		shifts[i] = s.String()
	}
	return fmt.Sprintf("RepeatingIntersection(shifts=[%s])", strings.Join(shifts, ", "))
}
