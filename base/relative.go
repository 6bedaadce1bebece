package base

import (
	"regexp"
	"strings"

	"github.com/teranos/tempex/scatex"
)

var (
	agoRe = regexp.MustCompile(`^(\w+) (\w+) ago$`)
	inRe  = regexp.MustCompile(`^in (\w+) (\w+)$`)
	lntRe = regexp.MustCompile(`^(last|next|this) (.+)$`)
)

func parseDeictic(text string) (scatex.Expression, bool) {
	switch text {
	case "now", "right now":
		return scatex.Now{}, true
	case "today":
		return scatex.Today{}, true
	case "yesterday":
		return scatex.Yesterday{}, true
	case "tomorrow":
		return scatex.Tomorrow{}, true
	case "day before yesterday":
		return scatex.Shift{
			Interval:  scatex.Yesterday{},
			Period:    scatex.Period{Unit: scatex.UnitDay, Value: 1},
			Direction: scatex.DirectionBefore,
		}, true
	case "day after tomorrow":
		return scatex.Shift{
			Interval:  scatex.Tomorrow{},
			Period:    scatex.Period{Unit: scatex.UnitDay, Value: 1},
			Direction: scatex.DirectionAfter,
		}, true
	}
	return nil, false
}

// parseRelativeShift reads offset phrases: "3 days ago", "in two weeks",
// "an hour ago". Sub-day units displace the anchor instant, day and
// coarser units displace the anchor's day.
func parseRelativeShift(text string) (scatex.Expression, bool) {
	var countWord, unitWord string
	var direction scatex.Direction

	if m := agoRe.FindStringSubmatch(text); m != nil {
		countWord, unitWord = m[1], m[2]
		direction = scatex.DirectionBefore
	} else if m := inRe.FindStringSubmatch(text); m != nil {
		countWord, unitWord = m[1], m[2]
		direction = scatex.DirectionAfter
	} else {
		return nil, false
	}

	count, ok := parseCount(countWord)
	if !ok {
		return nil, false
	}
	unit, ok := shiftUnits[unitWord]
	if !ok {
		return nil, false
	}

	var origin scatex.Expression = scatex.Today{}
	if unit == scatex.UnitSecond || unit == scatex.UnitMinute || unit == scatex.UnitHour {
		origin = scatex.Now{}
	}
	return scatex.Shift{
		Interval:  origin,
		Period:    scatex.Period{Unit: unit, Value: count},
		Direction: direction,
	}, true
}

func parseCount(word string) (int, bool) {
	if n, ok := wordNumbers[word]; ok {
		return n, true
	}
	n := atoi(word)
	return n, n > 0
}

// parseLastNextThis reads "last Monday", "next October", "this week" and
// kin, wrapping the repeating pattern named by the remainder.
func parseLastNextThis(text string) (scatex.Expression, bool) {
	m := lntRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	rest := m[2]

	var target scatex.Expression
	switch {
	case weekdayKnown(rest):
		w, _ := lookupWeekday(rest)
		target = scatex.DayOfWeek{Weekday: w}
	case monthNames[rest] != 0:
		target = scatex.MonthOfYear{Month: monthNames[rest]}
	case rest == "week":
		target = scatex.Repeating{Unit: scatex.UnitWeek}
	case rest == "month":
		target = scatex.Repeating{Unit: scatex.UnitMonth}
	case rest == "year":
		target = scatex.Repeating{Unit: scatex.UnitYear}
	default:
		if kind, ok := timeOfDayKinds[rest]; ok {
			target = scatex.TimeOfDay{Kind: kind}
		} else {
			return nil, false
		}
	}

	switch m[1] {
	case "last":
		return scatex.Last{Interval: target}, true
	case "next":
		return scatex.Next{Interval: target}, true
	default:
		return scatex.This{Interval: target}, true
	}
}

// parseWeekdayName reads a bare weekday, singular or plural, as the
// repeating weekday pattern.
func parseWeekdayName(text string) (scatex.Expression, bool) {
	if w, ok := lookupWeekday(text); ok {
		return scatex.DayOfWeek{Weekday: w}, true
	}
	return nil, false
}

func weekdayKnown(text string) bool {
	_, ok := lookupWeekday(text)
	return ok
}

func lookupWeekday(text string) (scatex.Weekday, bool) {
	if w, ok := weekdayNames[text]; ok {
		return w, true
	}
	if w, ok := weekdayNames[strings.TrimSuffix(text, "s")]; ok {
		return w, true
	}
	return 0, false
}
