// Package base parses simple temporal expressions: absolute dates and
// clock times, deictic words, and offset phrases ("3 days ago"). It is
// the fallback behind the composite pattern rules and the target of
// their sub-parses.
//
// Parse is pure text recognition. Nothing here reads a clock; relative
// phrases become anchor-relative expression nodes and stay reusable
// across anchors.
package base

import (
	"strings"

	"github.com/teranos/tempex/scatex"
)

// Parse recognizes a single simple temporal expression. The boolean is
// false when the text is not recognized; callers treat that as plain
// no-match control flow.
func Parse(text string) (scatex.Expression, bool) {
	text = normalize(text)
	if text == "" {
		return nil, false
	}

	parsers := []func(string) (scatex.Expression, bool){
		parseDeictic,
		parseRelativeShift,
		parseLastNextThis,
		parseWeekdayName,
		parseTimeOfDayName,
		parseClock,
		parseISO,
		parseSlashDate,
		parseMonthNameDate,
		parseDecade,
		parseCentury,
		parseQuarter,
		parseBareYear,
		parseBareNumber,
	}
	for _, p := range parsers {
		if expr, ok := p(text); ok {
			return expr, true
		}
	}
	return nil, false
}

// normalize lowercases, trims surrounding punctuation, collapses inner
// whitespace, and strips a leading article.
func normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.Trim(text, " \t\n.,;:!?")
	text = strings.Join(strings.Fields(text), " ")
	text = strings.TrimPrefix(text, "the ")
	return strings.TrimSpace(text)
}

var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var weekdayNames = map[string]scatex.Weekday{
	"monday": scatex.Monday, "mon": scatex.Monday,
	"tuesday": scatex.Tuesday, "tue": scatex.Tuesday, "tues": scatex.Tuesday,
	"wednesday": scatex.Wednesday, "wed": scatex.Wednesday,
	"thursday": scatex.Thursday, "thu": scatex.Thursday, "thurs": scatex.Thursday,
	"friday": scatex.Friday, "fri": scatex.Friday,
	"saturday": scatex.Saturday, "sat": scatex.Saturday,
	"sunday": scatex.Sunday, "sun": scatex.Sunday,
}

var timeOfDayKinds = map[string]scatex.TimeOfDayKind{
	"dawn":      scatex.Dawn,
	"morning":   scatex.Morning,
	"noon":      scatex.Noon,
	"midday":    scatex.Noon,
	"afternoon": scatex.Afternoon,
	"evening":   scatex.Evening,
	"night":     scatex.Night,
	"midnight":  scatex.Midnight,
}

// shiftUnits maps phrase words to units for "N units ago" / "in N
// units" phrases. Sub-day units shift off the anchor instant, coarser
// ones off the anchor day.
var shiftUnits = map[string]scatex.Unit{
	"second": scatex.UnitSecond, "seconds": scatex.UnitSecond,
	"minute": scatex.UnitMinute, "minutes": scatex.UnitMinute,
	"hour": scatex.UnitHour, "hours": scatex.UnitHour,
	"day": scatex.UnitDay, "days": scatex.UnitDay,
	"week": scatex.UnitWeek, "weeks": scatex.UnitWeek,
	"month": scatex.UnitMonth, "months": scatex.UnitMonth,
	"year": scatex.UnitYear, "years": scatex.UnitYear,
	"decade": scatex.UnitDecade, "decades": scatex.UnitDecade,
	"century": scatex.UnitCentury, "centuries": scatex.UnitCentury,
}

var wordNumbers = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12,
}
