package base

import (
	"regexp"
	"strconv"
	"time"

	"github.com/teranos/tempex/scatex"
)

// isoLayouts are tried in order; the first match wins. Layouts carrying
// a clock resolve to an Instant, the date-only layout to a Day.
var isoDatetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var (
	monthFirstRe = regexp.MustCompile(`^([a-z]+)\.? (\d{1,2})(?:st|nd|rd|th)?(?:,? (\d{4}))?$`)
	dayFirstRe   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)? (?:of )?([a-z]+)\.?(?:,? (\d{4}))?$`)
	monthYearRe  = regexp.MustCompile(`^([a-z]+)\.? (\d{4})$`)
	slashDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	slashMonthRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	decadeRe     = regexp.MustCompile(`^(?:(\d{3})0s|'?(\d)0s)$`)
	centuryRe    = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th) century$`)
	quarterRe    = regexp.MustCompile(`^q([1-4])(?: (\d{4}))?$`)
	bareYearRe   = regexp.MustCompile(`^(\d{4})$`)
	bareNumberRe = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?$`)
)

func parseISO(text string) (scatex.Expression, bool) {
	for _, layout := range isoDatetimeLayouts {
		if at, err := time.Parse(layout, text); err == nil {
			return scatex.Instant{At: at.UTC()}, true
		}
	}
	if d, err := time.Parse("2006-01-02", text); err == nil {
		return scatex.Day{
			Day:   d.Day(),
			Month: scatex.Int(int(d.Month())),
			Year:  scatex.Int(d.Year()),
		}, true
	}
	return nil, false
}

// parseSlashDate reads US-order slash dates: 10/7/2023 is October 7.
func parseSlashDate(text string) (scatex.Expression, bool) {
	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		month := atoi(m[1])
		day := atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return nil, false
		}
		return scatex.Day{Day: day, Month: scatex.Int(month), Year: scatex.Int(atoi(m[3]))}, true
	}
	if m := slashMonthRe.FindStringSubmatch(text); m != nil {
		month := atoi(m[1])
		if month < 1 || month > 12 {
			return nil, false
		}
		return scatex.Month{Month: month, Year: scatex.Int(atoi(m[2]))}, true
	}
	return nil, false
}

// parseMonthNameDate reads month-name forms: "october 7, 2023",
// "7 october 2023", "october 7", "october 2023", bare "october". A form
// without a year stays partial and evaluates open until merging or a
// composite rule supplies the missing context.
func parseMonthNameDate(text string) (scatex.Expression, bool) {
	if m := monthYearRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthNames[m[1]]; ok {
			return scatex.Month{Month: month, Year: scatex.Int(atoi(m[2]))}, true
		}
	}
	if m := monthFirstRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthNames[m[1]]; ok {
			return dayNode(atoi(m[2]), month, m[3]), true
		}
	}
	if m := dayFirstRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthNames[m[2]]; ok {
			return dayNode(atoi(m[1]), month, m[3]), true
		}
	}
	if month, ok := monthNames[text]; ok {
		return scatex.Month{Month: month}, true
	}
	return nil, false
}

func dayNode(day, month int, year string) scatex.Expression {
	if day < 1 || day > 31 {
		return scatex.Unknown{Reason: "day of month out of range"}
	}
	node := scatex.Day{Day: day, Month: scatex.Int(month)}
	if year != "" {
		node.Year = scatex.Int(atoi(year))
	}
	return node
}

func parseDecade(text string) (scatex.Expression, bool) {
	m := decadeRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	if m[1] != "" {
		return scatex.Decade{StartYear: atoi(m[1]) * 10}, true
	}
	// Two-digit decades read as the 1900s: "the '90s" is 1990.
	return scatex.Decade{StartYear: 1900 + atoi(m[2])*10}, true
}

func parseCentury(text string) (scatex.Expression, bool) {
	m := centuryRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return scatex.Century{Number: atoi(m[1])}, true
}

func parseQuarter(text string) (scatex.Expression, bool) {
	m := quarterRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	q := scatex.Quarter{Quarter: atoi(m[1])}
	if m[2] != "" {
		q.Year = scatex.Int(atoi(m[2]))
	}
	return q, true
}

func parseBareYear(text string) (scatex.Expression, bool) {
	m := bareYearRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	year := atoi(m[1])
	if year < 1000 || year > 2999 {
		return nil, false
	}
	return scatex.Year{Digits: year}, true
}

// parseBareNumber reads a context-free small integer: 1 through 12 as a
// month, 13 through 31 as a day of month. Range merging reinterprets
// these once a neighboring endpoint supplies calendar context.
func parseBareNumber(text string) (scatex.Expression, bool) {
	m := bareNumberRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	n := atoi(m[1])
	switch {
	case n >= 1 && n <= 12:
		return scatex.Month{Month: n}, true
	case n >= 13 && n <= 31:
		return scatex.Day{Day: n}, true
	}
	return nil, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
