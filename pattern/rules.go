package pattern

import (
	"regexp"
	"strings"

	"github.com/teranos/tempex/scatex"
)

var positions = map[string]scatex.Position{
	"early": scatex.PositionEarly,
	"mid":   scatex.PositionMid,
	"late":  scatex.PositionLate,
}

var timeOfDayWords = map[string]scatex.TimeOfDayKind{
	"dawn":      scatex.Dawn,
	"morning":   scatex.Morning,
	"noon":      scatex.Noon,
	"midday":    scatex.Noon,
	"afternoon": scatex.Afternoon,
	"evening":   scatex.Evening,
	"night":     scatex.Night,
	"midnight":  scatex.Midnight,
}

// nonTemporalVerbs guard the bare through/to range rule: "going to the
// store" must not read as a range ending at "the store".
var nonTemporalVerbs = map[string]bool{
	"going": true, "went": true,
	"want": true, "wanted": true,
	"need": true, "needed": true,
	"have": true, "had": true,
	"get": true, "got": true,
}

func buildRules() []Rule {
	return []Rule{
		{
			Name:     "modified_time_of_day_verbose",
			Priority: 110,
			re:       regexp.MustCompile(`(?i)^(early|mid|late)\s+in\s+the\s+(\w+)(?:\s+of\s+(.+))?$`),
			handle:   handleModifiedTimeOfDayWithDate,
		},
		{
			Name:     "modified_time_of_day_compact",
			Priority: 105,
			re:       regexp.MustCompile(`(?i)^(early|mid|late)[-\s](\w+)\s+of\s+(.+)$`),
			handle:   handleModifiedTimeOfDayWithDate,
		},
		{
			Name:     "between_and",
			Priority: 100,
			re:       regexp.MustCompile(`(?i)^between\s+(.+?)\s+and\s+(.+)$`),
			handle:   handleRange,
		},
		{
			Name:     "from_to",
			Priority: 100,
			re:       regexp.MustCompile(`(?i)^from\s+(.+?)\s+(?:to|until|through|till)\s+(.+)$`),
			handle:   handleRange,
		},
		{
			Name:     "through_range",
			Priority: 98,
			re:       regexp.MustCompile(`(?i)^(.+?)\s+(?:through|thru|to)\s+(.+)$`),
			handle:   handleBareRange,
		},
		{
			Name:     "approximate",
			Priority: 95,
			re:       regexp.MustCompile(`(?i)^(?:around|approximately|about|roughly|circa|c\.)\s+(.+)$`),
			handle:   handleApproximate,
		},
		{
			Name:     "modified_time_of_day",
			Priority: 90,
			re:       regexp.MustCompile(`(?i)^(early|mid|late)[-\s](\w+?)s?$`),
			handle:   handleModifiedTimeOfDay,
		},
		{
			Name:     "modified_calendar",
			Priority: 85,
			re:       regexp.MustCompile(`(?i)^(early|mid|late)\s+(.+)$`),
			handle:   handleModifiedCalendar,
		},
		{
			Name:     "bound_after",
			Priority: 80,
			re:       regexp.MustCompile(`(?i)^(?:since|after)\s+(.+)$`),
			handle:   handleAfter,
		},
		{
			Name:     "bound_before",
			Priority: 80,
			re:       regexp.MustCompile(`(?i)^(?:until|up\s+to|through|till|before)\s+(.+)$`),
			handle:   handleBefore,
		},
		{
			Name:     "dash_range",
			Priority: 50,
			// A bare hyphen needs surrounding space so ISO dates
			// (2023-10-07) stay atomic; typographic dashes may be tight.
			re:       regexp.MustCompile(`^(.+?)(?:\s+-\s+|\s*[\x{2013}\x{2014}]\s*)(.+)$`),
			handle:   handleBareRange,
		},
	}
}

// handleModifiedTimeOfDayWithDate builds "early in the morning of
// October 7": the date operand intersected with the time-of-day period,
// narrowed to a third. Without a date operand it degrades to the
// standalone form.
func handleModifiedTimeOfDayWithDate(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	position, ok := positions[strings.ToLower(m[1])]
	if !ok {
		return nil, false
	}
	kind, ok := timeOfDayWords[strings.ToLower(m[2])]
	if !ok {
		return nil, false
	}
	tod := scatex.TimeOfDay{Kind: kind}

	if len(m) > 3 && strings.TrimSpace(m[3]) != "" {
		date, ok := p.subParse(m[3], depth)
		if !ok {
			return nil, false
		}
		return scatex.ModifiedInterval{
			Interval: scatex.Intersection{Intervals: []scatex.Expression{date, tod}},
			Position: position,
		}, true
	}
	return scatex.ModifiedInterval{Interval: tod, Position: position}, true
}

func handleModifiedTimeOfDay(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	position, ok := positions[strings.ToLower(m[1])]
	if !ok {
		return nil, false
	}
	kind, ok := timeOfDayWords[strings.ToLower(m[2])]
	if !ok {
		return nil, false
	}
	return scatex.ModifiedInterval{Interval: scatex.TimeOfDay{Kind: kind}, Position: position}, true
}

// handleModifiedCalendar builds "early October", "late 2023". Only
// month-level and year-level operands qualify; anything else declines so
// lower-priority rules get a look.
func handleModifiedCalendar(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	position, ok := positions[strings.ToLower(m[1])]
	if !ok {
		return nil, false
	}
	operand, ok := p.subParse(m[2], depth)
	if !ok {
		return nil, false
	}
	switch operand.(type) {
	case scatex.Month, scatex.MonthOfYear, scatex.Year, scatex.Decade, scatex.Century:
		return scatex.ModifiedInterval{Interval: operand, Position: position}, true
	}
	return nil, false
}

// handleRange builds explicit "between X and Y" / "from X to Y" ranges.
// Both operands must parse; reversed ranges are preserved as-authored.
func handleRange(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	start, ok := p.subParse(m[1], depth)
	if !ok {
		return nil, false
	}
	end, ok := p.subParse(m[2], depth)
	if !ok {
		return nil, false
	}
	return scatex.Between{StartInterval: start, EndInterval: end}, true
}

// handleBareRange builds connective-free ranges ("Monday through
// Friday", "9:00 - 17:00"). The left operand must not open with a
// non-temporal verb, and the operand kinds must be compatible.
func handleBareRange(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	leftText := strings.TrimSpace(m[1])
	firstWord := strings.ToLower(strings.SplitN(leftText, " ", 2)[0])
	if nonTemporalVerbs[firstWord] {
		return nil, false
	}

	start, ok := p.subParse(m[1], depth)
	if !ok {
		return nil, false
	}
	end, ok := p.subParse(m[2], depth)
	if !ok {
		return nil, false
	}
	if !scatex.RangeCompatible(start, end) {
		return nil, false
	}
	return scatex.Between{StartInterval: start, EndInterval: end}, true
}

func handleApproximate(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	operand, ok := p.subParse(m[1], depth)
	if !ok {
		return nil, false
	}
	return scatex.Approximate{Interval: operand, Margin: approximationMargin(operand)}, true
}

// approximationMargin picks the uncertainty window by operand
// granularity. A nil margin falls back to the proportional default.
func approximationMargin(expr scatex.Expression) *scatex.Period {
	var p scatex.Period
	switch expr.(type) {
	case scatex.Year:
		p = scatex.Period{Unit: scatex.UnitYear, Value: 5}
	case scatex.Month, scatex.MonthOfYear:
		p = scatex.Period{Unit: scatex.UnitWeek, Value: 2}
	case scatex.Day, scatex.Today, scatex.Yesterday, scatex.Tomorrow, scatex.DayOfWeek:
		p = scatex.Period{Unit: scatex.UnitDay, Value: 2}
	case scatex.Hour:
		p = scatex.Period{Unit: scatex.UnitHour, Value: 1}
	case scatex.Minute:
		p = scatex.Period{Unit: scatex.UnitMinute, Value: 15}
	default:
		return nil
	}
	return &p
}

func handleAfter(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	operand, ok := p.subParse(m[1], depth)
	if !ok {
		return nil, false
	}
	return scatex.After{Interval: operand}, true
}

func handleBefore(p *Parser, m []string, depth int) (scatex.Expression, bool) {
	operand, ok := p.subParse(m[1], depth)
	if !ok {
		return nil, false
	}
	return scatex.Before{Interval: operand}, true
}
