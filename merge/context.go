package merge

import (
	"regexp"
	"strconv"

	"github.com/teranos/tempex/scatex"
	"github.com/teranos/tempex/signal"
)

var bareNumberRe = regexp.MustCompile(`^\s*(\d{1,2})(?:st|nd|rd|th)?\s*$`)

// rangeExpr parses both endpoints of a range pair and propagates
// calendar context between them before assembling the Between node.
// Endpoints of different kinds never form a range: "October" cannot
// close against "2023". Reversed ranges are kept as-authored.
func (e *Engine) rangeExpr(a, b signal.Span) (scatex.Expression, bool) {
	left, err := e.sub(a.Text, 0)
	if err != nil {
		return nil, false
	}

	right := e.reinterpretBareNumber(left, b.Text)
	if right == nil {
		right, err = e.sub(b.Text, 0)
		if err != nil {
			return nil, false
		}
	}

	left, right = propagateContext(left, right)
	if !scatex.RangeCompatible(left, right) {
		return nil, false
	}
	return scatex.Between{StartInterval: left, EndInterval: right}, true
}

// reinterpretBareNumber turns a bare numeric closing endpoint into a day
// under the opening endpoint's month: "October 6 - 7" ends on the 7th of
// October, not in July. Only the raw text can tell a bare number from a
// parsed month, so this runs before the normal sub-parse.
func (e *Engine) reinterpretBareNumber(left scatex.Expression, rightText string) scatex.Expression {
	m := bareNumberRe.FindStringSubmatch(rightText)
	if m == nil {
		return nil
	}
	n, _ := strconv.Atoi(m[1])
	if n < 1 || n > 31 {
		return nil
	}
	month, year, ok := monthContext(left)
	if !ok {
		return nil
	}
	return scatex.Day{Day: n, Month: month, Year: year}
}

// monthContext extracts the month (and year, when known) an endpoint
// can lend to its partner.
func monthContext(expr scatex.Expression) (month, year *int, ok bool) {
	switch v := expr.(type) {
	case scatex.Day:
		if v.Month == nil {
			return nil, nil, false
		}
		return v.Month, v.Year, true
	case scatex.Month:
		return scatex.Int(v.Month), v.Year, true
	}
	return nil, nil, false
}

// propagateContext shares calendar context between range endpoints:
// the opening endpoint's month flows forward into a month-less closing
// day, and a year known on either side is adopted by the other.
func propagateContext(left, right scatex.Expression) (scatex.Expression, scatex.Expression) {
	if ld, ok := left.(scatex.Day); ok {
		if rd, ok := right.(scatex.Day); ok && rd.Month == nil && ld.Month != nil {
			rd.Month = ld.Month
			right = rd
		}
	}

	if ly, ok := yearOf(left); ok {
		right = adoptYear(right, ly)
	}
	if ry, ok := yearOf(right); ok {
		left = adoptYear(left, ry)
	}
	return left, right
}

func yearOf(expr scatex.Expression) (int, bool) {
	switch v := expr.(type) {
	case scatex.Day:
		if v.Year != nil {
			return *v.Year, true
		}
	case scatex.Month:
		if v.Year != nil {
			return *v.Year, true
		}
	case scatex.Year:
		return v.Digits, true
	}
	return 0, false
}

// adoptYear fills a missing year on day and month nodes; nodes that
// already carry one are left alone.
func adoptYear(expr scatex.Expression, year int) scatex.Expression {
	switch v := expr.(type) {
	case scatex.Day:
		if v.Year == nil {
			v.Year = scatex.Int(year)
			return v
		}
	case scatex.Month:
		if v.Year == nil {
			v.Year = scatex.Int(year)
			return v
		}
	}
	return expr
}
