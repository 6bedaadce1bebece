package tempex

import "github.com/teranos/tempex/scatex"

// granularity ordering, finest first, for combining children.
var granularityRank = map[scatex.Granularity]int{
	scatex.GranularityTime:   0,
	scatex.GranularitySecond: 1,
	scatex.GranularityMinute: 2,
	scatex.GranularityHour:   3,
	scatex.GranularityDay:    4,
	scatex.GranularityWeek:   5,
	scatex.GranularityMonth:  6,
	scatex.GranularityYear:   7,
	scatex.GranularityDecade: 8,
}

// GranularityOf labels an expression with its coarse precision. Wrapper
// nodes take their child's label; set nodes take the finest among their
// children, since an intersection of a day and a time of day resolves
// at clock precision.
func GranularityOf(expr scatex.Expression) scatex.Granularity {
	switch v := expr.(type) {
	case scatex.Now, scatex.Instant:
		return scatex.GranularityTime
	case scatex.Second:
		return scatex.GranularitySecond
	case scatex.Minute:
		return scatex.GranularityMinute
	case scatex.Hour, scatex.TimeOfDay:
		return scatex.GranularityHour
	case scatex.Day, scatex.Today, scatex.Yesterday, scatex.Tomorrow, scatex.DayOfWeek, scatex.Span, scatex.Between, scatex.RepeatingIntersection:
		return scatex.GranularityDay
	case scatex.Month, scatex.MonthOfYear, scatex.Quarter:
		return scatex.GranularityMonth
	case scatex.Year:
		return scatex.GranularityYear
	case scatex.Decade, scatex.Century:
		return scatex.GranularityDecade

	case scatex.Repeating:
		return unitGranularity(v.Unit)
	case scatex.This:
		return GranularityOf(v.Interval)
	case scatex.Last:
		return GranularityOf(v.Interval)
	case scatex.Next:
		return GranularityOf(v.Interval)
	case scatex.Shift:
		return GranularityOf(v.Interval)
	case scatex.Before:
		return GranularityOf(v.Interval)
	case scatex.After:
		return GranularityOf(v.Interval)
	case scatex.ModifiedInterval:
		return GranularityOf(v.Interval)
	case scatex.Approximate:
		return GranularityOf(v.Interval)
	case scatex.Union:
		return finest(v.Intervals)
	case scatex.Intersection:
		return finest(v.Intervals)
	}
	return scatex.GranularityDay
}

func unitGranularity(u scatex.Unit) scatex.Granularity {
	switch u {
	case scatex.UnitSecond:
		return scatex.GranularitySecond
	case scatex.UnitMinute:
		return scatex.GranularityMinute
	case scatex.UnitHour:
		return scatex.GranularityHour
	case scatex.UnitWeek:
		return scatex.GranularityWeek
	case scatex.UnitMonth, scatex.UnitQuarter:
		return scatex.GranularityMonth
	case scatex.UnitYear:
		return scatex.GranularityYear
	case scatex.UnitDecade, scatex.UnitCentury:
		return scatex.GranularityDecade
	}
	return scatex.GranularityDay
}

func finest(exprs []scatex.Expression) scatex.Granularity {
	result := scatex.GranularityDecade
	for _, e := range exprs {
		g := GranularityOf(e)
		if granularityRank[g] < granularityRank[result] {
			result = g
		}
	}
	return result
}
