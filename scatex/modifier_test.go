package scatex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Thirds partition: early/mid/late of the same interval are contiguous,
// non-overlapping, equal width, and together reconstruct the base span.
func TestModifiedIntervalThirdsPartition(t *testing.T) {
	morning := TimeOfDay{Kind: Morning}

	early := ModifiedInterval{Interval: morning, Position: PositionEarly}.Evaluate(anchor)
	mid := ModifiedInterval{Interval: morning, Position: PositionMid}.Evaluate(anchor)
	late := ModifiedInterval{Interval: morning, Position: PositionLate}.Evaluate(anchor)
	base := morning.Evaluate(anchor)

	require.True(t, early.Bounded())
	require.True(t, mid.Bounded())
	require.True(t, late.Bounded())

	assert.Equal(t, *base.Start, *early.Start)
	assert.Equal(t, *early.End, *mid.Start)
	assert.Equal(t, *mid.End, *late.Start)
	assert.Equal(t, *base.End, *late.End)

	// Integer nanosecond division leaves the remainder on the late
	// third, so widths match only within a few nanoseconds.
	third := base.Duration() / 3
	assert.Equal(t, third, early.Duration())
	assert.Equal(t, third, mid.Duration())
	assert.InDelta(t, float64(third), float64(late.Duration()), 3)
}

func TestModifiedIntervalEarlyMorningHours(t *testing.T) {
	early := ModifiedInterval{Interval: TimeOfDay{Kind: Morning}, Position: PositionEarly}.Evaluate(anchor)
	require.True(t, early.Bounded())
	assert.Equal(t, 6, early.Start.Hour())
	// Morning is 06:00-11:59:59; a third is just under two hours.
	assert.Equal(t, 7, early.End.Hour())
}

func TestModifiedIntervalLateMonth(t *testing.T) {
	late := ModifiedInterval{
		Interval: Month{Month: 10, Year: Int(2023)},
		Position: PositionLate,
	}.Evaluate(anchor)
	require.True(t, late.Bounded())
	assert.GreaterOrEqual(t, late.Start.Day(), 20)
	assert.Equal(t, 31, late.End.Day())
}

func TestModifiedIntervalOpenBase(t *testing.T) {
	expr := ModifiedInterval{Interval: Month{Month: 10}, Position: PositionEarly}
	assert.True(t, expr.Evaluate(anchor).IsOpen())
}

// Approximate symmetry with an explicit calendar margin:
// circa 1990 with a five-year margin spans 1985 through 1995 exactly.
func TestApproximateYearMargin(t *testing.T) {
	margin := Period{Unit: UnitYear, Value: 5}
	iv := Approximate{Interval: Year{Digits: 1990}, Margin: &margin}.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC), *iv.Start)
	assert.Equal(t, time.Date(1995, 12, 31, 23, 59, 59, 0, time.UTC), *iv.End)
}

func TestApproximateHourMargin(t *testing.T) {
	margin := Period{Unit: UnitHour, Value: 1}
	sixPM := Hour{Hour: 18, Day: Int(7), Month: Int(10), Year: Int(2023)}
	iv := Approximate{Interval: sixPM, Margin: &margin}.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 17, iv.Start.Hour())
	assert.Equal(t, 19, iv.End.Hour())
}

func TestApproximateDefaultMargin(t *testing.T) {
	day := Day{Day: 15, Month: Int(10), Year: Int(2023)}
	iv := Approximate{Interval: day}.Evaluate(anchor)
	require.True(t, iv.Bounded())

	base := day.Evaluate(anchor)
	assert.True(t, iv.Start.Before(*base.Start))
	assert.True(t, iv.End.After(*base.End))
	// 10% of a day is over the one-hour floor.
	assert.Equal(t, base.Duration()/10, base.Start.Sub(*iv.Start))
}

func TestApproximateDefaultMarginFloor(t *testing.T) {
	// For an instant, the default margin bottoms out at one hour.
	at := time.Date(2023, 10, 7, 12, 0, 0, 0, time.UTC)
	iv := Approximate{Interval: Instant{At: at}}.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 2*time.Hour, iv.Duration())
}

func TestApproximateOpenBase(t *testing.T) {
	assert.True(t, Approximate{Interval: Day{Day: 7}}.Evaluate(anchor).IsOpen())
}
