package scatex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionEnvelope(t *testing.T) {
	expr := Union{Intervals: []Expression{
		Day{Day: 2, Month: Int(10), Year: Int(2023)},
		Day{Day: 9, Month: Int(10), Year: Int(2023)},
	}}
	iv := expr.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 2, iv.Start.Day())
	assert.Equal(t, 9, iv.End.Day())
}

func TestUnionSkipsOpenMembers(t *testing.T) {
	expr := Union{Intervals: []Expression{
		Day{Day: 6}, // unevaluable
		Day{Day: 9, Month: Int(10), Year: Int(2023)},
	}}
	iv := expr.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 9, iv.Start.Day())
}

func TestIntersectionOverlap(t *testing.T) {
	expr := Intersection{Intervals: []Expression{
		Month{Month: 10, Year: Int(2023)},
		Span{
			From: time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
		},
	}}
	iv := expr.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), *iv.Start)
	assert.Equal(t, time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC), *iv.End)
}

func TestIntersectionEmptyOverlapIsOpen(t *testing.T) {
	expr := Intersection{Intervals: []Expression{
		Month{Month: 1, Year: Int(2023)},
		Month{Month: 6, Year: Int(2023)},
	}}
	assert.True(t, expr.Evaluate(anchor).IsOpen())
}

// "Monday morning": the weekday supplies the date, the time-of-day
// supplies only the clock portion.
func TestIntersectionFusesDayAndTimeOfDay(t *testing.T) {
	expr := Intersection{Intervals: []Expression{
		DayOfWeek{Weekday: Monday},
		TimeOfDay{Kind: Morning},
	}}
	iv := expr.Evaluate(anchor)
	require.True(t, iv.Bounded())
	// Monday of the anchor's week is October 2.
	assert.Equal(t, 2, iv.Start.Day())
	assert.Equal(t, 6, iv.Start.Hour())
	assert.Equal(t, 2, iv.End.Day())
	assert.Equal(t, 11, iv.End.Hour())
}

func TestIntersectionFusesTodayWithHourPattern(t *testing.T) {
	// "today at 9 AM" as an hour-of-day repeating pattern.
	expr := Intersection{Intervals: []Expression{
		Today{},
		Repeating{Unit: UnitHour, Range: UnitDay, Value: Int(9)},
	}}
	iv := expr.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 7, iv.Start.Day())
	assert.Equal(t, 9, iv.Start.Hour())
	assert.Equal(t, 9, iv.End.Hour())
	assert.Equal(t, 59, iv.End.Minute())
}

func TestIntersectionFusesWrappedDay(t *testing.T) {
	// Next Monday evening: a This/Last/Next wrapper around a weekday
	// still counts as the day side of the fusion.
	expr := Intersection{Intervals: []Expression{
		Next{Interval: DayOfWeek{Weekday: Monday}},
		TimeOfDay{Kind: Evening},
	}}
	iv := expr.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 9, iv.Start.Day())
	assert.Equal(t, 18, iv.Start.Hour())
	assert.Equal(t, 20, iv.End.Hour())
}

func TestIntersectionOpenDaySide(t *testing.T) {
	expr := Intersection{Intervals: []Expression{
		Day{Day: 6}, // unevaluable
		TimeOfDay{Kind: Morning},
	}}
	assert.True(t, expr.Evaluate(anchor).IsOpen())
}

func TestIntersectionEmpty(t *testing.T) {
	assert.True(t, Intersection{}.Evaluate(anchor).IsOpen())
}
