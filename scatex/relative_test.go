package scatex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThisEvaluate(t *testing.T) {
	thisWeek := This{Interval: Repeating{Unit: UnitWeek}}
	iv := thisWeek.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 2, iv.Start.Day())

	// This with a shift re-anchors inside the base interval.
	aprilInNinetyEight := This{
		Interval: Year{Digits: 1998},
		Shift:    Repeating{Unit: UnitMonth, Range: UnitYear, Value: Int(4)},
	}
	shifted := aprilInNinetyEight.Evaluate(anchor)
	require.True(t, shifted.Bounded())
	assert.Equal(t, 1998, shifted.Start.Year())
	assert.Equal(t, time.April, shifted.Start.Month())
}

func TestLastAndNext(t *testing.T) {
	lastWeek := Last{Interval: Repeating{Unit: UnitWeek}}
	iv := lastWeek.Evaluate(anchor)
	assert.Equal(t, 25, iv.Start.Day())

	nextMonth := Next{Interval: Repeating{Unit: UnitMonth}}
	iv = nextMonth.Evaluate(anchor)
	assert.Equal(t, time.November, iv.Start.Month())

	// Count defaults to 1; explicit counts reach further.
	threeWeeksBack := Last{Interval: Repeating{Unit: UnitWeek}, Count: 3}
	iv = threeWeeksBack.Evaluate(anchor)
	assert.Equal(t, time.September, iv.Start.Month())
	assert.Equal(t, 11, iv.Start.Day())
}

func TestLastOnUnevaluableBase(t *testing.T) {
	expr := Last{Interval: Day{Day: 7}} // no month/year context
	assert.True(t, expr.Evaluate(anchor).IsOpen())
}

func TestShiftEvaluate(t *testing.T) {
	threeDaysAgo := Shift{
		Interval:  Today{},
		Period:    Period{Unit: UnitDay, Value: 3},
		Direction: DirectionBefore,
	}
	iv := threeDaysAgo.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 4, iv.Start.Day())
	assert.Equal(t, 4, iv.End.Day())

	inTwoWeeks := Shift{
		Interval:  Today{},
		Period:    Period{Unit: UnitWeek, Value: 2},
		Direction: DirectionAfter,
	}
	iv = inTwoWeeks.Evaluate(anchor)
	assert.Equal(t, 21, iv.Start.Day())
}

func TestShiftPropagatesOpen(t *testing.T) {
	expr := Shift{
		Interval:  Month{Month: 10}, // no year
		Period:    Period{Unit: UnitDay, Value: 1},
		Direction: DirectionAfter,
	}
	assert.True(t, expr.Evaluate(anchor).IsOpen())
}

func TestPeriodDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, Period{Unit: UnitSecond, Value: 90}.Duration())
	assert.Equal(t, 48*time.Hour, Period{Unit: UnitDay, Value: 2}.Duration())
	assert.Equal(t, 14*24*time.Hour, Period{Unit: UnitWeek, Value: 2}.Duration())
	assert.Equal(t, time.Duration(0), Period{}.Duration())
}
