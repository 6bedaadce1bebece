package scatex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowTodayNeighbors(t *testing.T) {
	now := Now{}.Evaluate(anchor)
	assert.Equal(t, anchor, *now.Start)
	assert.Equal(t, anchor, *now.End)

	today := Today{}.Evaluate(anchor)
	assert.Equal(t, time.Date(2023, 10, 7, 0, 0, 0, 0, time.UTC), *today.Start)
	assert.Equal(t, time.Date(2023, 10, 7, 23, 59, 59, 0, time.UTC), *today.End)

	yesterday := Yesterday{}.Evaluate(anchor)
	assert.Equal(t, 6, yesterday.Start.Day())

	tomorrow := Tomorrow{}.Evaluate(anchor)
	assert.Equal(t, 8, tomorrow.Start.Day())
}

func TestDecade(t *testing.T) {
	iv := Decade{StartYear: 1990}.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 1990, iv.Start.Year())
	assert.Equal(t, 1999, iv.End.Year())
}

func TestCentury(t *testing.T) {
	iv := Century{Number: 20}.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 1900, iv.Start.Year())
	assert.Equal(t, 1999, iv.End.Year())
}

func TestQuarter(t *testing.T) {
	iv := Quarter{Quarter: 2, Year: Int(2023)}.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, time.April, iv.Start.Month())
	assert.Equal(t, time.June, iv.End.Month())
	assert.Equal(t, 30, iv.End.Day())

	assert.True(t, Quarter{Quarter: 2}.Evaluate(anchor).IsOpen())
}

func TestUnknownAlwaysOpen(t *testing.T) {
	u := Unknown{Reason: "ambiguous input"}
	assert.True(t, u.Evaluate(anchor).IsOpen())
	assert.True(t, u.Evaluate(time.Time{}).IsOpen())
}
