package base

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tempex/scatex"
)

// Saturday.
var anchor = time.Date(2023, 10, 7, 12, 0, 0, 0, time.UTC)

func TestParseAbsoluteDates(t *testing.T) {
	tests := []struct {
		text string
		want scatex.Expression
	}{
		{"October 7, 2023", scatex.Day{Day: 7, Month: scatex.Int(10), Year: scatex.Int(2023)}},
		{"october 7 2023", scatex.Day{Day: 7, Month: scatex.Int(10), Year: scatex.Int(2023)}},
		{"7 October 2023", scatex.Day{Day: 7, Month: scatex.Int(10), Year: scatex.Int(2023)}},
		{"7th of October, 2023", scatex.Day{Day: 7, Month: scatex.Int(10), Year: scatex.Int(2023)}},
		{"October 7", scatex.Day{Day: 7, Month: scatex.Int(10)}},
		{"October 7th", scatex.Day{Day: 7, Month: scatex.Int(10)}},
		{"October 2023", scatex.Month{Month: 10, Year: scatex.Int(2023)}},
		{"October", scatex.Month{Month: 10}},
		{"sept 11", scatex.Day{Day: 11, Month: scatex.Int(9)}},
		{"2023-10-07", scatex.Day{Day: 7, Month: scatex.Int(10), Year: scatex.Int(2023)}},
		{"10/7/2023", scatex.Day{Day: 7, Month: scatex.Int(10), Year: scatex.Int(2023)}},
		{"10/2023", scatex.Month{Month: 10, Year: scatex.Int(2023)}},
		{"2023", scatex.Year{Digits: 2023}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Parse(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseISODatetime(t *testing.T) {
	got, ok := Parse("2023-10-07T15:04:05")
	require.True(t, ok)
	inst, ok := got.(scatex.Instant)
	require.True(t, ok)
	assert.Equal(t, 15, inst.At.Hour())
	assert.Equal(t, 7, inst.At.Day())
}

func TestParseClockTimes(t *testing.T) {
	tests := []struct {
		text string
		want scatex.Expression
	}{
		{"6 PM", scatex.Hour{Hour: 18}},
		{"6pm", scatex.Hour{Hour: 18}},
		{"6 a.m.", scatex.Hour{Hour: 6}},
		{"12 PM", scatex.Hour{Hour: 12}},
		{"12 AM", scatex.Hour{Hour: 0}},
		{"6:30 PM", scatex.Minute{Minute: 30, Hour: scatex.Int(18)}},
		{"14:30", scatex.Minute{Minute: 30, Hour: scatex.Int(14)}},
		{"14:30:15", scatex.Second{Second: 15, Minute: scatex.Int(30), Hour: scatex.Int(14)}},
		{"noon", scatex.TimeOfDay{Kind: scatex.Noon}},
		{"midnight", scatex.TimeOfDay{Kind: scatex.Midnight}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Parse(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBareClockIsPartial(t *testing.T) {
	got, ok := Parse("6 PM")
	require.True(t, ok)
	assert.True(t, got.Evaluate(anchor).IsOpen())
}

func TestParseDeictic(t *testing.T) {
	for text, want := range map[string]scatex.Expression{
		"now":       scatex.Now{},
		"today":     scatex.Today{},
		"Yesterday": scatex.Yesterday{},
		"tomorrow":  scatex.Tomorrow{},
	} {
		got, ok := Parse(text)
		require.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}
}

func TestDayBeforeYesterday(t *testing.T) {
	got, ok := Parse("the day before yesterday")
	require.True(t, ok)
	iv := got.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 5, iv.Start.Day())

	got, ok = Parse("the day after tomorrow")
	require.True(t, ok)
	iv = got.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 9, iv.Start.Day())
}

func TestParseRelativeShift(t *testing.T) {
	got, ok := Parse("3 days ago")
	require.True(t, ok)
	iv := got.Evaluate(anchor)
	require.NotNil(t, iv.Start)
	assert.Equal(t, 4, iv.Start.Day())

	got, ok = Parse("in two weeks")
	require.True(t, ok)
	iv = got.Evaluate(anchor)
	require.NotNil(t, iv.Start)
	assert.Equal(t, 21, iv.Start.Day())

	got, ok = Parse("an hour ago")
	require.True(t, ok)
	iv = got.Evaluate(anchor)
	require.NotNil(t, iv.Start)
	assert.Equal(t, 11, iv.Start.Hour())
}

func TestParseLastNextThis(t *testing.T) {
	got, ok := Parse("next Monday")
	require.True(t, ok)
	iv := got.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 9, iv.Start.Day())

	got, ok = Parse("last Friday")
	require.True(t, ok)
	iv = got.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 6, iv.Start.Day())

	got, ok = Parse("this week")
	require.True(t, ok)
	iv = got.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 2, iv.Start.Day())
	assert.Equal(t, 8, iv.End.Day())

	got, ok = Parse("next year")
	require.True(t, ok)
	iv = got.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 2024, iv.Start.Year())

	got, ok = Parse("last October")
	require.True(t, ok)
	iv = got.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 2022, iv.Start.Year())
	assert.Equal(t, time.October, iv.Start.Month())
}

func TestParseBareWeekdayAndTimeOfDay(t *testing.T) {
	got, ok := Parse("Monday")
	require.True(t, ok)
	assert.Equal(t, scatex.DayOfWeek{Weekday: scatex.Monday}, got)

	got, ok = Parse("mornings")
	require.True(t, ok)
	assert.Equal(t, scatex.TimeOfDay{Kind: scatex.Morning}, got)
}

func TestParseDecadeCenturyQuarter(t *testing.T) {
	got, ok := Parse("the 1990s")
	require.True(t, ok)
	assert.Equal(t, scatex.Decade{StartYear: 1990}, got)

	got, ok = Parse("'90s")
	require.True(t, ok)
	assert.Equal(t, scatex.Decade{StartYear: 1990}, got)

	got, ok = Parse("the 20th century")
	require.True(t, ok)
	assert.Equal(t, scatex.Century{Number: 20}, got)

	got, ok = Parse("Q2 2023")
	require.True(t, ok)
	assert.Equal(t, scatex.Quarter{Quarter: 2, Year: scatex.Int(2023)}, got)

	got, ok = Parse("Q2")
	require.True(t, ok)
	assert.Equal(t, scatex.Quarter{Quarter: 2}, got)
}

func TestParseBareNumbers(t *testing.T) {
	got, ok := Parse("7")
	require.True(t, ok)
	assert.Equal(t, scatex.Month{Month: 7}, got)

	got, ok = Parse("25")
	require.True(t, ok)
	assert.Equal(t, scatex.Day{Day: 25}, got)

	_, ok = Parse("45")
	assert.False(t, ok)
}

func TestParseRejectsNonTemporal(t *testing.T) {
	for _, text := range []string{"", "   ", "going home", "banana", "the meeting"} {
		_, ok := Parse(text)
		assert.False(t, ok, "%q", text)
	}
}
