package tempex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tempex/errors"
	"github.com/teranos/tempex/scatex"
	"github.com/teranos/tempex/signal"
)

// Saturday.
var anchor = time.Date(2023, 10, 7, 12, 0, 0, 0, time.UTC)

func TestParseEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, errors.ErrEmptyExpression, "%q", text)
	}
}

func TestParseNoMatch(t *testing.T) {
	_, err := Parse("the quarterly report")
	assert.True(t, errors.IsNoMatch(err))

	_, ok := TryParse("the quarterly report")
	assert.False(t, ok)
}

func TestParseBaseExpression(t *testing.T) {
	r, err := Parse("October 7, 2023")
	require.NoError(t, err)
	assert.Empty(t, r.Rule)
	assert.Equal(t, scatex.GranularityDay, r.Granularity)

	iv := r.Expression.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 7, iv.Start.Day())
}

func TestParseCompositeExpression(t *testing.T) {
	r, err := Parse("between 2020 and 2023")
	require.NoError(t, err)
	assert.Equal(t, "between_and", r.Rule)
	assert.Equal(t, scatex.GranularityDay, r.Granularity)

	iv := r.Expression.Evaluate(anchor)
	require.True(t, iv.Bounded())
	assert.Equal(t, 2020, iv.Start.Year())
	assert.Equal(t, 2023, iv.End.Year())
}

func TestParseIsAnchorPure(t *testing.T) {
	r, err := Parse("3 days ago")
	require.NoError(t, err)

	a := r.Expression.Evaluate(anchor)
	b := r.Expression.Evaluate(anchor.AddDate(0, 0, 10))
	require.NotNil(t, a.Start)
	require.NotNil(t, b.Start)
	assert.Equal(t, 4, a.Start.Day())
	assert.Equal(t, 14, b.Start.Day())
}

func TestGranularityLabels(t *testing.T) {
	tests := []struct {
		text string
		want scatex.Granularity
	}{
		{"now", scatex.GranularityTime},
		{"14:30", scatex.GranularityMinute},
		{"6 PM", scatex.GranularityHour},
		{"early morning", scatex.GranularityHour},
		{"today", scatex.GranularityDay},
		{"next Monday", scatex.GranularityDay},
		{"this week", scatex.GranularityWeek},
		{"October 2023", scatex.GranularityMonth},
		{"circa 1990", scatex.GranularityYear},
		{"the 1990s", scatex.GranularityDecade},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Granularity)
		})
	}
}

func TestMergeThroughDispatcher(t *testing.T) {
	text := "since October 7, 2023"
	spans := []signal.Span{{Text: "October 7, 2023", Start: 6, End: 21}}
	signals := []signal.Signal{{Text: "since", Start: 0, End: 5, Relation: signal.RelationBeginning}}

	result := Merge(text, spans, signals)
	require.Len(t, result.Composites, 1)

	iv := result.Composites[0].Expression.Evaluate(anchor)
	require.NotNil(t, iv.Start)
	assert.Nil(t, iv.End)
}

func TestDeepNestingBounded(t *testing.T) {
	_, err := Parse("around around around around 2020")
	assert.True(t, errors.IsNoMatch(err))
}

func TestConfiguredDepth(t *testing.T) {
	p := New(nil)
	r, err := p.Parse("around around around 2020")
	require.NoError(t, err)
	assert.Equal(t, "approximate", r.Rule)
	assert.NotNil(t, r.Expression)
}
