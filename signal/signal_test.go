package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationDirections(t *testing.T) {
	opening := []Relation{RelationBeginning, RelationAfter, RelationImmediatelyAfter}
	for _, r := range opening {
		assert.True(t, r.OpensInterval(), r)
		assert.False(t, r.ClosesInterval(), r)
	}

	closing := []Relation{RelationBefore, RelationEnding, RelationImmediatelyBefore}
	for _, r := range closing {
		assert.True(t, r.ClosesInterval(), r)
		assert.False(t, r.OpensInterval(), r)
	}

	neither := []Relation{RelationSimultaneous, RelationDuration, RelationFrequency, RelationSequence, RelationAnaphoric}
	for _, r := range neither {
		assert.False(t, r.OpensInterval(), r)
		assert.False(t, r.ClosesInterval(), r)
	}
}

func TestStringReprs(t *testing.T) {
	sp := Span{Text: "October 7", Start: 6, End: 15}
	assert.Equal(t, `Span("October 7", 6-15)`, sp.String())

	sg := Signal{Text: "since", Start: 0, End: 5, Relation: RelationBeginning}
	assert.Equal(t, `Signal("since", 0-5, beginning)`, sg.String())
}
