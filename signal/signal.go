// Package signal defines the input records the merge engine consumes:
// temporal spans and temporal signals detected by external tooling.
// Offsets are character positions into the analyzed text; this package
// performs no detection itself.
package signal

import "fmt"

// Relation classifies what a signal says about the time it attaches to.
// The vocabulary follows TimeML-style ordering relations.
type Relation string

const (
	RelationBefore            Relation = "before"
	RelationImmediatelyBefore Relation = "immediately_before"
	RelationAfter             Relation = "after"
	RelationImmediatelyAfter  Relation = "immediately_after"
	RelationBeginning         Relation = "beginning"
	RelationEnding            Relation = "ending"
	RelationSimultaneous      Relation = "simultaneous"
	RelationDuration          Relation = "duration"
	RelationFrequency         Relation = "frequency"
	RelationSequence          Relation = "sequence"
	RelationAnaphoric         Relation = "anaphoric"
)

// beginningRelations are the relation kinds that open an interval and
// merge to After(span).
var beginningRelations = map[Relation]bool{
	RelationBeginning:        true,
	RelationAfter:            true,
	RelationImmediatelyAfter: true,
}

// beforeRelations close an interval and merge to Before(span).
var beforeRelations = map[Relation]bool{
	RelationBefore:            true,
	RelationEnding:            true,
	RelationImmediatelyBefore: true,
}

// OpensInterval reports whether the relation is a beginning kind.
func (r Relation) OpensInterval() bool {
	return beginningRelations[r]
}

// ClosesInterval reports whether the relation is a before/ending kind.
func (r Relation) ClosesInterval() bool {
	return beforeRelations[r]
}

// Span is an externally detected substring denoting a concrete date or
// time, with character offsets into the source text.
type Span struct {
	Text  string
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("Span(%q, %d-%d)", s.Text, s.Start, s.End)
}

// Signal is an externally detected discourse marker ("since", "between",
// "the day before") carrying a pre-classified relation. Anaphoric signals
// need antecedent context they cannot supply themselves and are never
// merged.
type Signal struct {
	Text        string
	Start       int
	End         int
	Relation    Relation
	IsAnaphoric bool
}

func (s Signal) String() string {
	return fmt.Sprintf("Signal(%q, %d-%d, %s)", s.Text, s.Start, s.End, s.Relation)
}
