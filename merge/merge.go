// Package merge fuses externally detected temporal spans and signals
// into composite expressions. Detection happens upstream; this engine
// only reasons about positional adjacency in the source text, running a
// fixed sequence of passes and reporting what it could not consume.
package merge

import (
	"regexp"
	"sort"
	"strings"

	"github.com/teranos/tempex/conf"
	"github.com/teranos/tempex/logger"
	"github.com/teranos/tempex/scatex"
	"github.com/teranos/tempex/signal"
)

// SubParser re-enters the full parse pipeline for a span's text.
type SubParser func(text string, depth int) (scatex.Expression, error)

// CompositeSpan is a fused result: the covered text region and the
// assembled expression, tagged with the pass that produced it.
type CompositeSpan struct {
	Text       string
	Start      int
	End        int
	Expression scatex.Expression
	Pattern    string
}

// Result carries the composites plus everything left untouched, so the
// caller can still process unmerged spans individually.
type Result struct {
	Composites       []CompositeSpan
	RemainingSpans   []signal.Span
	RemainingSignals []signal.Signal
}

// Engine runs the merge passes. Construct with New.
type Engine struct {
	sub       SubParser
	gap       int
	lookahead int
}

// New builds an Engine around the sub-parse callback. Nil settings mean
// defaults.
func New(settings *conf.Settings, sub SubParser) *Engine {
	if settings == nil {
		settings = conf.Default()
	}
	return &Engine{
		sub:       sub,
		gap:       settings.Merge.AdjacencyGap,
		lookahead: settings.Merge.ConnectiveLookahead,
	}
}

var dashGapRe = regexp.MustCompile(`^\s*[-\x{2013}\x{2014}]\s*$`)

// Post-connective tolerance: the closing span may start slightly before
// the connective's recorded end (overlapping detection) or up to ten
// characters after it.
const (
	toleranceBefore = 2
	toleranceAfter  = 10
)

// Merge runs the pass sequence over the detected items. Pass order is
// fixed: dash ranges, "between X and Y", "from X to Y", then signal
// plus adjacent span. Earlier passes consume greedily; consumed items
// never participate in later passes.
func (e *Engine) Merge(text string, spans []signal.Span, signals []signal.Signal) Result {
	spans = append([]signal.Span(nil), spans...)
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	spanUsed := make([]bool, len(spans))
	signalUsed := make([]bool, len(signals))
	var composites []CompositeSpan

	composites = append(composites, e.dashPass(text, spans, spanUsed)...)
	composites = append(composites, e.connectivePass(text, spans, spanUsed, signals, signalUsed, "between", []string{"and"}, "between_and")...)
	composites = append(composites, e.connectivePass(text, spans, spanUsed, signals, signalUsed, "from", []string{"to", "until", "through", "till", "thru"}, "from_to")...)
	composites = append(composites, e.signalPass(text, spans, spanUsed, signals, signalUsed)...)

	result := Result{Composites: composites}
	for i, sp := range spans {
		if !spanUsed[i] {
			result.RemainingSpans = append(result.RemainingSpans, sp)
		}
	}
	for i, sg := range signals {
		if !signalUsed[i] {
			result.RemainingSignals = append(result.RemainingSignals, sg)
		}
	}
	return result
}

// dashPass fuses adjacent span pairs separated by nothing but a dash.
func (e *Engine) dashPass(text string, spans []signal.Span, used []bool) []CompositeSpan {
	var out []CompositeSpan
	for i := 0; i+1 < len(spans); i++ {
		if used[i] || used[i+1] {
			continue
		}
		a, b := spans[i], spans[i+1]
		if b.Start < a.End || b.Start-a.End > e.gap {
			continue
		}
		if !dashGapRe.MatchString(text[a.End:b.Start]) {
			continue
		}
		expr, ok := e.rangeExpr(a, b)
		if !ok {
			continue
		}
		out = append(out, CompositeSpan{
			Text:       text[a.Start:b.End],
			Start:      a.Start,
			End:        b.End,
			Expression: expr,
			Pattern:    "dash_range",
		})
		used[i], used[i+1] = true, true
	}
	return out
}

// connectivePass fuses "<opener> A <connective> B", driven by the
// detected opener signals: for each unused signal whose text is the
// opener word, span A must begin within the adjacency gap after the
// signal, and span B within the tolerance window after a connective
// found in the lookahead region. A successful merge consumes the
// signal along with both spans.
func (e *Engine) connectivePass(text string, spans []signal.Span, spanUsed []bool, signals []signal.Signal, signalUsed []bool, opener string, connectives []string, name string) []CompositeSpan {
	connectiveRe := regexp.MustCompile(`(?i)\b(` + strings.Join(connectives, "|") + `)\b`)

	var out []CompositeSpan
	for si := range signals {
		sg := signals[si]
		if signalUsed[si] || !strings.EqualFold(strings.TrimSpace(sg.Text), opener) {
			continue
		}

		ai := -1
		for i := range spans {
			if spanUsed[i] || spans[i].Start < sg.End {
				continue
			}
			if spans[i].Start-sg.End > e.gap {
				break
			}
			ai = i
			break
		}
		if ai < 0 {
			continue
		}
		a := spans[ai]

		windowEnd := a.End + e.lookahead
		if windowEnd > len(text) {
			windowEnd = len(text)
		}
		connectiveMatch := connectiveRe.FindStringIndex(text[a.End:windowEnd])
		if connectiveMatch == nil {
			continue
		}
		connectiveEnd := a.End + connectiveMatch[1]

		j := e.findSpanNear(spans, spanUsed, ai, connectiveEnd)
		if j < 0 {
			continue
		}
		b := spans[j]

		expr, ok := e.rangeExpr(a, b)
		if !ok {
			continue
		}
		out = append(out, CompositeSpan{
			Text:       text[sg.Start:b.End],
			Start:      sg.Start,
			End:        b.End,
			Expression: expr,
			Pattern:    name,
		})
		spanUsed[ai], spanUsed[j] = true, true
		signalUsed[si] = true
	}
	return out
}

// findSpanNear locates an unconsumed span after index i starting inside
// the tolerance window around pos.
func (e *Engine) findSpanNear(spans []signal.Span, used []bool, i, pos int) int {
	for j := i + 1; j < len(spans); j++ {
		if used[j] {
			continue
		}
		offset := spans[j].Start - pos
		if offset >= -toleranceBefore && offset <= toleranceAfter {
			return j
		}
	}
	return -1
}

// emptyConnectors are words allowed inside a signal-to-span gap without
// breaking adjacency.
var emptyConnectors = map[string]bool{
	"the": true, "a": true, "an": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
}

var gapWordRe = regexp.MustCompile(`[a-zA-Z]+`)

// signalPass fuses a signal with the single span following it. A
// beginning-kind relation opens an interval (After), a before-kind
// relation closes one (Before). Anaphoric signals need antecedent
// context the engine does not have, so they are never merged.
func (e *Engine) signalPass(text string, spans []signal.Span, spanUsed []bool, signals []signal.Signal, signalUsed []bool) []CompositeSpan {
	var out []CompositeSpan
	for si, sg := range signals {
		if signalUsed[si] || sg.IsAnaphoric {
			continue
		}
		if !sg.Relation.OpensInterval() && !sg.Relation.ClosesInterval() {
			continue
		}
		for pi, sp := range spans {
			if spanUsed[pi] || sp.Start < sg.End {
				continue
			}
			if sp.Start-sg.End > e.gap || !gapIsEmpty(text[sg.End:sp.Start]) {
				continue
			}
			expr, err := e.sub(sp.Text, 0)
			if err != nil {
				logger.Logger.Debugw("adjacent span did not parse", "span", sp.Text, "err", err)
				continue
			}
			var bound scatex.Expression
			if sg.Relation.OpensInterval() {
				bound = scatex.After{Interval: expr}
			} else {
				bound = scatex.Before{Interval: expr}
			}
			out = append(out, CompositeSpan{
				Text:       text[sg.Start:sp.End],
				Start:      sg.Start,
				End:        sp.End,
				Expression: bound,
				Pattern:    "signal_bound",
			})
			signalUsed[si], spanUsed[pi] = true, true
			break
		}
	}
	return out
}

// gapIsEmpty reports whether gap text is only whitespace, punctuation,
// and empty connector words.
func gapIsEmpty(gap string) bool {
	for _, word := range gapWordRe.FindAllString(gap, -1) {
		if !emptyConnectors[strings.ToLower(word)] {
			return false
		}
	}
	stripped := gapWordRe.ReplaceAllString(gap, "")
	return strings.TrimLeft(stripped, " \t\n\r.,;:()'\"-") == ""
}

// FilterCoveredSpans drops spans that lie entirely inside a composite's
// covered region, so downstream consumers do not double-report them.
func FilterCoveredSpans(spans []signal.Span, composites []CompositeSpan) []signal.Span {
	var out []signal.Span
	for _, sp := range spans {
		covered := false
		for _, c := range composites {
			if sp.Start >= c.Start && sp.End <= c.End {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, sp)
		}
	}
	return out
}
