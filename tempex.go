// Package tempex parses natural-language temporal expressions into an
// evaluable expression tree. The top-level dispatcher tries the
// composite pattern rules first, then the simple base parsers, and
// injects itself as the sub-parse callback both the pattern rules and
// the merge engine use for operand text. Recursion is bounded by an
// explicit depth counter.
package tempex

import (
	"strings"

	"github.com/teranos/tempex/base"
	"github.com/teranos/tempex/conf"
	"github.com/teranos/tempex/errors"
	"github.com/teranos/tempex/logger"
	"github.com/teranos/tempex/merge"
	"github.com/teranos/tempex/pattern"
	"github.com/teranos/tempex/scatex"
	"github.com/teranos/tempex/signal"
)

// Result is a successful parse: the expression tree, its coarse
// granularity, and the name of the composite rule that produced it
// (empty for base-parser results).
type Result struct {
	Expression  scatex.Expression
	Granularity scatex.Granularity
	Rule        string
}

// Parser is the top-level dispatcher. Safe for concurrent use after
// construction: parsing touches no shared mutable state.
type Parser struct {
	settings *conf.Settings
	patterns *pattern.Parser
	merger   *merge.Engine
}

// New builds a Parser. Nil settings mean defaults.
func New(settings *conf.Settings) *Parser {
	if settings == nil {
		settings = conf.Default()
	}
	p := &Parser{settings: settings}
	p.patterns = pattern.New(settings, p.subParse)
	p.merger = merge.New(settings, p.subParse)
	return p
}

// Parse recognizes a single temporal expression. Empty or blank text is
// the one malformed-input case and returns ErrEmptyExpression;
// unrecognized text returns an error wrapping ErrNoMatch.
func (p *Parser) Parse(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, errors.WithHint(errors.ErrEmptyExpression,
			"pass a phrase like \"early morning of October 7\"")
	}
	return p.parseAt(text, 0)
}

// TryParse is Parse with no-match collapsed to a boolean.
func (p *Parser) TryParse(text string) (Result, bool) {
	r, err := p.Parse(text)
	if err != nil {
		return Result{}, false
	}
	return r, true
}

// Merge runs the signal-merge engine over externally detected spans and
// signals.
func (p *Parser) Merge(text string, spans []signal.Span, signals []signal.Signal) merge.Result {
	return p.merger.Merge(text, spans, signals)
}

func (p *Parser) parseAt(text string, depth int) (Result, error) {
	if expr, rule, ok := p.patterns.Parse(text, depth); ok {
		return Result{Expression: expr, Granularity: GranularityOf(expr), Rule: rule}, nil
	}
	if expr, ok := base.Parse(text); ok {
		return Result{Expression: expr, Granularity: GranularityOf(expr)}, nil
	}
	return Result{}, errors.Wrapf(errors.ErrNoMatch, "%q", text)
}

// subParse is the callback injected into the pattern rules and the
// merge engine. It re-enters the full pipeline one level deeper.
func (p *Parser) subParse(text string, depth int) (scatex.Expression, error) {
	if depth > p.settings.Parser.MaxRecursionDepth {
		logger.Logger.Debugw("sub-parse depth limit hit", "text", text, "depth", depth)
		return nil, errors.ErrDepthExceeded
	}
	r, err := p.parseAt(text, depth)
	if err != nil {
		return nil, err
	}
	return r.Expression, nil
}

var defaultParser = New(nil)

// Parse parses with the default settings.
func Parse(text string) (Result, error) {
	return defaultParser.Parse(text)
}

// TryParse parses with the default settings, collapsing failure to a
// boolean.
func TryParse(text string) (Result, bool) {
	return defaultParser.TryParse(text)
}

// Merge runs the signal-merge engine with the default settings.
func Merge(text string, spans []signal.Span, signals []signal.Signal) merge.Result {
	return defaultParser.Merge(text, spans, signals)
}
