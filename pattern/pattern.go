// Package pattern matches composite temporal phrasings ("between X and
// Y", "early morning of X", "circa 1990") against a priority-ordered
// rule table. Handlers recursively sub-parse their operands through an
// injected callback, so the package never depends on the full parser.
package pattern

import (
	"regexp"
	"sort"
	"strings"

	"github.com/teranos/tempex/conf"
	"github.com/teranos/tempex/logger"
	"github.com/teranos/tempex/scatex"
)

// SubParser re-enters the full parse pipeline for an operand substring.
// Implementations must fail once depth passes the configured limit.
type SubParser func(text string, depth int) (scatex.Expression, error)

// Rule is one composite phrasing: a compiled trigger pattern plus a
// handler that assembles the expression tree from the captures. A
// handler returning false means "no match, keep going"; no handler
// failure is fatal.
type Rule struct {
	Name     string
	Priority int
	re       *regexp.Regexp
	handle   func(p *Parser, m []string, depth int) (scatex.Expression, bool)
}

// Parser holds the rule table, sorted once by descending priority.
type Parser struct {
	rules    []Rule
	sub      SubParser
	maxDepth int
}

// New builds a Parser around the sub-parse callback. Nil settings mean
// defaults.
func New(settings *conf.Settings, sub SubParser) *Parser {
	if settings == nil {
		settings = conf.Default()
	}
	p := &Parser{
		sub:      sub,
		maxDepth: settings.Parser.MaxRecursionDepth,
		rules:    buildRules(),
	}
	sort.SliceStable(p.rules, func(i, j int) bool {
		return p.rules[i].Priority > p.rules[j].Priority
	})
	return p
}

// Parse tries each rule in priority order against the trimmed text and
// returns the first handler result, with the winning rule's name. There
// is no backtracking: a handler failure moves on to the next rule, never
// back into the same one.
func (p *Parser) Parse(text string, depth int) (scatex.Expression, string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || depth > p.maxDepth {
		return nil, "", false
	}

	for _, rule := range p.rules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		expr, ok := rule.handle(p, m, depth)
		if !ok {
			logger.Logger.Debugw("composite rule matched but handler declined",
				"rule", rule.Name, "text", text)
			continue
		}
		return expr, rule.Name, true
	}
	return nil, "", false
}

// subParse resolves an operand substring one level deeper. Any error,
// including the depth limit, reads as no-match.
func (p *Parser) subParse(text string, depth int) (scatex.Expression, bool) {
	expr, err := p.sub(strings.TrimSpace(text), depth+1)
	if err != nil || expr == nil {
		return nil, false
	}
	return expr, true
}
