// Package movements splits track titles into a work title and a movement
// title, and decides whether later tracks continue the same work.
package movements

import (
	"github.com/llehouerou/movements/internal/composers"
)

// Result is the structured reading of one title.
type Result struct {
	PieceTitle    string
	MovementTitle string
	ParseName     string // rule name, or ParseComposerColonWork
}

// Parser applies a catalogue to titles. It holds no per-title state and is
// safe for concurrent use once built.
type Parser struct {
	catalogue Catalogue
	composers *composers.Index
}

// NewParser returns a parser over the default catalogue.
// idx may be nil, in which case no title is treated as composer-prefixed by
// the colon rule.
func NewParser(idx *composers.Index) *Parser {
	return NewParserWithCatalogue(DefaultCatalogue(), idx)
}

// NewParserWithCatalogue returns a parser over a custom rule order.
func NewParserWithCatalogue(c Catalogue, idx *composers.Index) *Parser {
	return &Parser{catalogue: c, composers: idx}
}

// Parse reads one title. It always returns a result.
func (p *Parser) Parse(text string) Result {
	return p.resolve(p.catalogue.Best(text))
}

// MatchSubsequent tests whether text is another movement of the work
// anchored by anchor. Rules are tried in catalogue order; the first rule that
// accepts text and whose work part equals anchor.PieceTitle exactly wins.
// The boolean is false when no rule agrees with the anchor.
func (p *Parser) MatchSubsequent(text string, anchor Result) (Result, bool) {
	for _, r := range p.catalogue {
		work, movement, ok := r.Match(text)
		if !ok {
			continue
		}
		res := p.resolve(Match{Rule: r, Work: work, Movement: movement})
		if res.PieceTitle == anchor.PieceTitle {
			return res, true
		}
	}
	return Result{}, false
}

// resolve turns a catalogue match into a result. "X: Y" is read as
// composer X and work Y when X is a known composer.
func (p *Parser) resolve(m Match) Result {
	if m.Rule.Name() == RuleColon && p.composers.Contains(m.Work) {
		return Result{
			PieceTitle: m.Movement,
			ParseName:  ParseComposerColonWork,
		}
	}
	return Result{
		PieceTitle:    m.Work,
		MovementTitle: m.Movement,
		ParseName:     m.Rule.Name(),
	}
}

// ParseTitle parses text with the default catalogue.
func ParseTitle(text string, idx *composers.Index) Result {
	return NewParser(idx).Parse(text)
}

// MatchSubsequentMovement matches text against anchor with the default
// catalogue.
func MatchSubsequentMovement(text string, anchor Result, idx *composers.Index) (Result, bool) {
	return NewParser(idx).MatchSubsequent(text, anchor)
}
