package movements

import (
	"regexp"
	"strings"
)

// Rule names, in catalogue order.
const (
	RuleComposerNumbered = "composer-prefixed-numbered"
	RuleComposerRoman    = "composer-prefixed-roman"
	RuleComposerDash     = "composer-prefixed-dash"
	RuleComposerColon    = "composer-prefixed-colon"
	RuleComposerParen    = "composer-prefixed-paren"
	RuleNumbered         = "numbered"
	RuleRoman            = "roman"
	RuleDash             = "dash"
	RuleParen            = "paren"
	RuleColon            = "colon"
	RuleWholeTitle       = "whole-title"

	// ParseComposerColonWork names a colon match whose work part turned out
	// to be a known composer.
	ParseComposerColonWork = "composer-colon-work"
)

// Rule is one grammar of the catalogue. Match reports whether the rule
// accepts the whole of text, and if so the work and movement parts it
// captured.
type Rule interface {
	Name() string
	Match(text string) (work, movement string, ok bool)
}

// Building blocks. Every pattern is anchored to the whole input with \A and
// \z and runs in (?s) mode so that titles containing newlines are handled
// like any other character.
const (
	lead     = `(?s)\A\s*`
	tail     = `\s*\z`
	composer = `[^:]+:\s+`

	workAny     = `(.+?)`
	workNoDash  = `([^-–—]+?)`
	workNoColon = `([^:]+?)`

	// separator before an ordinal movement: a dash, colon or comma, or plain
	// whitespace
	ordinalSep = `(?:\s*[-–—:,]\s*|\s+)`

	numbered = ordinalSep + `(\d+\.\s.*?)`
	roman    = ordinalSep + `((?:I|II|III|IV|V|VI|VII|VIII|IX|X|XI|XII|XIII|XIV|XV|XVI|XVII|XVIII|XIX|XX)\.\s.*?)`
	dash     = `\s*[-–—]\s+(.+?)`
	colon    = `\s*:\s+(.+?)`
	paren    = `\s*\(([^()]+)\)`
)

// patternRule is a Rule backed by a regular expression with exactly two
// capture groups: work then movement.
type patternRule struct {
	name string
	re   *regexp.Regexp
}

func newPatternRule(name, expr string) *patternRule {
	re := regexp.MustCompile(expr)
	if re.NumSubexp() != 2 {
		panic("movements: rule " + name + " must have exactly two capture groups")
	}
	return &patternRule{name: name, re: re}
}

func (r *patternRule) Name() string { return r.name }

// Match accepts the text only when the pattern matches exactly once.
func (r *patternRule) Match(text string) (work, movement string, ok bool) {
	matches := r.re.FindAllStringSubmatch(text, -1)
	if len(matches) != 1 {
		return "", "", false
	}
	m := matches[0]
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// wholeTitle accepts every input, returning it unchanged as the work part.
type wholeTitle struct{}

func (wholeTitle) Name() string { return RuleWholeTitle }

func (wholeTitle) Match(text string) (work, movement string, ok bool) {
	return text, "", true
}

// WholeTitle returns the universal fallback rule.
func WholeTitle() Rule { return wholeTitle{} }

var defaultRules = []Rule{
	newPatternRule(RuleComposerNumbered, lead+composer+workAny+numbered+tail),
	newPatternRule(RuleComposerRoman, lead+composer+workAny+roman+tail),
	newPatternRule(RuleComposerDash, lead+composer+workNoDash+dash+tail),
	newPatternRule(RuleComposerColon, lead+composer+workNoColon+colon+tail),
	newPatternRule(RuleComposerParen, lead+composer+workAny+paren+tail),
	newPatternRule(RuleNumbered, lead+workAny+numbered+tail),
	newPatternRule(RuleRoman, lead+workAny+roman+tail),
	newPatternRule(RuleDash, lead+workNoDash+dash+tail),
	newPatternRule(RuleParen, lead+workAny+paren+tail),
	newPatternRule(RuleColon, lead+workNoColon+colon+tail),
	wholeTitle{},
}
