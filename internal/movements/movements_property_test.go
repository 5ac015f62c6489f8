package movements

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/llehouerou/movements/internal/composers"
)

// titleGen draws strings built from the characters the grammars care about.
func titleGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9 .:()IVX\-–,]{0,40}`)
}

func TestPropertyParseIsTotal(t *testing.T) {
	t.Parallel()
	idx := composers.Build([]string{"Johannes Brahms", "Antonín Dvořák"})
	p := NewParser(idx)

	rapid.Check(t, func(t *rapid.T) {
		title := titleGen().Draw(t, "title")

		res := p.Parse(title)
		if res.ParseName == "" {
			t.Fatalf("empty parse name for %q", title)
		}
	})
}

func TestPropertyParseIsDeterministic(t *testing.T) {
	t.Parallel()
	p := NewParser(composers.Build([]string{"Johannes Brahms"}))

	rapid.Check(t, func(t *rapid.T) {
		title := titleGen().Draw(t, "title")

		if a, b := p.Parse(title), p.Parse(title); a != b {
			t.Fatalf("non-deterministic: %+v vs %+v for %q", a, b, title)
		}
	})
}

func TestPropertyAnchorMatchesItself(t *testing.T) {
	t.Parallel()
	p := NewParser(composers.Build([]string{"Johannes Brahms", "Bach"}))

	rapid.Check(t, func(t *rapid.T) {
		title := titleGen().Draw(t, "title")

		anchor := p.Parse(title)
		got, ok := p.MatchSubsequent(title, anchor)
		if !ok {
			t.Fatalf("title %q does not match its own anchor %+v", title, anchor)
		}
		if got != anchor {
			t.Fatalf("self match %+v differs from anchor %+v for %q", got, anchor, title)
		}
	})
}

func TestPropertyWholeTitleKeepsInput(t *testing.T) {
	t.Parallel()
	p := NewParser(nil)

	rapid.Check(t, func(t *rapid.T) {
		title := rapid.String().Draw(t, "title")

		res := p.Parse(title)
		if res.ParseName == RuleWholeTitle && (res.PieceTitle != title || res.MovementTitle != "") {
			t.Fatalf("fallback altered input %q: %+v", title, res)
		}
	})
}
