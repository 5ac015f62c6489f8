package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/movements/internal/composers"
	"github.com/llehouerou/movements/internal/movements"
	"github.com/llehouerou/movements/internal/segment"
)

func segmentTitles(titles ...string) []segment.Work {
	p := movements.NewParser(composers.Build([]string{"Beethoven", "Mozart", "Dvořák"}))
	tracks := make([]segment.RawTitle, len(titles))
	for i, title := range titles {
		tracks[i] = segment.RawTitle{Text: title, SourceIndex: i}
	}
	return segment.Segment(p, tracks)
}

func render(t *testing.T, albums []Album, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, albums, opts))
	return ansi.Strip(buf.String())
}

func TestRender_Tree(t *testing.T) {
	albums := []Album{{
		Artist: "Czech Philharmonic",
		Name:   "New World",
		Works: segmentTitles(
			"Dvořák: Symphony No. 9 - I. Adagio",
			"Dvořák: Symphony No. 9 - II. Allegro molto",
		),
	}}

	out := render(t, albums, Options{})

	assert.Contains(t, out, "Czech Philharmonic / New World")
	assert.Contains(t, out, "Symphony No. 9 ["+movements.RuleComposerRoman+"]")
	assert.Contains(t, out, "I. Adagio")
	assert.Contains(t, out, "II. Allegro molto")
	assert.Contains(t, out, "1 album, 1 work, 2 tracks, 0 new after mismatch")
}

func TestRender_WholeWorkAndBreak(t *testing.T) {
	albums := []Album{{
		Name:  "Piano",
		Works: segmentTitles("Beethoven: Für Elise", "Mozart: Eine kleine Nachtmusik - I. Allegro"),
	}}

	out := render(t, albums, Options{})

	assert.Contains(t, out, "(whole work)")
	assert.Contains(t, out, "↳ Eine kleine Nachtmusik")
	assert.Contains(t, out, "2 works, 2 tracks, 1 new after mismatch")
}

func TestRender_ClipsToWidth(t *testing.T) {
	albums := []Album{{
		Name:  strings.Repeat("Very Long Album Name ", 10),
		Works: segmentTitles("Suite - " + strings.Repeat("Prelude ", 20)),
	}}

	out := render(t, albums, Options{Width: 60})
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 60, "line %q", line)
	}
}

func TestRender_SummaryOnly(t *testing.T) {
	albums := []Album{{Name: "Piano", Works: segmentTitles("Suite - Prelude")}}

	out := render(t, albums, Options{SummaryOnly: true})

	assert.NotContains(t, out, "Prelude")
	assert.Equal(t, "1 album, 1 work, 1 track, 0 new after mismatch\n", out)
}

func TestSummary_UsesThousandsSeparators(t *testing.T) {
	s := Summary{Albums: 1200, Works: 4500, Tracks: 12345, Breaks: 1001}
	assert.Equal(t, "1,200 albums, 4,500 works, 12,345 tracks, 1,001 new after mismatch", s.String())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "ab c", sanitize("a\x00b c"))
	assert.Equal(t, "ok", sanitize("o\xffk"))
	assert.Equal(t, "a b", sanitize("a\u00a0b"))
}
