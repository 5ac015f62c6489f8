// Package report renders segmentation results as a styled tree.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/movements/internal/segment"
)

const (
	// DefaultWidth is used when Options.Width is zero.
	DefaultWidth = 100

	movementIndent = "      "
	ruleColumn     = 28
)

// Album is one album's segmentation, ready to print.
type Album struct {
	Artist string
	Name   string
	Works  []segment.Work
}

// Options controls rendering.
type Options struct {
	Width       int  // terminal width; lines longer than this are clipped
	SummaryOnly bool // skip the tree
}

// Summary holds the totals printed under the tree.
type Summary struct {
	Albums int
	Works  int
	Tracks int
	Breaks int // works that begin after a track failed to continue its predecessor
}

// Summarize computes totals over albums.
func Summarize(albums []Album) Summary {
	var s Summary
	for _, a := range albums {
		s.Albums++
		s.Works += len(a.Works)
		if len(a.Works) > 1 {
			s.Breaks += len(a.Works) - 1
		}
		for _, w := range a.Works {
			s.Tracks += len(w.Movements)
		}
	}
	return s
}

// String formats the summary line.
func (s Summary) String() string {
	return fmt.Sprintf("%s %s, %s %s, %s %s, %s new after mismatch",
		humanize.Comma(int64(s.Albums)), plural(s.Albums, "album"),
		humanize.Comma(int64(s.Works)), plural(s.Works, "work"),
		humanize.Comma(int64(s.Tracks)), plural(s.Tracks, "track"),
		humanize.Comma(int64(s.Breaks)),
	)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Render writes the tree and summary to w.
func Render(w io.Writer, albums []Album, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	st := defaultStyles()

	var sb strings.Builder
	if !opts.SummaryOnly {
		for i, a := range albums {
			if i > 0 {
				sb.WriteString("\n")
			}
			writeAlbum(&sb, st, a, width)
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("─", min(40, width)))
		sb.WriteString("\n")
	}
	sb.WriteString(clip(st.Total.Render(Summarize(albums).String()), width))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeAlbum(sb *strings.Builder, st styles, a Album, width int) {
	header := sanitize(a.Name)
	if a.Artist != "" {
		header = sanitize(a.Artist) + " / " + header
	}
	sb.WriteString(clip(st.Album.Render(header), width))
	sb.WriteString("\n")

	for i, w := range a.Works {
		marker := "  ▸ "
		if i > 0 {
			marker = st.Break.Render("  ↳ ")
		}
		line := marker + st.Work.Render(sanitize(w.Title)) + " " + st.Rule.Render("["+w.Anchor.ParseName+"]")
		sb.WriteString(clip(line, width))
		sb.WriteString("\n")

		titleWidth := max(width-len(movementIndent)-ruleColumn, 10)
		for _, m := range w.Movements {
			title := m.Title
			if title == "" {
				title = "(whole work)"
			}
			line := movementIndent + st.Movement.Render(fit(title, titleWidth)) + " " + st.Rule.Render(m.ParseName)
			sb.WriteString(clip(line, width))
			sb.WriteString("\n")
		}
	}
}
