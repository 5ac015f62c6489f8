package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/llehouerou/movements/internal/composers"
	"github.com/llehouerou/movements/internal/movements"
	"github.com/llehouerou/movements/internal/report"
	"github.com/llehouerou/movements/internal/segment"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ", ") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// runParse segments the given titles as one album.
func runParse(args []string, opts options, stdout, stderr io.Writer) error {
	var names stringList
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&names, "composer", "known composer name (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no titles given")
	}

	parser := movements.NewParser(composers.Build(names))
	tracks := make([]segment.RawTitle, fs.NArg())
	for i, title := range fs.Args() {
		tracks[i] = segment.RawTitle{Text: title, SourceIndex: i}
	}
	works := segment.Segment(parser, tracks)

	album := report.Album{Name: fmt.Sprintf("%d titles", len(tracks)), Works: works}
	return report.Render(stdout, []report.Album{album}, report.Options{Width: opts.width})
}
