package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/movements/internal/composers"
	"github.com/llehouerou/movements/internal/config"
	"github.com/llehouerou/movements/internal/errmsg"
	"github.com/llehouerou/movements/internal/library"
	"github.com/llehouerou/movements/internal/movements"
	"github.com/llehouerou/movements/internal/report"
	"github.com/llehouerou/movements/internal/segment"
	"github.com/llehouerou/movements/internal/store"
	"github.com/llehouerou/movements/internal/tags"
)

var errNoSources = errors.New("no library sources configured")

// runScan scans the library, segments every album, stores the results and
// prints the report. Returned errors are already formatted for the user.
func runScan(ctx context.Context, cfg *config.Config, opts options, stdout, stderr io.Writer) error {
	if len(cfg.LibrarySources) == 0 {
		return errors.New(errmsg.Format(errmsg.OpLibraryScan, errNoSources))
	}

	progress := make(chan library.ScanProgress)
	done := make(chan struct{})
	go func() {
		defer close(done)
		printProgress(stderr, progress)
	}()
	catalog, err := library.Scan(ctx, cfg.LibrarySources, progress)
	<-done
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLibraryScan, err))
	}

	idx := composers.Build(catalog.Composers())
	log.Info().Int("composers", idx.Len()).Msg("built composer index")

	parser := movements.NewParser(idx)
	results, err := segment.SegmentAlbums(ctx, parser, catalog.SegmentInput(), cfg.GetWorkers())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpAlbumSegment, err))
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpDatabaseOpen, err))
	}
	st, err := store.Open(ctx, dbPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpDatabaseOpen, dbPath, err))
	}
	defer st.Close()

	albums := make([]report.Album, len(results))
	for i, res := range results {
		album := catalog.Albums[i]
		if err := st.SaveAlbum(ctx, album, res.Works); err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpResultsStore, album.Name, err))
		}
		if cfg.WriteTags {
			writeTags(album, res.Works)
		}
		albums[i] = report.Album{Artist: album.Artist, Name: album.Name, Works: res.Works}
	}

	if err := report.Render(stdout, albums, report.Options{Width: opts.width}); err != nil {
		return errors.New(errmsg.Format(errmsg.OpResultsReport, err))
	}
	return nil
}

// writeTags stores work and movement tags in each track file. Works that
// consist of a single whole-title track are left alone. Failures are logged
// and do not stop the scan.
func writeTags(album *library.Album, works []segment.Work) {
	for _, w := range works {
		if len(w.Movements) == 1 && w.Movements[0].Title == "" {
			continue
		}
		for i, m := range w.Movements {
			path := album.Tracks[m.SourceIndex].Path
			err := tags.WriteMovement(path, tags.MovementTag{
				Work:     w.Title,
				Movement: m.Title,
				Index:    i + 1,
				Total:    len(w.Movements),
			})
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg(errmsg.FormatWith(errmsg.OpTagsWrite, path, err))
			}
		}
	}
}

// printProgress renders scan progress on a single terminal line until the
// channel is closed.
func printProgress(w io.Writer, progress <-chan library.ScanProgress) {
	var printed bool
	for p := range progress {
		switch p.Phase {
		case library.PhaseReading:
			fmt.Fprintf(w, "\rReading tags %s/%s", humanize.Comma(int64(p.Current)), humanize.Comma(int64(p.Total)))
		case library.PhaseDiscovering:
			fmt.Fprintf(w, "\rDiscovering files %s", humanize.Comma(int64(p.Current)))
		default:
			continue
		}
		printed = true
	}
	if printed {
		fmt.Fprintln(w)
	}
}
