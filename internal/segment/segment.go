// Package segment partitions the ordered tracks of an album into works and
// movements.
package segment

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/movements/internal/movements"
)

// RawTitle is one track as supplied by the media library.
type RawTitle struct {
	Text        string
	Composer    string
	SourceIndex int
}

// Movement is one track assigned to a work.
type Movement struct {
	Title       string
	ParseName   string
	SourceIndex int
}

// Work is a run of consecutive tracks sharing one anchor.
type Work struct {
	Title     string
	Anchor    movements.Result
	Movements []Movement
}

// Assignment is the per-track outcome handed to persistence.
type Assignment struct {
	SourceIndex   int
	PieceTitle    string
	MovementTitle string
	ParseName     string
	NewWork       bool // true when this track starts a work
}

// Album is an ordered track list, segmented as a unit.
type Album struct {
	Key    string
	Tracks []RawTitle
}

// AlbumResult pairs an album with its works.
type AlbumResult struct {
	Key   string
	Works []Work
}

// Segment runs the anchor loop over one album. The first track always
// starts a work; each later track either continues the current work or, when
// it does not agree with the anchor, is parsed afresh and starts a new one.
func Segment(p *movements.Parser, tracks []RawTitle) []Work {
	var works []Work

	for _, tr := range tracks {
		if n := len(works); n > 0 {
			cur := &works[n-1]
			if res, ok := p.MatchSubsequent(tr.Text, cur.Anchor); ok {
				cur.Movements = append(cur.Movements, Movement{
					Title:       res.MovementTitle,
					ParseName:   res.ParseName,
					SourceIndex: tr.SourceIndex,
				})
				continue
			}
			log.Debug().
				Str("title", tr.Text).
				Str("anchor", cur.Title).
				Msg("track does not continue work, starting a new one")
		}

		anchor := p.Parse(tr.Text)
		works = append(works, Work{
			Title:  anchor.PieceTitle,
			Anchor: anchor,
			Movements: []Movement{{
				Title:       anchor.MovementTitle,
				ParseName:   anchor.ParseName,
				SourceIndex: tr.SourceIndex,
			}},
		})
	}
	return works
}

// Assignments flattens works back into per-track results in input order.
func Assignments(works []Work) []Assignment {
	var out []Assignment
	for _, w := range works {
		for i, m := range w.Movements {
			out = append(out, Assignment{
				SourceIndex:   m.SourceIndex,
				PieceTitle:    w.Title,
				MovementTitle: m.Title,
				ParseName:     m.ParseName,
				NewWork:       i == 0,
			})
		}
	}
	return out
}

// SegmentAlbums segments albums concurrently with at most workers albums in
// flight. Each album is still processed sequentially. Results keep the
// input order.
func SegmentAlbums(ctx context.Context, p *movements.Parser, albums []Album, workers int) ([]AlbumResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]AlbumResult, len(albums))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, a := range albums {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = AlbumResult{Key: a.Key, Works: Segment(p, a.Tracks)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
