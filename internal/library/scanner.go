package library

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/movements/internal/tags"
)

const defaultWorkers = 8

// Scan phases.
const (
	PhaseDiscovering = "discovering"
	PhaseReading     = "reading"
	PhaseGrouping    = "grouping"
	PhaseDone        = "done"
)

// ScanProgress reports the progress of a library scan.
type ScanProgress struct {
	Phase   string
	Current int
	Total   int
}

// TagReader reads the tags of one file.
type TagReader func(path string) (*tags.Tag, error)

// Scanner turns source directories into a Catalog.
type Scanner struct {
	// Read defaults to tags.Read.
	Read TagReader
	// Workers defaults to 8.
	Workers int
}

// Scan walks sources with a default Scanner.
func Scan(ctx context.Context, sources []string, progress chan<- ScanProgress) (*Catalog, error) {
	return (&Scanner{}).Scan(ctx, sources, progress)
}

// Scan walks sources, reads tags and groups tracks into albums.
// progress may be nil; when set it is closed before Scan returns.
func (s *Scanner) Scan(ctx context.Context, sources []string, progress chan<- ScanProgress) (*Catalog, error) {
	if progress != nil {
		defer close(progress)
	}

	send(progress, ScanProgress{Phase: PhaseDiscovering})
	files, err := discoverFiles(ctx, sources, progress)
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}
	log.Info().Int("files", len(files)).Strs("sources", sources).Msg("discovered music files")

	infos := s.readFiles(ctx, files, progress)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	send(progress, ScanProgress{Phase: PhaseGrouping, Current: len(infos), Total: len(infos)})
	catalog := buildCatalog(infos)
	log.Info().
		Int("tracks", catalog.TrackCount()).
		Int("albums", len(catalog.Albums)).
		Int("unreadable", len(files)-len(infos)).
		Msg("library scanned")

	send(progress, ScanProgress{Phase: PhaseDone, Current: len(files), Total: len(files)})
	return catalog, nil
}

func (s *Scanner) read(path string) (*tags.Tag, error) {
	if s.Read != nil {
		return s.Read(path)
	}
	return tags.Read(path)
}

func (s *Scanner) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return defaultWorkers
}

// send delivers p unless progress is nil.
func send(progress chan<- ScanProgress, p ScanProgress) {
	if progress != nil {
		progress <- p
	}
}
