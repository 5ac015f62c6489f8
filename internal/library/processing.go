package library

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/movements/internal/tags"
)

// readFiles reads tags in parallel. Files that cannot be read are skipped.
// The returned slice keeps the order of files.
func (s *Scanner) readFiles(ctx context.Context, files []string, progress chan<- ScanProgress) []*tags.Tag {
	total := len(files)
	var processed atomic.Int64
	results := make([]*tags.Tag, total)

	workCh := make(chan int, total)
	for i := range files {
		workCh <- i
	}
	close(workCh)

	var wg sync.WaitGroup
	for range s.workers() {
		wg.Go(func() {
			for i := range workCh {
				if ctx.Err() != nil {
					return
				}
				info, err := s.read(files[i])
				if err != nil {
					log.Debug().Err(err).Str("path", files[i]).Msg("skipping file with unreadable tags")
				} else {
					results[i] = info
				}
				processed.Add(1)
			}
		})
	}

	// Progress reporter
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if progress == nil {
			return
		}
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p := ScanProgress{Phase: PhaseReading, Current: int(processed.Load()), Total: total}
				select {
				case progress <- p:
				case <-done:
					return
				}
			case <-done:
				return
			}
		}
	}()

	wg.Wait()
	close(done)
	<-stopped
	send(progress, ScanProgress{Phase: PhaseReading, Current: int(processed.Load()), Total: total})

	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
