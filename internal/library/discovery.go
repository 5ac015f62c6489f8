package library

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/movements/internal/tags"
)

// discoverFiles walks the given source directories and returns all music
// files found, deduplicated across overlapping sources.
func discoverFiles(ctx context.Context, sources []string, progress chan<- ScanProgress) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	for _, src := range sources {
		err := filepath.WalkDir(src, func(path string, d os.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Skip any walk errors - intentionally continuing to scan other paths
			if walkErr != nil {
				log.Debug().Err(walkErr).Str("path", path).Msg("skipping unreadable path")
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !tags.IsMusicFile(path) {
				return nil
			}
			if _, ok := seen[path]; ok {
				return nil
			}
			seen[path] = struct{}{}
			files = append(files, path)

			if len(files)%100 == 0 {
				send(progress, ScanProgress{Phase: PhaseDiscovering, Current: len(files)})
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
