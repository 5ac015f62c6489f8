package tags

import (
	"fmt"

	"go.senan.xyz/taglib"
)

// writeOggMovement writes work and movement comments to an Ogg/Opus file
// using TagLib. Without the Clear option TagLib leaves other keys alone.
func writeOggMovement(path string, m MovementTag) error {
	tags := make(map[string][]string)
	for _, kv := range vorbisFields(m) {
		if kv[1] != "" {
			tags[kv[0]] = []string{kv[1]}
		}
	}
	if len(tags) == 0 {
		return nil
	}

	if err := taglib.WriteTags(path, tags, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}
