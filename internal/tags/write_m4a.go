package tags

import (
	"fmt"

	"github.com/Sorrow446/go-mp4tag"
)

// writeM4AMovement writes work and movement as freeform iTunes atoms.
// go-mp4tag only rewrites the fields that are set.
func writeM4AMovement(path string, m MovementTag) error {
	custom := make(map[string]string)
	for _, kv := range vorbisFields(m) {
		if kv[1] != "" {
			custom[kv[0]] = kv[1]
		}
	}
	if len(custom) == 0 {
		return nil
	}

	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	if err := mp4.Write(&mp4tag.MP4Tags{Custom: custom}, nil); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
