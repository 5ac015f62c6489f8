package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteMovement stores the work and movement of a track in its file.
// Only the work/movement fields are touched; every other tag is preserved.
// This operation modifies the file in place.
func WriteMovement(path string, m MovementTag) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtMP3:
		return writeMP3Movement(path, m)
	case ExtFLAC:
		return writeFLACMovement(path, m)
	case ExtOPUS, ExtOGG, ExtOGA:
		return writeOggMovement(path, m)
	case ExtM4A, ExtMP4:
		return writeM4AMovement(path, m)
	default:
		return fmt.Errorf("unsupported file format: %s", ext)
	}
}

// vorbisFields returns the Vorbis comment fields for m, in write order.
func vorbisFields(m MovementTag) [][2]string {
	fields := [][2]string{
		{keyWork, m.Work},
		{keyMovementName, m.Movement},
	}
	if m.Index > 0 {
		fields = append(fields, [2]string{keyMovement, strconv.Itoa(m.Index)})
	}
	if m.Total > 0 {
		fields = append(fields, [2]string{keyMovementTotal, strconv.Itoa(m.Total)})
	}
	return fields
}
