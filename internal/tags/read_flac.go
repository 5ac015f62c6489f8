package tags

import (
	"strings"

	goflac "github.com/go-flac/go-flac"
)

// readFLACExtendedTags reads composer, work and movement Vorbis comments.
func readFLACExtendedTags(path string, t *Tag) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return
	}

	var comments map[string]string
	for _, meta := range f.Meta {
		if meta.Type == goflac.VorbisComment {
			comments = parseVorbisComments(meta.Data)
			break
		}
	}
	if comments == nil {
		return
	}

	if t.Composer == "" {
		t.Composer = comments[keyComposer]
	}
	t.Work = comments[keyWork]
	t.MovementName = comments[keyMovementName]
}

// parseVorbisComments parses raw Vorbis comment data into a map.
// Keys are upper-cased; for repeated keys the first value wins.
func parseVorbisComments(data []byte) map[string]string {
	comments := make(map[string]string)

	if len(data) < 4 {
		return comments
	}

	// Skip vendor string
	vendorLen := int(data[0]) | int(data[1])<<8 | int(data[2])<<16 | int(data[3])<<24
	pos := 4 + vendorLen
	if pos+4 > len(data) {
		return comments
	}

	commentCount := int(data[pos]) | int(data[pos+1])<<8 | int(data[pos+2])<<16 | int(data[pos+3])<<24
	pos += 4

	for i := 0; i < commentCount && pos+4 <= len(data); i++ {
		commentLen := int(data[pos]) | int(data[pos+1])<<8 | int(data[pos+2])<<16 | int(data[pos+3])<<24
		pos += 4

		if pos+commentLen > len(data) {
			break
		}

		comment := string(data[pos : pos+commentLen])
		pos += commentLen

		if idx := strings.Index(comment, "="); idx > 0 {
			key := strings.ToUpper(comment[:idx])
			if _, ok := comments[key]; !ok {
				comments[key] = comment[idx+1:]
			}
		}
	}

	return comments
}
