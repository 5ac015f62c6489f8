package tags

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// writeMP3Movement replaces the work and movement frames of an MP3 file.
func writeMP3Movement(path string, m MovementTag) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer tag.Close()

	// Use ID3v2.4 with UTF-8 for better Unicode support
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	for _, id := range []string{frameContentGroup, frameMovementName, frameMovementNum} {
		tag.DeleteFrames(id)
	}

	if m.Work != "" {
		tag.AddTextFrame(frameContentGroup, id3v2.EncodingUTF8, m.Work)
	}
	if m.Movement != "" {
		tag.AddTextFrame(frameMovementName, id3v2.EncodingUTF8, m.Movement)
	}
	if m.Index > 0 {
		tag.AddTextFrame(frameMovementNum, id3v2.EncodingUTF8, numberPair(m.Index, m.Total))
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}
