package tags

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// readMP3ExtendedTags reads composer, work and movement frames.
func readMP3ExtendedTags(path string, t *Tag) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3tag.Close()

	if t.Composer == "" {
		t.Composer = getID3TextFrame(id3tag, frameComposer)
	}
	t.Work = getID3TextFrame(id3tag, frameContentGroup)
	t.MovementName = getID3TextFrame(id3tag, frameMovementName)
}

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2 library.
// This is used when dhowden/tag fails (e.g., on some UTF-16 encoded tags).
func readMP3WithID3v2Fallback(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	title := id3tag.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	artist := id3tag.Artist()
	albumArtist := getID3TextFrame(id3tag, "TPE2")
	if albumArtist == "" {
		albumArtist = artist
	}

	track, totalTracks := parseTrackNumber(getID3TextFrame(id3tag, "TRCK"))
	disc, totalDiscs := parseTrackNumber(getID3TextFrame(id3tag, "TPOS"))

	t := &Tag{
		Path:         path,
		Title:        title,
		Artist:       artist,
		AlbumArtist:  albumArtist,
		Album:        id3tag.Album(),
		Composer:     getID3TextFrame(id3tag, frameComposer),
		TrackNumber:  track,
		TotalTracks:  totalTracks,
		DiscNumber:   disc,
		TotalDiscs:   totalDiscs,
		Work:         getID3TextFrame(id3tag, frameContentGroup),
		MovementName: getID3TextFrame(id3tag, frameMovementName),
	}
	t.sanitize()
	return t, nil
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
// Frames outside the T*** family (MVNM, MVIN) are parsed by id3v2 as
// unknown frames and decoded here.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	switch f := frames[0].(type) {
	case id3v2.TextFrame:
		return f.Text
	case id3v2.UnknownFrame:
		return decodeRawTextFrame(f.Body)
	}
	return ""
}

// decodeRawTextFrame decodes a text frame body: one encoding byte followed
// by the text. Only ISO-8859-1 and UTF-8 bodies are handled.
func decodeRawTextFrame(body []byte) string {
	if len(body) < 2 {
		return ""
	}
	switch body[0] {
	case id3v2.EncodingUTF8.Key:
		return strings.TrimRight(string(body[1:]), "\x00")
	case id3v2.EncodingISO.Key:
		runes := make([]rune, 0, len(body)-1)
		for _, b := range body[1:] {
			if b == 0 {
				break
			}
			runes = append(runes, rune(b))
		}
		return string(runes)
	}
	return ""
}
