// Package tags reads the fields movement parsing needs from music files and
// writes the resulting work and movement back.
// It covers MP3, FLAC, Ogg/Opus, and M4A.
package tags

import (
	"strconv"
	"strings"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// Vorbis comment / property-map keys.
const (
	keyComposer      = "COMPOSER"
	keyWork          = "WORK"
	keyMovementName  = "MOVEMENTNAME"
	keyMovement      = "MOVEMENT"
	keyMovementTotal = "MOVEMENTTOTAL"
)

// ID3v2 frames.
const (
	frameComposer     = "TCOM"
	frameContentGroup = "TIT1" // work, as written by iTunes and Picard
	frameMovementName = "MVNM"
	frameMovementNum  = "MVIN"
)

// Tag holds the metadata of one track.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Composer    string

	TrackNumber int
	TotalTracks int
	DiscNumber  int
	TotalDiscs  int

	// Existing work/movement tags, if any
	Work         string
	MovementName string
}

// MovementTag is what WriteMovement stores in a file.
type MovementTag struct {
	Work     string
	Movement string
	Index    int // 1-based position in the work, 0 to omit
	Total    int // number of movements in the work, 0 to omit
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	ext := strings.ToLower(path)
	if idx := strings.LastIndex(ext, "."); idx >= 0 {
		ext = ext[idx:]
	} else {
		return false
	}
	switch ext {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4:
		return true
	}
	return false
}

// sanitize trims stray whitespace and NUL padding some taggers leave behind.
func (t *Tag) sanitize() {
	clean := func(s string) string {
		return strings.TrimSpace(strings.Trim(s, "\x00"))
	}
	t.Title = clean(t.Title)
	t.Artist = clean(t.Artist)
	t.AlbumArtist = clean(t.AlbumArtist)
	t.Album = clean(t.Album)
	t.Composer = clean(t.Composer)
	t.Work = clean(t.Work)
	t.MovementName = clean(t.MovementName)
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// getInt returns the first value as an integer, or 0 if not found or invalid.
func (t taglibTags) getInt(key string) int {
	if values, ok := t[key]; ok && len(values) > 0 {
		if n, err := strconv.Atoi(values[0]); err == nil {
			return n
		}
	}
	return 0
}

// parseNumberPair parses a track/disc number that may be "N" or "N/M" format.
func (t taglibTags) parseNumberPair(key string) (num, total int) {
	return parseTrackNumber(t.get(key))
}

// parseTrackNumber parses a number string like "5" or "5/10".
func parseTrackNumber(s string) (num, total int) {
	if s == "" {
		return 0, 0
	}
	parts := strings.SplitN(s, "/", 2)
	num, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		total, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return num, total
}

// numberPair formats n and total as "n/total", or "n" when total is unknown.
func numberPair(n, total int) string {
	if total > 0 {
		return strconv.Itoa(n) + "/" + strconv.Itoa(total)
	}
	return strconv.Itoa(n)
}
