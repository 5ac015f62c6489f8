package tags

import (
	"path/filepath"

	"go.senan.xyz/taglib"
)

// readWithTaglib reads metadata using TagLib when dhowden/tag fails.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	title := tags.get(taglib.Title)
	if title == "" {
		title = filepath.Base(path)
	}

	artist := tags.get(taglib.Artist)
	albumArtist := tags.get(taglib.AlbumArtist)
	if albumArtist == "" {
		albumArtist = artist
	}

	trackNum, trackTotal := tags.parseNumberPair(taglib.TrackNumber)
	discNum, discTotal := tags.parseNumberPair(taglib.DiscNumber)
	if trackTotal == 0 {
		trackTotal = tags.getInt("TOTALTRACKS")
	}
	if discTotal == 0 {
		discTotal = tags.getInt("TOTALDISCS")
	}

	t := &Tag{
		Path:        path,
		Title:       title,
		Artist:      artist,
		AlbumArtist: albumArtist,
		Album:       tags.get(taglib.Album),
		TrackNumber: trackNum,
		TotalTracks: trackTotal,
		DiscNumber:  discNum,
		TotalDiscs:  discTotal,
	}
	applyTaglibExtended(tags, t)

	t.sanitize()
	return t, nil
}

// readTaglibExtendedTags reads composer, work and movement through TagLib's
// property map, which normalises MP4 atoms and Vorbis comments to the same keys.
func readTaglibExtendedTags(path string, t *Tag) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return
	}
	applyTaglibExtended(taglibTags(rawTags), t)
}

func applyTaglibExtended(tags taglibTags, t *Tag) {
	if t.Composer == "" {
		t.Composer = tags.get(keyComposer)
	}
	t.Work = tags.get(keyWork)
	t.MovementName = tags.get(keyMovementName)
}
