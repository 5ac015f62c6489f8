// Package library discovers music files, reads their tags and groups them
// into albums ready for movement segmentation.
package library

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/llehouerou/movements/internal/segment"
	"github.com/llehouerou/movements/internal/tags"
)

// Track is one tagged music file.
type Track struct {
	Path        string
	Title       string
	Composer    string
	DiscNumber  int
	TrackNumber int
}

// Album is an ordered list of tracks sharing album artist and album title.
type Album struct {
	Artist string
	Name   string
	Tracks []Track

	key string
}

// NewAlbum returns an empty album keyed by artist and name.
func NewAlbum(artist, name string) *Album {
	return &Album{Artist: artist, Name: name, key: AlbumKey(artist, name)}
}

// Key identifies the album across scans.
func (a *Album) Key() string { return a.key }

// RawTitles returns the album's tracks as segmentation input.
// SourceIndex is the track's position within the album.
func (a *Album) RawTitles() []segment.RawTitle {
	out := make([]segment.RawTitle, len(a.Tracks))
	for i, t := range a.Tracks {
		out[i] = segment.RawTitle{Text: t.Title, Composer: t.Composer, SourceIndex: i}
	}
	return out
}

// Catalog is the result of a scan.
type Catalog struct {
	Albums []*Album
}

// Composers returns every non-empty composer string seen across the catalog,
// one entry per track.
func (c *Catalog) Composers() []string {
	var out []string
	for _, a := range c.Albums {
		for _, t := range a.Tracks {
			if t.Composer != "" {
				out = append(out, t.Composer)
			}
		}
	}
	return out
}

// SegmentInput converts the catalog into segmentation albums.
func (c *Catalog) SegmentInput() []segment.Album {
	out := make([]segment.Album, len(c.Albums))
	for i, a := range c.Albums {
		out[i] = segment.Album{Key: a.Key(), Tracks: a.RawTitles()}
	}
	return out
}

// TrackCount returns the number of tracks in the catalog.
func (c *Catalog) TrackCount() int {
	n := 0
	for _, a := range c.Albums {
		n += len(a.Tracks)
	}
	return n
}

// AlbumKey returns the grouping key for an album artist and album title.
func AlbumKey(artist, album string) string {
	return NormalizeTitle(artist) + "\x00" + NormalizeTitle(album)
}

// buildCatalog groups tagged files into albums.
// Files without an album tag are grouped by directory.
func buildCatalog(infos []*tags.Tag) *Catalog {
	byKey := make(map[string]*Album)
	var albums []*Album

	for _, info := range infos {
		artist, name := info.AlbumArtist, info.Album
		var key string
		if name == "" {
			dir := filepath.Dir(info.Path)
			artist, name = "", filepath.Base(dir)
			key = "dir:" + dir
		} else {
			key = AlbumKey(artist, name)
		}

		a, ok := byKey[key]
		if !ok {
			a = &Album{Artist: artist, Name: name, key: key}
			byKey[key] = a
			albums = append(albums, a)
		}
		a.Tracks = append(a.Tracks, Track{
			Path:        info.Path,
			Title:       info.Title,
			Composer:    info.Composer,
			DiscNumber:  info.DiscNumber,
			TrackNumber: info.TrackNumber,
		})
	}

	for _, a := range albums {
		sort.SliceStable(a.Tracks, func(i, j int) bool {
			ti, tj := a.Tracks[i], a.Tracks[j]
			if ti.DiscNumber != tj.DiscNumber {
				return ti.DiscNumber < tj.DiscNumber
			}
			if ti.TrackNumber != tj.TrackNumber {
				return ti.TrackNumber < tj.TrackNumber
			}
			return ti.Path < tj.Path
		})
	}
	sort.SliceStable(albums, func(i, j int) bool {
		ai, aj := strings.ToLower(albums[i].Artist), strings.ToLower(albums[j].Artist)
		if ai != aj {
			return ai < aj
		}
		ni, nj := strings.ToLower(albums[i].Name), strings.ToLower(albums[j].Name)
		if ni != nj {
			return ni < nj
		}
		return albums[i].key < albums[j].key
	})

	return &Catalog{Albums: albums}
}
