package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/movements/internal/composers"
	dbutil "github.com/llehouerou/movements/internal/db"
	"github.com/llehouerou/movements/internal/library"
	"github.com/llehouerou/movements/internal/movements"
	"github.com/llehouerou/movements/internal/segment"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), dbutil.InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testAlbum(t *testing.T, artist, name string, titles ...string) (*library.Album, []segment.Work) {
	t.Helper()
	album := library.NewAlbum(artist, name)
	for i, title := range titles {
		album.Tracks = append(album.Tracks, library.Track{
			Path:        "/music/" + name + "/" + string(rune('a'+i)) + ".flac",
			Title:       title,
			TrackNumber: i + 1,
		})
	}
	p := movements.NewParser(composers.Build([]string{"Beethoven", "Mozart"}))
	return album, segment.Segment(p, album.RawTitles())
}

func TestSaveAlbum_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	album, works := testAlbum(t, "Various", "Piano",
		"Beethoven: Für Elise",
		"Mozart: Eine kleine Nachtmusik - I. Allegro",
		"Mozart: Eine kleine Nachtmusik - II. Romanze",
	)
	require.NoError(t, s.SaveAlbum(ctx, album, works))

	got, err := s.Works(ctx, "various", "PIANO")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Für Elise", got[0].Title)
	assert.Equal(t, movements.ParseComposerColonWork, got[0].AnchorRule)
	require.Len(t, got[0].Movements, 1)
	assert.Equal(t, "/music/Piano/a.flac", got[0].Movements[0].Path)

	assert.Equal(t, "Eine kleine Nachtmusik", got[1].Title)
	require.Len(t, got[1].Movements, 2)
	assert.Equal(t, "I. Allegro", got[1].Movements[0].Title)
	assert.Equal(t, "II. Romanze", got[1].Movements[1].Title)
	assert.Equal(t, 2, got[1].Movements[1].SourceIndex)
}

func TestSaveAlbum_ReplacesPreviousResults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	album, works := testAlbum(t, "Orchestra", "Symphonies",
		"Symphony No. 5 - I. Allegro con brio",
		"Symphony No. 6 - I. Allegro ma non troppo",
	)
	require.NoError(t, s.SaveAlbum(ctx, album, works))

	album, works = testAlbum(t, "Orchestra", "Symphonies",
		"Symphony No. 5 - I. Allegro con brio",
		"Symphony No. 5 - II. Andante con moto",
	)
	require.NoError(t, s.SaveAlbum(ctx, album, works))

	got, err := s.Works(ctx, "Orchestra", "Symphonies")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Movements, 2)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Albums: 1, Works: 1, Movements: 2, Breaks: 0}, st)
}

func TestWorks_UnknownAlbum(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Works(context.Background(), "Nobody", "Nothing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStats_CountsBreaks(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a1, w1 := testAlbum(t, "A", "One", "Beethoven: Für Elise", "Mozart: Eine kleine Nachtmusik - I. Allegro")
	a2, w2 := testAlbum(t, "B", "Two", "Suite - Prelude", "Suite - Gigue")
	require.NoError(t, s.SaveAlbum(ctx, a1, w1))
	require.NoError(t, s.SaveAlbum(ctx, a2, w2))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Albums)
	assert.Equal(t, 3, st.Works)
	assert.Equal(t, 4, st.Movements)
	assert.Equal(t, 1, st.Breaks)
}

func TestSaveAlbum_CanceledContext(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	album, works := testAlbum(t, "A", "One", "Suite - Prelude")
	assert.Error(t, s.SaveAlbum(ctx, album, works))
}
