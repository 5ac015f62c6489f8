package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

// tagMP3 writes the given text frames to an MP3 file.
func tagMP3(t *testing.T, path string, frames map[string]string) {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to open MP3 for tagging: %v", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	for id, value := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("failed to save ID3 tags: %v", err)
	}
}

func TestParseTrackNumber(t *testing.T) {
	tests := []struct {
		input     string
		wantNum   int
		wantTotal int
	}{
		{"", 0, 0},
		{"5", 5, 0},
		{"5/10", 5, 10},
		{" 7 / 9 ", 7, 9},
		{"invalid", 0, 0},
		{"5/invalid", 5, 0},
		{"invalid/10", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			num, total := parseTrackNumber(tt.input)
			if num != tt.wantNum {
				t.Errorf("parseTrackNumber(%q) num = %d, want %d", tt.input, num, tt.wantNum)
			}
			if total != tt.wantTotal {
				t.Errorf("parseTrackNumber(%q) total = %d, want %d", tt.input, total, tt.wantTotal)
			}
		})
	}
}

func TestReadMP3WithID3v2Fallback(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, map[string]string{
		"TIT2": "Symphony No. 9 - II. Largo",
		"TPE1": "Czech Philharmonic",
		"TALB": "New World",
		"TCOM": "Antonín Dvořák",
		"TRCK": "2/4",
		"TPOS": "1/1",
	})

	got, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback() error = %v", err)
	}

	if got.Title != "Symphony No. 9 - II. Largo" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Composer != "Antonín Dvořák" {
		t.Errorf("Composer = %q", got.Composer)
	}
	if got.AlbumArtist != "Czech Philharmonic" {
		t.Errorf("AlbumArtist = %q, want artist fallback", got.AlbumArtist)
	}
	if got.TrackNumber != 2 || got.TotalTracks != 4 {
		t.Errorf("track = %d/%d, want 2/4", got.TrackNumber, got.TotalTracks)
	}
	if got.DiscNumber != 1 || got.TotalDiscs != 1 {
		t.Errorf("disc = %d/%d, want 1/1", got.DiscNumber, got.TotalDiscs)
	}
}

func TestReadMP3WithID3v2Fallback_TitleFromFilename(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "untitled.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, map[string]string{"TALB": "Album"})

	got, err := readMP3WithID3v2Fallback(mp3Path)
	if err != nil {
		t.Fatalf("readMP3WithID3v2Fallback() error = %v", err)
	}
	if got.Title != "untitled.mp3" {
		t.Errorf("Title = %q, want filename", got.Title)
	}
}

func TestRead_MP3(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "track.mp3")
	createMinimalMP3(t, mp3Path)
	tagMP3(t, mp3Path, map[string]string{
		"TIT2": "Brahms: Symphony No. 4 - Allegro non troppo",
		"TPE1": "Wiener Philharmoniker",
		"TPE2": "Carlos Kleiber",
		"TALB": "Symphony No. 4",
		"TCOM": "Johannes Brahms",
		"TIT1": "Symphony No. 4",
		"MVNM": "Allegro non troppo",
		"TRCK": "1/4",
	})

	got, err := Read(mp3Path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.Composer != "Johannes Brahms" {
		t.Errorf("Composer = %q", got.Composer)
	}
	if got.AlbumArtist != "Carlos Kleiber" {
		t.Errorf("AlbumArtist = %q", got.AlbumArtist)
	}
	if got.Work != "Symphony No. 4" {
		t.Errorf("Work = %q", got.Work)
	}
	if got.MovementName != "Allegro non troppo" {
		t.Errorf("MovementName = %q", got.MovementName)
	}
	if got.TrackNumber != 1 {
		t.Errorf("TrackNumber = %d", got.TrackNumber)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Error("expected error for missing file")
	}
}
