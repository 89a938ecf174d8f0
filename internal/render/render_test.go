package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cesargomez89/musicshelf/internal/domain"
)

func TestFormattedAlbums(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	err := r.FormattedAlbums([]domain.FormattedAlbum{
		{Title: "OK Computer", Artist: "Radiohead", Year: 1997, Format: "CD"},
		{Title: "Unknown Year", Artist: "Someone", Format: "vinyl"},
	})
	if err != nil {
		t.Fatalf("FormattedAlbums failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Album", "Artist", "Year", "Format", "OK Computer", "Radiohead", "1997", "CD", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).FormattedAlbums(nil); err != nil {
		t.Fatalf("FormattedAlbums failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No results.") {
		t.Errorf("Expected empty message, got %q", buf.String())
	}
}

func TestArtistCounts(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf).ArtistCounts([]domain.ArtistCount{
		{Artist: "Radiohead", Count: 2},
		{Artist: "Joni Mitchell", Count: 1},
	})
	if err != nil {
		t.Fatalf("ArtistCounts failed: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "Radiohead") > strings.Index(out, "Joni Mitchell") {
		t.Errorf("Expected ranking order to be kept:\n%s", out)
	}
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Stats(domain.Stats{Artists: 4, AlbumGenres: 12}); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"artists", "4", "album genres", "12"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	if err := r.Success("Added %s", "Blue"); err != nil {
		t.Fatalf("Success failed: %v", err)
	}
	if err := r.Title("Genres"); err != nil {
		t.Fatalf("Title failed: %v", err)
	}
	if err := r.Names("Genre", []string{"Folk"}); err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Added Blue", "Genres", "Folk"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}
