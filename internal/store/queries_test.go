package store

import (
	"reflect"
	"testing"

	"github.com/cesargomez89/musicshelf/internal/domain"
)

type fixtureAlbum struct {
	title, artist string
	year          int
	formats       []string
	genres        []string
}

func seedCatalog(t *testing.T, db *DB, albums []fixtureAlbum) {
	t.Helper()
	for _, a := range albums {
		ref := domain.AlbumRef{Title: a.title, Artist: a.artist}
		if _, _, err := db.UpsertAlbum(a.title, a.artist, a.year); err != nil {
			t.Fatalf("UpsertAlbum(%s) failed: %v", ref, err)
		}
		for _, f := range a.formats {
			if _, err := db.LinkAlbumFormat(ref, f); err != nil {
				t.Fatalf("LinkAlbumFormat(%s, %s) failed: %v", ref, f, err)
			}
		}
		if _, err := db.LinkAlbumGenres(ref, a.genres); err != nil {
			t.Fatalf("LinkAlbumGenres(%s) failed: %v", ref, err)
		}
	}
}

var testCatalog = []fixtureAlbum{
	{"OK Computer", "Radiohead", 1997, []string{"CD", "vinyl"}, []string{"Rock", "Alternative"}},
	{"Kid A", "Radiohead", 2000, []string{"CD"}, []string{"Electronic"}},
	{"Blue", "Joni Mitchell", 1971, []string{"vinyl"}, []string{"Folk"}},
	{"Rumours", "Fleetwood Mac", 1977, []string{"cassette"}, []string{"Rock"}},
	{"Unformatted", "Nobody Special", 2005, nil, []string{"Rock"}},
}

func TestScenario_OKComputer(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, []fixtureAlbum{
		{"OK Computer", "Radiohead", 1997, []string{"CD"}, []string{"Rock", "Alternative"}},
	})

	rows, err := db.AlbumsByGenre("Rock")
	if err != nil {
		t.Fatalf("AlbumsByGenre failed: %v", err)
	}
	want := []domain.FormattedAlbum{{Title: "OK Computer", Artist: "Radiohead", Year: 1997, Format: "CD"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Expected %v, got %v", want, rows)
	}

	id, err := db.FindAlbumID(domain.AlbumRef{Title: "OK Computer", Artist: "Radiohead"})
	if err != nil {
		t.Fatalf("FindAlbumID failed: %v", err)
	}
	again, existed, err := db.UpsertAlbum("OK Computer", "Radiohead", 1997)
	if err != nil {
		t.Fatalf("UpsertAlbum failed: %v", err)
	}
	if !existed || again != id {
		t.Errorf("Expected re-insert to return original id %d, got %d (existed=%v)", id, again, existed)
	}
	if n := countRows(t, db, "albums"); n != 1 {
		t.Errorf("Expected exactly 1 album row, got %d", n)
	}
}

func TestListFormattedAlbums(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, testCatalog)

	rows, err := db.ListFormattedAlbums()
	if err != nil {
		t.Fatalf("ListFormattedAlbums failed: %v", err)
	}
	// OK Computer twice, Kid A, Blue, Rumours; the unformatted album yields nothing.
	if len(rows) != 5 {
		t.Fatalf("Expected 5 rows, got %d: %v", len(rows), rows)
	}
	if rows[0].Title != "OK Computer" || rows[1].Title != "OK Computer" {
		t.Errorf("Expected one row per format of OK Computer first, got %v", rows[:2])
	}
	for _, r := range rows {
		if r.Title == "Unformatted" {
			t.Errorf("Album without formats must not appear: %v", r)
		}
	}
}

func TestListTables(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, testCatalog)

	artists, err := db.ListArtists()
	if err != nil {
		t.Fatalf("ListArtists failed: %v", err)
	}
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	wantArtists := []string{"Radiohead", "Joni Mitchell", "Fleetwood Mac", "Nobody Special"}
	if !reflect.DeepEqual(names, wantArtists) {
		t.Errorf("Expected artists in insertion order %v, got %v", wantArtists, names)
	}

	albums, err := db.ListAlbums()
	if err != nil {
		t.Fatalf("ListAlbums failed: %v", err)
	}
	if len(albums) != len(testCatalog) {
		t.Errorf("Expected %d albums, got %d", len(testCatalog), len(albums))
	}
	if albums[0].ArtistID != artists[0].ID {
		t.Errorf("Expected first album to reference first artist")
	}

	formats, err := db.ListFormats()
	if err != nil {
		t.Fatalf("ListFormats failed: %v", err)
	}
	if len(formats) != 3 || formats[0].Name != "CD" {
		t.Errorf("Unexpected formats %v", formats)
	}

	genres, err := db.ListGenres()
	if err != nil {
		t.Fatalf("ListGenres failed: %v", err)
	}
	if len(genres) != 4 {
		t.Errorf("Expected 4 genres, got %v", genres)
	}
}

func TestAlbumsByFormatAndArtist(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, testCatalog)

	vinyl, err := db.AlbumsByFormat("vinyl")
	if err != nil {
		t.Fatalf("AlbumsByFormat failed: %v", err)
	}
	if len(vinyl) != 2 {
		t.Errorf("Expected 2 vinyl rows, got %v", vinyl)
	}
	for _, r := range vinyl {
		if r.Format != "vinyl" {
			t.Errorf("Unexpected format in %v", r)
		}
	}

	radiohead, err := db.AlbumsByArtist("Radiohead")
	if err != nil {
		t.Fatalf("AlbumsByArtist failed: %v", err)
	}
	if len(radiohead) != 3 {
		t.Errorf("Expected 3 Radiohead rows (one per format), got %v", radiohead)
	}

	none, err := db.AlbumsByArtist("Nobody")
	if err != nil {
		t.Fatalf("AlbumsByArtist failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("Expected empty non-nil result, got %#v", none)
	}
}

func TestAlbumsByGenre_OneRowPerFormat(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, testCatalog)

	rows, err := db.AlbumsByGenre("Rock")
	if err != nil {
		t.Fatalf("AlbumsByGenre failed: %v", err)
	}
	want := []domain.FormattedAlbum{
		{Title: "OK Computer", Artist: "Radiohead", Year: 1997, Format: "CD"},
		{Title: "OK Computer", Artist: "Radiohead", Year: 1997, Format: "vinyl"},
		{Title: "Rumours", Artist: "Fleetwood Mac", Year: 1977, Format: "cassette"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Expected %v, got %v", want, rows)
	}
}

func TestAlbumsBetweenYears(t *testing.T) {
	db := setupTestDB(t)

	empty, err := db.AlbumsBetweenYears(2000, 2010)
	if err != nil {
		t.Fatalf("AlbumsBetweenYears on empty catalog failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty result, got %v", empty)
	}

	seedCatalog(t, db, testCatalog)

	tests := []struct {
		name       string
		start, end int
		titles     []string
	}{
		{"inclusive bounds", 1971, 1977, []string{"Blue", "Rumours"}},
		{"single year", 2000, 2000, []string{"Kid A"}},
		{"nothing", 1950, 1960, []string{}},
		{"inverted range", 2000, 1990, []string{}},
		{"everything formatted", 1900, 2100, []string{"OK Computer", "OK Computer", "Kid A", "Blue", "Rumours"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := db.AlbumsBetweenYears(tt.start, tt.end)
			if err != nil {
				t.Fatalf("AlbumsBetweenYears failed: %v", err)
			}
			titles := []string{}
			for _, r := range rows {
				if r.Year < tt.start || r.Year > tt.end {
					t.Errorf("Row %v outside [%d, %d]", r, tt.start, tt.end)
				}
				titles = append(titles, r.Title)
			}
			if !reflect.DeepEqual(titles, tt.titles) {
				t.Errorf("Expected %v, got %v", tt.titles, titles)
			}
		})
	}
}

func TestGenresForAlbumRef(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, []fixtureAlbum{
		{"Greatest Hits", "Queen", 1981, []string{"CD"}, []string{"Rock"}},
		{"Greatest Hits", "ABBA", 1975, []string{"CD"}, []string{"Pop"}},
	})

	genres, err := db.GenresForAlbumRef(domain.AlbumRef{Title: "Greatest Hits", Artist: "ABBA"})
	if err != nil {
		t.Fatalf("GenresForAlbumRef failed: %v", err)
	}
	if !reflect.DeepEqual(genres, []string{"Pop"}) {
		t.Errorf("Expected [Pop], got %v", genres)
	}

	all, err := db.GenresForAlbumRef(domain.AlbumRef{Title: "Greatest Hits"})
	if err != nil {
		t.Fatalf("GenresForAlbumRef failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected title-only lookup to return both genres, got %v", all)
	}

	none, err := db.GenresForAlbum("Unknown")
	if err != nil {
		t.Fatalf("GenresForAlbum failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no genres, got %v", none)
	}
}

func TestArtistAlbumCount(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, testCatalog)

	count, err := db.ArtistAlbumCount("Radiohead")
	if err != nil {
		t.Fatalf("ArtistAlbumCount failed: %v", err)
	}
	// OK Computer counts once despite two formats.
	if count != 2 {
		t.Errorf("Expected 2 Radiohead albums, got %d", count)
	}

	count, err = db.ArtistAlbumCount("Unknown Artist")
	if err != nil {
		t.Fatalf("ArtistAlbumCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 for unknown artist, got %d", count)
	}
}

func TestArtistAlbumCountsDesc(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, testCatalog)

	counts, err := db.ArtistAlbumCountsDesc()
	if err != nil {
		t.Fatalf("ArtistAlbumCountsDesc failed: %v", err)
	}
	if len(counts) != 4 {
		t.Fatalf("Expected 4 artists, got %v", counts)
	}
	if counts[0] != (domain.ArtistCount{Artist: "Radiohead", Count: 2}) {
		t.Errorf("Expected Radiohead first, got %v", counts[0])
	}
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[i-1].Count {
			t.Errorf("Counts not non-increasing at %d: %v", i, counts)
		}
		if counts[i].Count == counts[i-1].Count && counts[i].Artist < counts[i-1].Artist {
			t.Errorf("Ties not ordered by name at %d: %v", i, counts)
		}
	}
}

func TestCatalogStats(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db, testCatalog)

	stats, err := db.CatalogStats()
	if err != nil {
		t.Fatalf("CatalogStats failed: %v", err)
	}
	want := domain.Stats{Artists: 4, Albums: 5, Formats: 3, Genres: 4, AlbumFormats: 5, AlbumGenres: 6}
	if stats != want {
		t.Errorf("Expected %+v, got %+v", want, stats)
	}
}
