package domain

import (
	"strings"
)

// Artist is a performer referenced by one or more albums.
type Artist struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Album is a release owned by the user. (Title, ArtistID) is unique.
type Album struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	ArtistID int64  `json:"artist_id" db:"artist_id"`
	Year     int    `json:"year" db:"year"`
}

// Format is a medium an album is owned on, e.g. "CD" or "vinyl".
type Format struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"format_name" db:"format_name"`
}

// Genre is a label attached to albums.
type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"genre_name" db:"genre_name"`
}

// FormattedAlbum is one album joined with its artist and one of its formats.
// An album owned on N formats yields N rows.
type FormattedAlbum struct {
	Title  string `json:"title" db:"title"`
	Artist string `json:"artist" db:"artist"`
	Year   int    `json:"year" db:"year"`
	Format string `json:"format" db:"format_name"`
}

// ArtistCount is the number of albums owned by one artist.
type ArtistCount struct {
	Artist string `json:"artist" db:"artist"`
	Count  int    `json:"count" db:"album_count"`
}

// Stats summarises table sizes of the catalog.
type Stats struct {
	Artists      int `json:"artists" db:"artists"`
	Albums       int `json:"albums" db:"albums"`
	Formats      int `json:"formats" db:"formats"`
	Genres       int `json:"genres" db:"genres"`
	AlbumFormats int `json:"album_formats" db:"album_formats"`
	AlbumGenres  int `json:"album_genres" db:"album_genres"`
}

// AlbumRef identifies an album by title and, when known, artist name.
// An empty Artist means the lookup falls back to title only.
type AlbumRef struct {
	Title  string
	Artist string
}

func (r AlbumRef) String() string {
	if r.Artist == "" {
		return r.Title
	}
	return r.Title + " by " + r.Artist
}

// Entry is one album of a bulk load: it is upserted, linked to the load's
// format and associated with its genres.
type Entry struct {
	Title  string   `json:"title" yaml:"title"`
	Artist string   `json:"artist" yaml:"artist"`
	Year   int      `json:"year" yaml:"year"`
	Genres []string `json:"genres" yaml:"genres"`
}

// Ref returns the (title, artist) reference of the entry.
func (e Entry) Ref() AlbumRef {
	return AlbumRef{Title: e.Title, Artist: e.Artist}
}

// Normalize trims surrounding whitespace and drops blank or repeated genres.
func (e *Entry) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Artist = strings.TrimSpace(e.Artist)
	e.Genres = CleanNames(e.Genres)
}

// LinkReport describes the outcome of associating an album with genres.
type LinkReport struct {
	Added    []string
	Existing []string
}

// SplitGenres splits a separated genre list such as "Rock, Pop" into clean names.
func SplitGenres(s string, seps string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	return CleanNames(parts)
}

// CleanNames trims names and removes blanks and exact duplicates, keeping order.
func CleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Batch is a group of entries owned on the same format.
type Batch struct {
	Format  string  `json:"format" yaml:"format"`
	Entries []Entry `json:"albums" yaml:"albums"`
}
