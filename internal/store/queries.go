package store

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cesargomez89/musicshelf/internal/domain"
)

// formattedAlbumsSelect joins every album with its artist and each of its
// formats. Albums without a format produce no rows.
const formattedAlbumsSelect = `
	SELECT albums.title AS title, artists.name AS artist, albums.year AS year, formats.format_name AS format_name
	FROM album_formats
	JOIN albums ON album_formats.album_id = albums.id
	JOIN artists ON albums.artist_id = artists.id
	JOIN formats ON album_formats.format_id = formats.id`

const formattedAlbumsOrder = ` ORDER BY albums.id, formats.id`

func (db *DB) ListArtists() ([]domain.Artist, error) {
	artists := []domain.Artist{}
	err := db.Select(&artists, `SELECT id, name FROM artists ORDER BY id`)
	return artists, err
}

func (db *DB) ListAlbums() ([]domain.Album, error) {
	albums := []domain.Album{}
	err := db.Select(&albums, `SELECT id, title, artist_id, year FROM albums ORDER BY id`)
	return albums, err
}

func (db *DB) ListFormats() ([]domain.Format, error) {
	formats := []domain.Format{}
	err := db.Select(&formats, `SELECT id, format_name FROM formats ORDER BY id`)
	return formats, err
}

func (db *DB) ListGenres() ([]domain.Genre, error) {
	genres := []domain.Genre{}
	err := db.Select(&genres, `SELECT id, genre_name FROM genres ORDER BY id`)
	return genres, err
}

func (db *DB) ListFormattedAlbums() ([]domain.FormattedAlbum, error) {
	return selectFormatted(db, formattedAlbumsSelect+formattedAlbumsOrder)
}

func (db *DB) AlbumsByFormat(format string) ([]domain.FormattedAlbum, error) {
	query := formattedAlbumsSelect + ` WHERE formats.format_name = ?` + formattedAlbumsOrder
	return selectFormatted(db, query, strings.TrimSpace(format))
}

func (db *DB) AlbumsByArtist(artist string) ([]domain.FormattedAlbum, error) {
	query := formattedAlbumsSelect + ` WHERE artists.name = ?` + formattedAlbumsOrder
	return selectFormatted(db, query, strings.TrimSpace(artist))
}

// AlbumsByGenre yields one row per format of every album tagged with genre.
func (db *DB) AlbumsByGenre(genre string) ([]domain.FormattedAlbum, error) {
	query := formattedAlbumsSelect + `
	JOIN album_genres ON albums.id = album_genres.album_id
	JOIN genres ON album_genres.genre_id = genres.id
	WHERE genres.genre_name = ?` + formattedAlbumsOrder
	return selectFormatted(db, query, strings.TrimSpace(genre))
}

// AlbumsBetweenYears matches start <= year <= end.
func (db *DB) AlbumsBetweenYears(start, end int) ([]domain.FormattedAlbum, error) {
	query := formattedAlbumsSelect + ` WHERE albums.year BETWEEN ? AND ?` + formattedAlbumsOrder
	return selectFormatted(db, query, start, end)
}

// GenresForAlbum returns the genre names of every album with this title.
func (db *DB) GenresForAlbum(title string) ([]string, error) {
	genres := []string{}
	err := db.Select(&genres, `
		SELECT genres.genre_name
		FROM albums
		JOIN album_genres ON albums.id = album_genres.album_id
		JOIN genres ON album_genres.genre_id = genres.id
		WHERE albums.title = ?
		ORDER BY album_genres.rowid`, strings.TrimSpace(title))
	return genres, err
}

// GenresForAlbumRef is GenresForAlbum narrowed to one artist when known.
func (db *DB) GenresForAlbumRef(ref domain.AlbumRef) ([]string, error) {
	ref.Title = strings.TrimSpace(ref.Title)
	ref.Artist = strings.TrimSpace(ref.Artist)
	if ref.Artist == "" {
		return db.GenresForAlbum(ref.Title)
	}
	genres := []string{}
	err := db.Select(&genres, `
		SELECT genres.genre_name
		FROM albums
		JOIN artists ON albums.artist_id = artists.id
		JOIN album_genres ON albums.id = album_genres.album_id
		JOIN genres ON album_genres.genre_id = genres.id
		WHERE albums.title = ? AND artists.name = ?
		ORDER BY album_genres.rowid`, ref.Title, ref.Artist)
	return genres, err
}

// ArtistAlbumCount counts albums, not formats. Unknown artists count 0.
func (db *DB) ArtistAlbumCount(artist string) (int, error) {
	var count int
	err := db.Get(&count, `
		SELECT COUNT(albums.id)
		FROM albums
		JOIN artists ON albums.artist_id = artists.id
		WHERE artists.name = ?`, strings.TrimSpace(artist))
	return count, err
}

// ArtistAlbumCountsDesc ranks artists by album count. Ties are ordered by name.
func (db *DB) ArtistAlbumCountsDesc() ([]domain.ArtistCount, error) {
	counts := []domain.ArtistCount{}
	err := db.Select(&counts, `
		SELECT artists.name AS artist, COUNT(albums.id) AS album_count
		FROM albums
		JOIN artists ON albums.artist_id = artists.id
		GROUP BY artists.id
		ORDER BY album_count DESC, artists.name ASC`)
	return counts, err
}

func (db *DB) CatalogStats() (domain.Stats, error) {
	var stats domain.Stats
	err := db.Get(&stats, `
		SELECT
			(SELECT COUNT(*) FROM artists) AS artists,
			(SELECT COUNT(*) FROM albums) AS albums,
			(SELECT COUNT(*) FROM formats) AS formats,
			(SELECT COUNT(*) FROM genres) AS genres,
			(SELECT COUNT(*) FROM album_formats) AS album_formats,
			(SELECT COUNT(*) FROM album_genres) AS album_genres`)
	return stats, err
}

func selectFormatted(q sqlx.Queryer, query string, args ...interface{}) ([]domain.FormattedAlbum, error) {
	rows := []domain.FormattedAlbum{}
	err := sqlx.Select(q, &rows, query, args...)
	return rows, err
}
