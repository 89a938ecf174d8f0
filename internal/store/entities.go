package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cesargomez89/musicshelf/internal/constants"
	"github.com/cesargomez89/musicshelf/internal/domain"
)

func (db *DB) UpsertArtist(name string) (int64, error) {
	return db.upsertName(constants.ArtistsTable, "name", "artist", name)
}

func (db *DB) FindArtistID(name string) (int64, error) {
	name = strings.TrimSpace(name)
	return db.findID("artist "+quote(name), `SELECT id FROM artists WHERE name = ?`, name)
}

func (db *DB) UpsertFormat(name string) (int64, error) {
	return db.upsertName(constants.FormatsTable, "format_name", "format", name)
}

func (db *DB) FindFormatID(name string) (int64, error) {
	name = strings.TrimSpace(name)
	return db.findID("format "+quote(name), `SELECT id FROM formats WHERE format_name = ?`, name)
}

func (db *DB) UpsertGenre(name string) (int64, error) {
	return db.upsertName(constants.GenresTable, "genre_name", "genre", name)
}

func (db *DB) FindGenreID(name string) (int64, error) {
	name = strings.TrimSpace(name)
	return db.findID("genre "+quote(name), `SELECT id FROM genres WHERE genre_name = ?`, name)
}

// UpsertAlbum resolves or creates the artist, then resolves or creates the
// album. existed reports that (title, artist) was already in the catalog.
func (db *DB) UpsertAlbum(title, artistName string, year int) (id int64, existed bool, err error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, false, fmt.Errorf("%w: empty album title", domain.ErrInvalidInput)
	}

	artistID, err := db.UpsertArtist(artistName)
	if err != nil {
		return 0, false, err
	}

	err = db.Get(&id, `SELECT id FROM albums WHERE title = ? AND artist_id = ?`, title, artistID)
	if err == nil {
		db.log.WithAlbum(title, artistName).Info("Album already exists")
		return id, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("failed to look up album %q: %w", title, err)
	}

	result, err := db.Exec(`INSERT INTO albums (title, artist_id, year) VALUES (?, ?, ?)`, title, artistID, year)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create album %q: %w", title, err)
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read album id: %w", err)
	}

	db.log.WithAlbum(title, artistName).Debug("Album added", "album_id", id, "year", year)
	return id, false, nil
}

// FindAlbumID looks an album up by title and artist. Without an artist it
// falls back to FindAlbumIDByTitle.
func (db *DB) FindAlbumID(ref domain.AlbumRef) (int64, error) {
	ref.Title = strings.TrimSpace(ref.Title)
	ref.Artist = strings.TrimSpace(ref.Artist)
	if ref.Artist == "" {
		return db.FindAlbumIDByTitle(ref.Title)
	}
	return db.findID("album "+quote(ref.String()), `
		SELECT albums.id FROM albums
		JOIN artists ON albums.artist_id = artists.id
		WHERE albums.title = ? AND artists.name = ?`, ref.Title, ref.Artist)
}

// FindAlbumIDByTitle looks an album up by title alone. It refuses to guess
// when several artists have an album with that title.
func (db *DB) FindAlbumIDByTitle(title string) (int64, error) {
	title = strings.TrimSpace(title)
	var ids []int64
	if err := db.Select(&ids, `SELECT id FROM albums WHERE title = ? ORDER BY id`, title); err != nil {
		return 0, fmt.Errorf("failed to look up album %q: %w", title, err)
	}
	switch len(ids) {
	case 0:
		return 0, fmt.Errorf("album %q: %w", title, domain.ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return 0, fmt.Errorf("album %q matches %d artists: %w", title, len(ids), domain.ErrAmbiguousTitle)
	}
}

// upsertName inserts name into a single unique-name table if absent and
// returns the row id either way.
func (db *DB) upsertName(table, column, kind, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty %s name", domain.ErrInvalidInput, kind)
	}

	query := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES (?)", table, column)
	if _, err := db.Exec(query, name); err != nil {
		return 0, fmt.Errorf("failed to create %s %q: %w", kind, name, err)
	}

	query = fmt.Sprintf("SELECT id FROM %s WHERE %s = ?", table, column)
	return db.findID(kind+" "+quote(name), query, name)
}

func (db *DB) findID(what, query string, args ...interface{}) (int64, error) {
	var id int64
	err := db.Get(&id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up %s: %w", what, err)
	}
	return id, nil
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
