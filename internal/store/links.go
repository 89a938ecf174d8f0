package store

import (
	"errors"
	"fmt"

	"github.com/cesargomez89/musicshelf/internal/domain"
)

// LinkAlbumFormat records that the album is owned on format, creating the
// format if needed. added is false when the pair already existed.
func (db *DB) LinkAlbumFormat(ref domain.AlbumRef, format string) (added bool, err error) {
	albumID, err := db.FindAlbumID(ref)
	if err != nil {
		return false, fmt.Errorf("failed to link format %q: %w", format, err)
	}
	formatID, err := db.UpsertFormat(format)
	if err != nil {
		return false, err
	}

	result, err := db.Exec(`INSERT OR IGNORE INTO album_formats (album_id, format_id) VALUES (?, ?)`, albumID, formatID)
	if err != nil {
		return false, fmt.Errorf("failed to link %s to format %q: %w", ref, format, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		db.log.WithAlbum(ref.Title, ref.Artist).Debug("Album already owned on format", "format", format)
	}
	return rows > 0, nil
}

// LinkAlbumGenres associates the album with every genre in genres, creating
// genres as needed. Pairs that already exist are reported, not treated as
// errors, and do not stop the rest of the batch.
func (db *DB) LinkAlbumGenres(ref domain.AlbumRef, genres []string) (domain.LinkReport, error) {
	var report domain.LinkReport

	albumID, err := db.FindAlbumID(ref)
	if err != nil {
		return report, fmt.Errorf("failed to link genres: %w", err)
	}

	log := db.log.WithAlbum(ref.Title, ref.Artist)
	for _, name := range domain.CleanNames(genres) {
		genreID, err := db.UpsertGenre(name)
		if err != nil {
			return report, err
		}

		result, err := db.Exec(`INSERT OR IGNORE INTO album_genres (album_id, genre_id) VALUES (?, ?)`, albumID, genreID)
		if err != nil {
			return report, fmt.Errorf("failed to link %s to genre %q: %w", ref, name, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return report, err
		}
		if rows == 0 {
			log.Info("Album already associated with genre", "genre", name)
			report.Existing = append(report.Existing, name)
			continue
		}
		report.Added = append(report.Added, name)
	}

	return report, nil
}

// UnlinkAlbumGenre removes one album-genre pair. Missing albums, genres or
// pairs are a no-op.
func (db *DB) UnlinkAlbumGenre(ref domain.AlbumRef, genre string) error {
	return db.unlink(ref, genre, db.FindGenreID,
		`DELETE FROM album_genres WHERE album_id = ? AND genre_id = ?`)
}

// UnlinkAlbumFormat removes one album-format pair. Missing albums, formats
// or pairs are a no-op.
func (db *DB) UnlinkAlbumFormat(ref domain.AlbumRef, format string) error {
	return db.unlink(ref, format, db.FindFormatID,
		`DELETE FROM album_formats WHERE album_id = ? AND format_id = ?`)
}

func (db *DB) unlink(ref domain.AlbumRef, name string, find func(string) (int64, error), query string) error {
	albumID, err := db.FindAlbumID(ref)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	otherID, err := find(name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	result, err := db.Exec(query, albumID, otherID)
	if err != nil {
		return fmt.Errorf("failed to unlink %s from %q: %w", ref, name, err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		db.log.WithAlbum(ref.Title, ref.Artist).Info("Association removed", "name", name)
	}
	return nil
}
