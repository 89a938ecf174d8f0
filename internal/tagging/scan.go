package tagging

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/cesargomez89/musicshelf/internal/constants"
	"github.com/cesargomez89/musicshelf/internal/domain"
	"github.com/cesargomez89/musicshelf/internal/logger"
)

// ScanReport counts what a directory scan saw.
type ScanReport struct {
	Files    int
	Tagged   int
	Untagged int
	Failed   int
}

type albumKey struct {
	title  string
	artist string
}

// Scanner turns a directory of audio files into bulk-load entries, one per
// (album, album artist).
type Scanner struct {
	Logger *logger.Logger
}

func NewScanner(log *logger.Logger) *Scanner {
	if log == nil {
		log = logger.Discard()
	}
	return &Scanner{Logger: log.WithComponent("scanner")}
}

// Scan walks root recursively. Unreadable files are logged and counted, not
// fatal. Entries come back in the order their first track was found.
func (s *Scanner) Scan(root string) ([]domain.Entry, ScanReport, error) {
	var report ScanReport
	entries := []domain.Entry{}
	index := make(map[albumKey]int)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSupported(path) {
			return nil
		}
		report.Files++

		tag, err := ReadTag(path)
		if err != nil {
			s.Logger.Warn("Failed to read tags", "path", path, "error", err)
			report.Failed++
			return nil
		}
		if tag.Album == "" || tag.AlbumArtist == "" {
			s.Logger.Debug("Skipping untagged file", "path", path)
			report.Untagged++
			return nil
		}
		report.Tagged++

		key := albumKey{title: tag.Album, artist: tag.AlbumArtist}
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, domain.Entry{Title: tag.Album, Artist: tag.AlbumArtist})
		}
		mergeTag(&entries[i], tag)
		return nil
	})
	if err != nil {
		return nil, report, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	s.Logger.Info("Scan finished",
		"root", root,
		"files", report.Files,
		"albums", len(entries),
		"untagged", report.Untagged,
		"failed", report.Failed,
	)
	return entries, report, nil
}

// mergeTag folds one track into its album entry: the first known year wins
// and genres accumulate without repeats.
func mergeTag(e *domain.Entry, t *Tag) {
	if e.Year == 0 {
		e.Year = t.Year()
	}
	genres := append(e.Genres, domain.SplitGenres(t.Genre, constants.DefaultGenreSplitSet)...)
	e.Genres = domain.CleanNames(genres)
}
