package app

import (
	"fmt"

	"github.com/cesargomez89/musicshelf/internal/domain"
	"github.com/cesargomez89/musicshelf/internal/logger"
	"github.com/cesargomez89/musicshelf/internal/store"
)

// Search answers read-only catalog questions. It never mutates the store.
type Search struct {
	Repo      *store.DB
	Suggester *Suggester
	Logger    *logger.Logger
}

func NewSearch(repo *store.DB, suggester *Suggester, log *logger.Logger) *Search {
	if suggester == nil {
		suggester = NewSuggester(nil)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Search{Repo: repo, Suggester: suggester, Logger: log.WithComponent("search")}
}

// FilterByFormat keeps the rows owned on format. An empty format keeps all.
func FilterByFormat(rows []domain.FormattedAlbum, format string) []domain.FormattedAlbum {
	if format == "" {
		return rows
	}
	filtered := make([]domain.FormattedAlbum, 0, len(rows))
	for _, r := range rows {
		if r.Format == format {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (s *Search) Owned() ([]domain.FormattedAlbum, error) {
	return s.Repo.ListFormattedAlbums()
}

// ByYears lists albums released in [start, end] on format.
func (s *Search) ByYears(start, end int, format string) ([]domain.FormattedAlbum, error) {
	rows, err := s.Repo.AlbumsBetweenYears(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to search years %d-%d: %w", start, end, err)
	}
	return FilterByFormat(rows, format), nil
}

// ByArtist returns the artist's album count alongside one row per owned format.
func (s *Search) ByArtist(artist string) (int, []domain.FormattedAlbum, error) {
	count, err := s.Repo.ArtistAlbumCount(artist)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count albums of %q: %w", artist, err)
	}
	rows, err := s.Repo.AlbumsByArtist(artist)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to search artist %q: %w", artist, err)
	}
	return count, rows, nil
}

func (s *Search) ByFormat(format string) ([]domain.FormattedAlbum, error) {
	rows, err := s.Repo.AlbumsByFormat(format)
	if err != nil {
		return nil, fmt.Errorf("failed to search format %q: %w", format, err)
	}
	return rows, nil
}

func (s *Search) ByGenre(genre, format string) ([]domain.FormattedAlbum, error) {
	rows, err := s.Repo.AlbumsByGenre(genre)
	if err != nil {
		return nil, fmt.Errorf("failed to search genre %q: %w", genre, err)
	}
	return FilterByFormat(rows, format), nil
}

func (s *Search) GenresOf(ref domain.AlbumRef) ([]string, error) {
	return s.Repo.GenresForAlbumRef(ref)
}

func (s *Search) TopArtists() ([]domain.ArtistCount, error) {
	return s.Repo.ArtistAlbumCountsDesc()
}

func (s *Search) Stats() (domain.Stats, error) {
	return s.Repo.CatalogStats()
}

// SuggestByYears draws quantity albums from ByYears.
func (s *Search) SuggestByYears(start, end int, format string, quantity int) ([]domain.FormattedAlbum, error) {
	rows, err := s.ByYears(start, end, format)
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("Suggesting by years", "start", start, "end", end, "format", format, "candidates", len(rows), "quantity", quantity)
	return Suggest(s.Suggester, rows, quantity)
}

// SuggestByGenre draws quantity albums from ByGenre.
func (s *Search) SuggestByGenre(genre, format string, quantity int) ([]domain.FormattedAlbum, error) {
	rows, err := s.ByGenre(genre, format)
	if err != nil {
		return nil, err
	}
	s.Logger.Debug("Suggesting by genre", "genre", genre, "format", format, "candidates", len(rows), "quantity", quantity)
	return Suggest(s.Suggester, rows, quantity)
}
