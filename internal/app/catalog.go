package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cesargomez89/musicshelf/internal/domain"
	"github.com/cesargomez89/musicshelf/internal/logger"
	"github.com/cesargomez89/musicshelf/internal/store"
)

// Catalog owns every write to the collection.
type Catalog struct {
	Repo   *store.DB
	Logger *logger.Logger
}

func NewCatalog(repo *store.DB, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.Discard()
	}
	return &Catalog{Repo: repo, Logger: log.WithComponent("catalog")}
}

// LoadResult summarises one bulk load.
type LoadResult struct {
	RunID         string
	Albums        int
	Created       int
	FormatsLinked int
	GenresLinked  int
	Skipped       int
}

// AddResult is the outcome of adding one album by hand.
type AddResult struct {
	Entry       domain.Entry
	Format      string
	Existed     bool
	FormatAdded bool
	Genres      domain.LinkReport
}

// BulkLoad upserts every entry of every batch, links it to the batch format
// and associates its genres. Entries already present are reported, not
// rejected. Entries without a title or artist are skipped. A storage error
// stops the load; entries saved before it stay committed.
func (c *Catalog) BulkLoad(ctx context.Context, source string, batches []domain.Batch) (LoadResult, error) {
	result := LoadResult{RunID: uuid.New().String()}
	log := c.Logger.WithImport(result.RunID, source)
	log.Info("Bulk load started", "batches", len(batches))

	for _, batch := range batches {
		for _, entry := range batch.Entries {
			entry.Normalize()
			if entry.Title == "" || entry.Artist == "" {
				log.Warn("Skipping incomplete entry", "title", entry.Title, "artist", entry.Artist)
				result.Skipped++
				continue
			}

			existed, formatAdded, report, err := c.save(ctx, entry, batch.Format)
			if err != nil {
				log.Error("Bulk load aborted", "album", entry.Title, "artist", entry.Artist, "error", err)
				return result, err
			}

			result.Albums++
			if !existed {
				result.Created++
			}
			if formatAdded {
				result.FormatsLinked++
			}
			result.GenresLinked += len(report.Added)
		}
	}

	log.Info("Bulk load finished",
		"albums", result.Albums,
		"created", result.Created,
		"formats_linked", result.FormatsLinked,
		"genres_linked", result.GenresLinked,
		"skipped", result.Skipped,
	)
	return result, nil
}

// AddAlbum validates raw input and stores one album.
func (c *Catalog) AddAlbum(ctx context.Context, in NewAlbum) (AddResult, error) {
	entry, format, errs := ValidateNewAlbum(in)
	if len(errs) > 0 {
		return AddResult{}, errs
	}

	existed, formatAdded, report, err := c.save(ctx, entry, format)
	if err != nil {
		return AddResult{}, err
	}

	c.Logger.WithAlbum(entry.Title, entry.Artist).Info("Album added",
		"format", format, "existed", existed, "genres_added", len(report.Added))
	return AddResult{
		Entry:       entry,
		Format:      format,
		Existed:     existed,
		FormatAdded: formatAdded,
		Genres:      report,
	}, nil
}

// save stores one entry atomically: the album, its format and its genres.
func (c *Catalog) save(ctx context.Context, entry domain.Entry, format string) (existed, formatAdded bool, report domain.LinkReport, err error) {
	ref := entry.Ref()
	err = c.Repo.RunInTx(ctx, func(tx *store.DB) error {
		var err error
		if _, existed, err = tx.UpsertAlbum(entry.Title, entry.Artist, entry.Year); err != nil {
			return fmt.Errorf("failed to store %s: %w", ref, err)
		}
		if format != "" {
			if formatAdded, err = tx.LinkAlbumFormat(ref, format); err != nil {
				return err
			}
		}
		report, err = tx.LinkAlbumGenres(ref, entry.Genres)
		return err
	})
	if err != nil {
		return false, false, domain.LinkReport{}, err
	}
	return existed, formatAdded, report, nil
}

func (c *Catalog) UnlinkGenre(ref domain.AlbumRef, genre string) error {
	return c.Repo.UnlinkAlbumGenre(ref, genre)
}

func (c *Catalog) UnlinkFormat(ref domain.AlbumRef, format string) error {
	return c.Repo.UnlinkAlbumFormat(ref, format)
}

func (c *Catalog) Artists() ([]domain.Artist, error) { return c.Repo.ListArtists() }
func (c *Catalog) Albums() ([]domain.Album, error)   { return c.Repo.ListAlbums() }
func (c *Catalog) Formats() ([]domain.Format, error) { return c.Repo.ListFormats() }
func (c *Catalog) Genres() ([]domain.Genre, error)   { return c.Repo.ListGenres() }
