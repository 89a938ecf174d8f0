package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/musicshelf/internal/app"
	"github.com/cesargomez89/musicshelf/internal/domain"
	"github.com/cesargomez89/musicshelf/internal/seed"
	"github.com/cesargomez89/musicshelf/internal/tagging"
)

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <seed.yaml>",
		Short: "Load albums from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batches, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			if err := a.render.Info("Read %d entries in %d batches from %s", seed.Count(batches), len(batches), args[0]); err != nil {
				return err
			}
			result, err := a.catalog.BulkLoad(cmd.Context(), args[0], batches)
			if err != nil {
				return err
			}
			return a.reportLoad(result)
		},
	}
}

func (a *App) scanCmd() *cobra.Command {
	format := a.Config.DefaultFormat
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Load albums from the tags of MP3 and FLAC files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ValidateFormat(format); err != nil {
				return err
			}
			entries, report, err := tagging.NewScanner(a.Logger).Scan(args[0])
			if err != nil {
				return err
			}
			if err := a.render.Info("Read %d of %d audio files (%d untagged, %d unreadable)",
				report.Tagged, report.Files, report.Untagged, report.Failed); err != nil {
				return err
			}
			result, err := a.catalog.BulkLoad(cmd.Context(), args[0], []domain.Batch{{Format: format, Entries: entries}})
			if err != nil {
				return err
			}
			return a.reportLoad(result)
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "format the scanned albums are owned on")
	return cmd
}

func (a *App) reportLoad(r app.LoadResult) error {
	return a.render.Success("Loaded %d albums (%d new, %d format links, %d genre links, %d skipped)",
		r.Albums, r.Created, r.FormatsLinked, r.GenresLinked, r.Skipped)
}

func (a *App) addCmd() *cobra.Command {
	in := app.NewAlbum{Format: a.Config.DefaultFormat}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one album to the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.catalog.AddAlbum(cmd.Context(), in)
			if err != nil {
				return err
			}

			ref := res.Entry.Ref()
			if res.Existed {
				if err := a.render.Info("%s is already in the collection", ref); err != nil {
					return err
				}
			} else if err := a.render.Success("Added %s (%d)", ref, res.Entry.Year); err != nil {
				return err
			}
			if res.FormatAdded {
				if err := a.render.Success("Now owned on %s", res.Format); err != nil {
					return err
				}
			}
			if len(res.Genres.Added) > 0 {
				if err := a.render.Success("Genres added: %s", strings.Join(res.Genres.Added, ", ")); err != nil {
					return err
				}
			}
			if len(res.Genres.Existing) > 0 {
				return a.render.Info("Genres already set: %s", strings.Join(res.Genres.Existing, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "album title")
	cmd.Flags().StringVar(&in.Artist, "artist", "", "artist name")
	cmd.Flags().StringVar(&in.Year, "year", "", "release year (4 digits)")
	cmd.Flags().StringVar(&in.Format, "format", in.Format, "format: CD, vinyl, cassette or digital")
	cmd.Flags().StringVar(&in.Genres, "genres", "", `genres separated by commas, e.g. "Rock, Pop"`)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func (a *App) unlinkCmd() *cobra.Command {
	var artist string
	cmd := &cobra.Command{
		Use:   "unlink",
		Short: "Remove a genre or format from an album",
	}

	genre := &cobra.Command{
		Use:   "genre <album> <genre>",
		Short: "Remove a genre from an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := domain.AlbumRef{Title: args[0], Artist: artist}
			if err := a.catalog.UnlinkGenre(ref, args[1]); err != nil {
				return unlinkError(err)
			}
			return a.render.Success("%s is no longer tagged %s", ref, args[1])
		},
	}

	format := &cobra.Command{
		Use:   "format <album> <format>",
		Short: "Remove a format from an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := domain.AlbumRef{Title: args[0], Artist: artist}
			if err := a.catalog.UnlinkFormat(ref, args[1]); err != nil {
				return unlinkError(err)
			}
			return a.render.Success("%s is no longer owned on %s", ref, args[1])
		},
	}

	cmd.PersistentFlags().StringVar(&artist, "artist", "", "artist of the album, needed when the title is shared")
	cmd.AddCommand(genre, format)
	return cmd
}

func unlinkError(err error) error {
	if errors.Is(err, domain.ErrAmbiguousTitle) {
		return errors.Join(err, errors.New("use --artist to pick one"))
	}
	return err
}
