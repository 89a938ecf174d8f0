package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/musicshelf/internal/app"
	"github.com/cesargomez89/musicshelf/internal/constants"
	"github.com/cesargomez89/musicshelf/internal/domain"
)

func (a *App) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog tables",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "artists",
			Short: "List all artists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				artists, err := a.catalog.Artists()
				if err != nil {
					return err
				}
				return a.render.Artists(artists)
			},
		},
		&cobra.Command{
			Use:   "albums",
			Short: "List all albums",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				albums, err := a.catalog.Albums()
				if err != nil {
					return err
				}
				return a.render.Albums(albums)
			},
		},
		&cobra.Command{
			Use:   "formats",
			Short: "List all formats",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				formats, err := a.catalog.Formats()
				if err != nil {
					return err
				}
				return a.render.Formats(formats)
			},
		},
		&cobra.Command{
			Use:   "genres",
			Short: "List all genres",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				genres, err := a.catalog.Genres()
				if err != nil {
					return err
				}
				return a.render.Genres(genres)
			},
		},
		&cobra.Command{
			Use:   "owned",
			Short: "List every album with each format it is owned on",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rows, err := a.search.Owned()
				if err != nil {
					return err
				}
				return a.render.FormattedAlbums(rows)
			},
		},
	)
	return cmd
}

func (a *App) searchCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the collection",
	}

	years := &cobra.Command{
		Use:   "years <start> <end>",
		Short: "Albums released between two years, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseYearRange(args)
			if err != nil {
				return err
			}
			if err := optionalFormat(format); err != nil {
				return err
			}
			rows, err := a.search.ByYears(start, end, format)
			if err != nil {
				return err
			}
			return a.render.FormattedAlbums(rows)
		},
	}

	artist := &cobra.Command{
		Use:   "artist <name>",
		Short: "Albums by one artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := optionalFormat(format); err != nil {
				return err
			}
			count, rows, err := a.search.ByArtist(args[0])
			if err != nil {
				return err
			}
			if err := a.render.Title(pluralAlbums(args[0], count)); err != nil {
				return err
			}
			return a.render.FormattedAlbums(app.FilterByFormat(rows, format))
		},
	}

	byFormat := &cobra.Command{
		Use:   "format <name>",
		Short: "Albums owned on one format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.search.ByFormat(args[0])
			if err != nil {
				return err
			}
			return a.render.FormattedAlbums(rows)
		},
	}

	genre := &cobra.Command{
		Use:   "genre <name>",
		Short: "Albums tagged with one genre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := optionalFormat(format); err != nil {
				return err
			}
			rows, err := a.search.ByGenre(args[0], format)
			if err != nil {
				return err
			}
			return a.render.FormattedAlbums(rows)
		},
	}

	cmd.PersistentFlags().StringVar(&format, "format", "", "only show albums owned on this format")
	cmd.AddCommand(years, artist, byFormat, genre)
	return cmd
}

func pluralAlbums(artist string, count int) string {
	if count == 1 {
		return artist + ": 1 album"
	}
	return artist + ": " + strconv.Itoa(count) + " albums"
}

func (a *App) genresCmd() *cobra.Command {
	var artist string
	cmd := &cobra.Command{
		Use:   "genres <album>",
		Short: "Genres of one album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genres, err := a.search.GenresOf(domain.AlbumRef{Title: args[0], Artist: artist})
			if err != nil {
				return err
			}
			return a.render.Names("Genre", genres)
		},
	}
	cmd.Flags().StringVar(&artist, "artist", "", "artist of the album, when the title is shared")
	return cmd
}

func (a *App) topCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Artists ranked by number of albums owned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := a.search.TopArtists()
			if err != nil {
				return err
			}
			return a.render.ArtistCounts(counts)
		},
	}
}

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Row counts of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.search.Stats()
			if err != nil {
				return err
			}
			return a.render.Stats(stats)
		},
	}
}

func (a *App) suggestCmd() *cobra.Command {
	var (
		format   string
		quantity int
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Pick albums to listen to at random",
	}

	years := &cobra.Command{
		Use:   "years <start> <end>",
		Short: "Suggest albums released between two years",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseYearRange(args)
			if err != nil {
				return err
			}
			if err := optionalFormat(format); err != nil {
				return err
			}
			if err := checkQuantity(quantity); err != nil {
				return err
			}
			pool, err := a.search.ByYears(start, end, format)
			if err != nil {
				return err
			}
			n, err := a.clamp(quantity, len(pool))
			if err != nil || n == 0 {
				return err
			}
			rows, err := app.Suggest(a.search.Suggester, pool, n)
			if err != nil {
				return err
			}
			return a.render.FormattedAlbums(rows)
		},
	}

	genre := &cobra.Command{
		Use:   "genre <name>",
		Short: "Suggest albums tagged with a genre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := optionalFormat(format); err != nil {
				return err
			}
			if err := checkQuantity(quantity); err != nil {
				return err
			}
			pool, err := a.search.ByGenre(args[0], format)
			if err != nil {
				return err
			}
			n, err := a.clamp(quantity, len(pool))
			if err != nil || n == 0 {
				return err
			}
			rows, err := app.Suggest(a.search.Suggester, pool, n)
			if err != nil {
				return err
			}
			return a.render.FormattedAlbums(rows)
		},
	}

	cmd.PersistentFlags().StringVar(&format, "format", "", "only suggest albums owned on this format")
	cmd.PersistentFlags().IntVarP(&quantity, "number", "n", constants.DefaultSuggestCount, "how many albums to suggest")
	cmd.AddCommand(years, genre)
	return cmd
}

func checkQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1, got %d", domain.ErrInvalidInput, quantity)
	}
	return nil
}

// clamp bounds the requested quantity to the matches, telling the user when
// fewer albums are available than asked for.
func (a *App) clamp(quantity, available int) (int, error) {
	n := app.ClampQuantity(quantity, available)
	switch {
	case n == 0:
		return 0, a.render.Empty()
	case n < quantity:
		return n, a.render.Info("Only %d matching albums, here's what you have:", n)
	}
	return n, nil
}
