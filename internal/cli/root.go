// Package cli is the musicshelf command line.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/musicshelf/internal/app"
	"github.com/cesargomez89/musicshelf/internal/config"
	"github.com/cesargomez89/musicshelf/internal/constants"
	"github.com/cesargomez89/musicshelf/internal/domain"
	"github.com/cesargomez89/musicshelf/internal/logger"
	"github.com/cesargomez89/musicshelf/internal/render"
	"github.com/cesargomez89/musicshelf/internal/store"
)

// App carries the dependencies shared by every command. The store is opened
// lazily once flags are parsed and released by Close.
type App struct {
	Config *config.Config
	Logger *logger.Logger
	Out    io.Writer
	Picker app.Picker

	db      *store.DB
	catalog *app.Catalog
	search  *app.Search
	render  *render.Renderer
}

func New(cfg *config.Config, log *logger.Logger, out io.Writer) *App {
	if log == nil {
		log = logger.Discard()
	}
	return &App{Config: cfg, Logger: log, Out: out}
}

// Close releases the store if a command opened it.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// Execute runs one command line.
func (a *App) Execute(args []string) error {
	root := a.RootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// RootCmd builds the command tree.
func (a *App) RootCmd() *cobra.Command {
	dbPath := a.Config.DBPath

	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Catalog, search and get suggestions from your music collection",
		Long: `musicshelf keeps track of the albums you own, the formats you own them on
and their genres, and suggests something to play from that collection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(dbPath)
		},
	}
	root.SetOut(a.Out)
	root.PersistentFlags().StringVar(&dbPath, "db", dbPath, "path to the catalog database")

	root.AddCommand(
		a.importCmd(),
		a.scanCmd(),
		a.addCmd(),
		a.unlinkCmd(),
		a.listCmd(),
		a.searchCmd(),
		a.genresCmd(),
		a.topCmd(),
		a.statsCmd(),
		a.suggestCmd(),
	)
	return root
}

func (a *App) open(path string) error {
	if a.db != nil {
		return nil
	}
	db, err := store.NewSQLiteDB(path, a.Logger)
	if err != nil {
		return err
	}
	a.db = db
	a.catalog = app.NewCatalog(db, a.Logger)
	a.search = app.NewSearch(db, app.NewSuggester(a.Picker), a.Logger)
	a.render = render.New(a.Out)
	a.Logger.Debug("Catalog opened", "path", path)
	return nil
}

func parseYear(name, raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil || year < constants.MinYear || year > constants.MaxYear {
		return 0, fmt.Errorf("%w: %s year must be a 4-digit number, got %q", domain.ErrInvalidInput, name, raw)
	}
	return year, nil
}

func parseYearRange(args []string) (start, end int, err error) {
	if start, err = parseYear("start", args[0]); err != nil {
		return 0, 0, err
	}
	if end, err = parseYear("end", args[1]); err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: start year %d is after end year %d", domain.ErrInvalidInput, start, end)
	}
	return start, end, nil
}

// optionalFormat accepts an empty format, meaning any format.
func optionalFormat(format string) error {
	if format == "" {
		return nil
	}
	return app.ValidateFormat(format)
}
