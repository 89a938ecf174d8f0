// Package render prints catalog results as terminal tables.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cesargomez89/musicshelf/internal/domain"
)

const (
	accentColor = lipgloss.Color("#4ECDC4")
	titleColor  = lipgloss.Color("#F8B500")
	okColor     = lipgloss.Color("#95E1A3")
	dimColor    = lipgloss.Color("#6C757D")
)

// Renderer writes styled output to w. Colors are dropped when w is not a
// terminal.
type Renderer struct {
	w io.Writer

	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	title   lipgloss.Style
	success lipgloss.Style
	dim     lipgloss.Style
}

func New(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		header:  lr.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1),
		cell:    lr.NewStyle().Padding(0, 1),
		border:  lr.NewStyle().Foreground(dimColor),
		title:   lr.NewStyle().Bold(true).Foreground(titleColor),
		success: lr.NewStyle().Foreground(okColor),
		dim:     lr.NewStyle().Foreground(dimColor),
	}
}

func (r *Renderer) table(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return r.Empty()
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return r.cell
		})
	_, err := fmt.Fprintln(r.w, t.Render())
	return err
}

// Empty reports a result set with no rows.
func (r *Renderer) Empty() error {
	_, err := fmt.Fprintln(r.w, r.dim.Render("No results."))
	return err
}

func (r *Renderer) Title(s string) error {
	_, err := fmt.Fprintln(r.w, r.title.Render(s))
	return err
}

func (r *Renderer) Success(format string, args ...any) error {
	_, err := fmt.Fprintln(r.w, r.success.Render(fmt.Sprintf(format, args...)))
	return err
}

func (r *Renderer) Info(format string, args ...any) error {
	_, err := fmt.Fprintln(r.w, fmt.Sprintf(format, args...))
	return err
}

// FormattedAlbums prints one line per album and format.
func (r *Renderer) FormattedAlbums(albums []domain.FormattedAlbum) error {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		rows = append(rows, []string{a.Title, a.Artist, year(a.Year), a.Format})
	}
	return r.table([]string{"Album", "Artist", "Year", "Format"}, rows)
}

func (r *Renderer) Artists(artists []domain.Artist) error {
	rows := make([][]string, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, []string{id(a.ID), a.Name})
	}
	return r.table([]string{"ID", "Artist"}, rows)
}

func (r *Renderer) Albums(albums []domain.Album) error {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		rows = append(rows, []string{id(a.ID), a.Title, id(a.ArtistID), year(a.Year)})
	}
	return r.table([]string{"ID", "Album", "Artist ID", "Year"}, rows)
}

func (r *Renderer) Formats(formats []domain.Format) error {
	rows := make([][]string, 0, len(formats))
	for _, f := range formats {
		rows = append(rows, []string{id(f.ID), f.Name})
	}
	return r.table([]string{"ID", "Format"}, rows)
}

func (r *Renderer) Genres(genres []domain.Genre) error {
	rows := make([][]string, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, []string{id(g.ID), g.Name})
	}
	return r.table([]string{"ID", "Genre"}, rows)
}

// Names prints a single-column list such as the genres of one album.
func (r *Renderer) Names(header string, names []string) error {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	return r.table([]string{header}, rows)
}

func (r *Renderer) ArtistCounts(counts []domain.ArtistCount) error {
	rows := make([][]string, 0, len(counts))
	for i, c := range counts {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Artist, strconv.Itoa(c.Count)})
	}
	return r.table([]string{"#", "Artist", "Albums"}, rows)
}

func (r *Renderer) Stats(s domain.Stats) error {
	return r.table([]string{"Table", "Rows"}, [][]string{
		{"artists", strconv.Itoa(s.Artists)},
		{"albums", strconv.Itoa(s.Albums)},
		{"formats", strconv.Itoa(s.Formats)},
		{"genres", strconv.Itoa(s.Genres)},
		{"album formats", strconv.Itoa(s.AlbumFormats)},
		{"album genres", strconv.Itoa(s.AlbumGenres)},
	})
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func year(y int) string {
	if y == 0 {
		return "-"
	}
	return strconv.Itoa(y)
}
