package app

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/cesargomez89/musicshelf/internal/constants"
	"github.com/cesargomez89/musicshelf/internal/domain"
)

var yearRegex = regexp.MustCompile(`^\d{4}$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is every problem found in one input. It matches
// domain.ErrInvalidInput under errors.Is.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (errs ValidationErrors) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

// NewAlbum is raw user input for a single album.
type NewAlbum struct {
	Title  string
	Artist string
	Year   string
	Format string
	Genres string
}

// ValidateNewAlbum checks raw input and converts it into an entry plus its
// format. Nothing reaches the store unless errs is empty.
func ValidateNewAlbum(in NewAlbum) (entry domain.Entry, format string, errs ValidationErrors) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "is required"})
	}

	artist := strings.TrimSpace(in.Artist)
	if artist == "" {
		errs = append(errs, ValidationError{Field: "artist", Message: "is required"})
	}

	year, yearErrs := validateYear(in.Year)
	errs = append(errs, yearErrs...)

	format = strings.TrimSpace(in.Format)
	errs = append(errs, validateFormat(format)...)

	entry = domain.Entry{
		Title:  title,
		Artist: artist,
		Year:   year,
		Genres: domain.SplitGenres(in.Genres, constants.DefaultGenreSplitSet),
	}
	return entry, format, errs
}

func validateYear(raw string) (int, []ValidationError) {
	raw = strings.TrimSpace(raw)
	if !yearRegex.MatchString(raw) {
		return 0, []ValidationError{{Field: "year", Message: "must be a 4-digit number"}}
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < constants.MinYear || year > constants.MaxYear {
		return 0, []ValidationError{{Field: "year", Message: fmt.Sprintf("must be between %d and %d", constants.MinYear, constants.MaxYear)}}
	}
	return year, nil
}

func validateFormat(format string) []ValidationError {
	if !slices.Contains(constants.AllowedFormats, format) {
		return []ValidationError{{Field: "format", Message: "must be one of " + strings.Join(constants.AllowedFormats, ", ")}}
	}
	return nil
}

// ValidateFormat reports whether format is one a collection can be owned on.
func ValidateFormat(format string) error {
	if errs := ValidationErrors(validateFormat(format)); len(errs) > 0 {
		return errs
	}
	return nil
}
