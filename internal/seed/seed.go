// Package seed reads bulk-load files describing a collection.
//
// A seed file is a YAML list of batches, one per format:
//
//	- format: CD
//	  albums:
//	    - title: OK Computer
//	      artist: Radiohead
//	      year: 1997
//	      genres: [Rock, Alternative]
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cesargomez89/musicshelf/internal/constants"
	"github.com/cesargomez89/musicshelf/internal/domain"
)

// Load reads and validates the seed file at path.
func Load(path string) ([]domain.Batch, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != constants.ExtYAML && ext != constants.ExtYML {
		return nil, fmt.Errorf("%w: seed file must be %s or %s, got %q", domain.ErrInvalidInput, constants.ExtYAML, constants.ExtYML, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	batches, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return batches, nil
}

// Parse decodes seed batches from r. Unknown keys are rejected.
func Parse(r io.Reader) ([]domain.Batch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var batches []domain.Batch
	if err := dec.Decode(&batches); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Batch{}, nil
		}
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	for i := range batches {
		batches[i].Format = strings.TrimSpace(batches[i].Format)
		if !slices.Contains(constants.AllowedFormats, batches[i].Format) {
			return nil, fmt.Errorf("%w: batch %d has format %q, want one of %s",
				domain.ErrInvalidInput, i+1, batches[i].Format, strings.Join(constants.AllowedFormats, ", "))
		}
	}
	return batches, nil
}

// Count returns the number of entries across batches.
func Count(batches []domain.Batch) int {
	n := 0
	for _, b := range batches {
		n += len(b.Entries)
	}
	return n
}
