package scan

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// CandidateGlob selects the test source files eligible for scrubbing.
const CandidateGlob = "*.rs"

// ReservedNames are shared infrastructure files that are never scrubbed,
// even though they match CandidateGlob.
var ReservedNames = []string{"helpers.rs", "mod.rs"}

// Candidate is a single file selected for scrubbing.
type Candidate struct {
	// Name is the base name of the file, e.g. "authorization.rs"
	Name string

	// Path is the file's path, the scanned directory joined with Name
	Path string
}

// ListCandidates returns the scrub-eligible files sitting directly in dir.
// Subdirectories are not descended into. Entries come back in lexical
// order, the order os.ReadDir yields them.
func ListCandidates(ctx context.Context, dir string) ([]Candidate, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		matched, err := doublestar.Match(CandidateGlob, name)
		if err != nil {
			logger.Debug().Str("pattern", CandidateGlob).Str("file", name).Err(err).Msg("error matching pattern")
			continue
		}
		if !matched {
			logger.Debug().Str("file", name).Msg("skipping non-candidate file")
			continue
		}

		if slices.Contains(ReservedNames, name) {
			logger.Debug().Str("file", name).Msg("skipping reserved file")
			continue
		}

		candidates = append(candidates, Candidate{
			Name: name,
			Path: filepath.Join(dir, name),
		})
	}

	logger.Debug().Str("dir", dir).Int("count", len(candidates)).Msg("listed candidate files")

	return candidates, nil
}
