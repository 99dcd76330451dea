// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/testscrub/pkg/log"
	"github.com/walteh/testscrub/pkg/scan"
	"github.com/walteh/testscrub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📁 TargetSubdir is the directory scanned for test files, relative to the root
const TargetSubdir = "tests/integration"

// 🏃 Scrub runs the scrub operation
func (op *operator) Scrub(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	dir := filepath.Join(op.root, TargetSubdir)
	if _, err := os.Stat(dir); err != nil {
		// A missing target directory ends the run cleanly
		op.logger.Errorf("%s does not exist", dir)
		logger.Warn().Str("dir", dir).Err(err).Msg("target directory missing")
		return nil
	}

	candidates, err := scan.ListCandidates(ctx, dir)
	if err != nil {
		return errors.Errorf("listing candidates: %w", err)
	}

	// Scrub each file
	updated := 0
	for _, candidate := range candidates {
		result, err := op.scrubFile(ctx, candidate)
		if err != nil {
			return errors.Errorf("scrubbing %s: %w", candidate.Name, err)
		}

		if result.WasModified {
			updated++
		}

		op.logger.LogFileOperation(ctx, log.FileOperation{
			Name:     candidate.Name,
			Updated:  result.WasModified,
			Removals: result.RemovalCount,
		})
	}

	op.logger.LogSummary(ctx, updated)

	return nil
}

// 🧼 scrubFile applies the removal rules to a single file, rewriting it
// in place when anything was removed
func (op *operator) scrubFile(ctx context.Context, candidate scan.Candidate) (*text.ScrubResult, error) {
	logger := zerolog.Ctx(ctx)

	f, err := os.Open(candidate.Path)
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	result, err := op.scrubber.Scrub(ctx, f, op.rules)
	if err != nil {
		return nil, errors.Errorf("scrubbing content: %w", err)
	}

	if !result.WasModified {
		return result, nil
	}

	// Summarize what got removed for the debug log
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(result.OriginalContent), string(result.ModifiedContent), false)
	removedBytes := 0
	for _, diff := range diffs {
		if diff.Type == diffmatchpatch.DiffDelete {
			removedBytes += len(diff.Text)
		}
	}
	logger.Debug().
		Str("file", candidate.Name).
		Int("removals", result.RemovalCount).
		Int("bytes_removed", removedBytes).
		Msg("removing cleanup chains")

	if err := os.WriteFile(candidate.Path, result.ModifiedContent, 0644); err != nil {
		return nil, errors.Errorf("writing file: %w", err)
	}

	return result, nil
}
