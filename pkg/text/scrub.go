package text

import (
	"context"
	"io"
	"regexp"
)

// ScrubRule defines a single removal pattern applied to file content
type ScrubRule struct {
	// Name identifies the rule in logs and validation errors
	Name string

	// Pattern is the span to delete; every non-overlapping match is removed
	// outright, trailing newline included
	Pattern *regexp.Regexp
}

// ScrubResult contains the results of a scrub operation
type ScrubResult struct {
	// WasModified indicates if any spans were removed
	WasModified bool

	// RemovalCount is the number of spans removed across all rules
	RemovalCount int

	// OriginalContent is the content before scrubbing
	OriginalContent []byte

	// ModifiedContent is the content after scrubbing
	ModifiedContent []byte
}

// Scrubber defines the interface for span removal operations
type Scrubber interface {
	// Scrub applies a set of removal rules to the content, in order.
	// Returns a ScrubResult containing the modified content and metadata
	Scrub(ctx context.Context, content io.Reader, rules []ScrubRule) (*ScrubResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ScrubRule) error
}

var (
	// Matches the teardown chain spread across several lines:
	//
	//	test_db
	//	    .cleanup()
	//	    .await
	//	    .expect("Failed to cleanup test database");
	//
	// The trailing semicolon is optional; the trailing newline is part of
	// the deleted span. A literal ')' inside the expect argument defeats
	// the whole match, so such chains are left untouched. The matching is
	// textual, not syntax-aware.
	multiLineCleanup = regexp.MustCompile(`test_db\s*\n\s*\.cleanup\(\)\s*\n\s*\.await\s*\n\s*\.expect\([^)]+\);?\s*\n`)

	// Matches the same chain collapsed onto one line, semicolon required:
	//
	//	test_db.cleanup().await.expect("cleanup failed");
	//
	singleLineCleanup = regexp.MustCompile(`test_db\.cleanup\(\)\.await\.expect\([^)]+\);\s*\n`)
)

// CleanupChainRules returns the built-in rules that strip test-database
// cleanup chains from integration test sources. The multi-line form is
// removed first, then any remaining single-line form. Order matters: the
// rules are applied sequentially to the same content.
func CleanupChainRules() []ScrubRule {
	return []ScrubRule{
		{Name: "cleanup-chain-multiline", Pattern: multiLineCleanup},
		{Name: "cleanup-chain-singleline", Pattern: singleLineCleanup},
	}
}
