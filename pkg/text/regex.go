package text

import (
	"context"
	"io"

	"gitlab.com/tozd/go/errors"
)

// RegexScrubber implements Scrubber by deleting regexp matches
type RegexScrubber struct{}

// NewRegexScrubber creates a new RegexScrubber
func NewRegexScrubber() *RegexScrubber {
	return &RegexScrubber{}
}

// Scrub implements Scrubber.Scrub
func (s *RegexScrubber) Scrub(ctx context.Context, content io.Reader, rules []ScrubRule) (*ScrubResult, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// Create result with original content
	result := &ScrubResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule in order
	currentContent := originalContent
	for _, rule := range rules {
		// Skip empty rules
		if rule.Pattern == nil {
			continue
		}

		// Count matches, then delete them
		matches := rule.Pattern.FindAllIndex(currentContent, -1)
		if len(matches) == 0 {
			continue
		}

		currentContent = rule.Pattern.ReplaceAll(currentContent, nil)
		result.WasModified = true
		result.RemovalCount += len(matches)
	}

	// Update final content
	result.ModifiedContent = currentContent
	return result, nil
}

// ValidateRules implements Scrubber.ValidateRules
func (s *RegexScrubber) ValidateRules(rules []ScrubRule) error {
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == nil {
			return errors.Errorf("rule %d: pattern is required", i)
		}
	}
	return nil
}
