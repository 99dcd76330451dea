// Package operation provides core functionality for scrubbing integration test files
package operation

import (
	"context"

	"github.com/walteh/testscrub/pkg/log"
	"github.com/walteh/testscrub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for testscrub operations
type Operator interface {
	// Scrub removes cleanup chains from every candidate test file
	Scrub(ctx context.Context) error
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Root is the directory the target layout is resolved against
	Root string
	// Scrubber rewrites file content
	Scrubber text.Scrubber
	// Rules are the removal rules applied to each file
	Rules []text.ScrubRule
	// Logger renders per-file results on the console
	Logger *log.Logger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Scrubber == nil {
		return nil, errors.Errorf("scrubber is required")
	}
	if len(opts.Rules) == 0 {
		return nil, errors.Errorf("rules are required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if opts.Root == "" {
		opts.Root = "."
	}

	if err := opts.Scrubber.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &operator{
		root:     opts.Root,
		scrubber: opts.Scrubber,
		rules:    opts.Rules,
		logger:   opts.Logger,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	root     string
	scrubber text.Scrubber
	rules    []text.ScrubRule
	logger   *log.Logger
}

// Scrub method is implemented in scrub.go
