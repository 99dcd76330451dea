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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation represents a single scrubbed file for logging
type FileOperation struct {
	Name     string // Base name of the file
	Updated  bool   // Whether the file was rewritten
	Removals int    // Number of cleanup chains removed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 LogFileOperation logs the per-file result line
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Determine prefix symbol
	var prefix string
	if op.Updated {
		prefix = color.GreenString("✓")
	} else {
		prefix = color.HiBlackString("-")
	}

	fmt.Fprintf(l.console, "%s %s\n", prefix, op.Name)

	// Log to zerolog
	l.zlog.Debug().
		Str("file", op.Name).
		Bool("updated", op.Updated).
		Int("removals", op.Removals).
		Msg("file processed")
}

// 📝 LogSummary logs the trailing run summary
func (l *Logger) LogSummary(ctx context.Context, updated int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\nUpdated %d files\n", updated)

	l.zlog.Info().
		Int("updated", updated).
		Msg("scrub complete")
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.console, "%s %s\n", color.RedString("Error:"), msg)

	l.zlog.Error().Msg(msg)
}
