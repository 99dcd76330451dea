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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/testscrub/pkg/log"
	"github.com/walteh/testscrub/pkg/text"
)

// multiLineFixture carries the chain spelled across four lines, the way
// rustfmt leaves it.
const multiLineFixture = `use crate::helpers::TestDb;

#[tokio::test]
async fn test_user_can_login() {
    let test_db = TestDb::new().await.expect("Failed to create test database");

    let response = login(&test_db).await;
    response.assert_status_ok();

    test_db
        .cleanup()
        .await
        .expect("Failed to cleanup test database");
}
`

// The chain starts matching at the identifier, so the indentation in
// front of it stays behind and joins the closing brace.
const multiLineFixtureScrubbed = `use crate::helpers::TestDb;

#[tokio::test]
async fn test_user_can_login() {
    let test_db = TestDb::new().await.expect("Failed to create test database");

    let response = login(&test_db).await;
    response.assert_status_ok();

    }
`

const singleLineFixture = `async fn test_list_users() {
    seed(&test_db).await;
    assert_eq!(list().await.len(), 3);
test_db.cleanup().await.expect("cleanup failed");
}
`

const singleLineFixtureScrubbed = `async fn test_list_users() {
    seed(&test_db).await;
    assert_eq!(list().await.len(), 3);
}
`

const untouchedFixture = `async fn test_health() {
    let response = get("/health").await;
    response.assert_status_ok();
}
`

func newTestOperator(t *testing.T, root string, console *bytes.Buffer) Operator {
	t.Helper()

	logger := log.New(console, zerolog.New(zerolog.NewTestWriter(t)))
	op, err := New(Options{
		Root:     root,
		Scrubber: text.NewRegexScrubber(),
		Rules:    text.CleanupChainRules(),
		Logger:   logger,
	})
	require.NoError(t, err, "creating operator should succeed")

	return op
}

func writeIntegrationDir(t *testing.T, root string, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(root, TargetSubdir)
	require.NoError(t, os.MkdirAll(dir, 0755), "creating integration dir should succeed")

	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err, "writing fixture %s should succeed", name)
	}

	return dir
}

func TestScrub(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		files       map[string]string
		wantConsole string
		wantFiles   map[string]string
	}{
		{
			name: "updates_matching_files",
			files: map[string]string{
				"authorization.rs": multiLineFixture,
				"health.rs":        untouchedFixture,
				"users.rs":         singleLineFixture,
			},
			wantConsole: "✓ authorization.rs\n" +
				"- health.rs\n" +
				"✓ users.rs\n" +
				"\nUpdated 2 files\n",
			wantFiles: map[string]string{
				"authorization.rs": multiLineFixtureScrubbed,
				"health.rs":        untouchedFixture,
				"users.rs":         singleLineFixtureScrubbed,
			},
		},
		{
			name: "reserved_files_left_alone",
			files: map[string]string{
				"app.rs":     untouchedFixture,
				"helpers.rs": singleLineFixture,
				"mod.rs":     singleLineFixture,
			},
			wantConsole: "- app.rs\n\nUpdated 0 files\n",
			wantFiles: map[string]string{
				"app.rs":     untouchedFixture,
				"helpers.rs": singleLineFixture,
				"mod.rs":     singleLineFixture,
			},
		},
		{
			name: "non_candidate_files_left_alone",
			files: map[string]string{
				"fixture.sql": "DELETE FROM users;\ntest_db.cleanup().await.expect(\"x\");\n",
				"users.rs":    singleLineFixture,
			},
			wantConsole: "✓ users.rs\n\nUpdated 1 files\n",
			wantFiles: map[string]string{
				"fixture.sql": "DELETE FROM users;\ntest_db.cleanup().await.expect(\"x\");\n",
				"users.rs":    singleLineFixtureScrubbed,
			},
		},
		{
			name:        "empty_directory",
			files:       map[string]string{},
			wantConsole: "\nUpdated 0 files\n",
			wantFiles:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			root := t.TempDir()
			dir := writeIntegrationDir(t, root, tt.files)

			console := &bytes.Buffer{}
			op := newTestOperator(t, root, console)

			// Run
			err := op.Scrub(ctx)
			require.NoError(t, err, "Scrub should succeed")

			// Console output is a contract, compare it byte for byte
			assert.Equal(t, tt.wantConsole, console.String(), "console output should match")

			// Check files on disk
			for name, want := range tt.wantFiles {
				got, err := os.ReadFile(filepath.Join(dir, name))
				require.NoError(t, err, "reading %s should succeed", name)
				assert.Equal(t, want, string(got), "content of %s should match", name)
			}
		})
	}
}

func TestScrub_MissingDirectory(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	root := t.TempDir()

	console := &bytes.Buffer{}
	op := newTestOperator(t, root, console)

	err := op.Scrub(ctx)
	require.NoError(t, err, "a missing target directory should not be an error")

	want := fmt.Sprintf("Error: %s does not exist\n", filepath.Join(root, TargetSubdir))
	assert.Equal(t, want, console.String(), "the error line should be the only console output")
}

func TestScrub_TargetIsFile(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "tests"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, TargetSubdir), []byte("not a directory\n"), 0644))

	console := &bytes.Buffer{}
	op := newTestOperator(t, root, console)

	err := op.Scrub(ctx)
	require.Error(t, err, "a file in place of the target directory should fail the run")
	assert.Contains(t, err.Error(), "listing candidates", "error should name the failing step")
	assert.Empty(t, console.String(), "no result lines should be printed")
}

func TestScrub_SecondRunFindsNothing(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	root := t.TempDir()
	dir := writeIntegrationDir(t, root, map[string]string{
		"authorization.rs": multiLineFixture,
		"users.rs":         singleLineFixture,
	})

	// First run rewrites both files
	first := &bytes.Buffer{}
	op := newTestOperator(t, root, first)
	require.NoError(t, op.Scrub(ctx), "first run should succeed")
	assert.Equal(t, "✓ authorization.rs\n✓ users.rs\n\nUpdated 2 files\n", first.String())

	// Second run leaves everything alone
	second := &bytes.Buffer{}
	op = newTestOperator(t, root, second)
	require.NoError(t, op.Scrub(ctx), "second run should succeed")
	assert.Equal(t, "- authorization.rs\n- users.rs\n\nUpdated 0 files\n", second.String())

	got, err := os.ReadFile(filepath.Join(dir, "authorization.rs"))
	require.NoError(t, err)
	assert.Equal(t, multiLineFixtureScrubbed, string(got), "content should be stable after the first run")
}
