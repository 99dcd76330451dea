/*
Package operation implements the core business logic for scrubbing test files.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|    Scrub    |
	|  (Rewrite)  |
	+------+------+

🎯 Purpose:
- Orchestrates the scrubbing of integration test files
- Applies removal rules to each candidate file
- Coordinates between scan (discovery) and text (rewriting)

🔄 Flow:
1. Resolves the target directory under the root
2. Receives candidate files from scan
3. Applies removal rules via the text scrubber
4. Rewrites changed files in place
5. Reports per-file results and a summary via logging

⚡ Key Responsibilities:
- Sequential file processing
- In-place rewriting of changed files only
- Error handling: the run halts on the first file failure
- Reporting the run outcome on the console

🤝 Interfaces:
- Scrubber: Applies removal rules to content
- Logger: Renders per-file results and the summary

📝 Design Philosophy:
The operation package owns run semantics and nothing else. It does not
know what the removal rules look like, only that the scrubber applies
them. A missing target directory is a reported outcome of a run, not a
failure: the run ends cleanly after the report. Everything else that
goes wrong stops the run where it happened, with no summary line.

🔍 Example:

	op, err := operation.New(operation.Options{
		Root:     ".",
		Scrubber: text.NewRegexScrubber(),
		Rules:    text.CleanupChainRules(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	err = op.Scrub(ctx)
*/
package operation
