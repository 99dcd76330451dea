/*
Package config manages configuration parsing and validation for testscrub.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +---+----+
	|   YAML    | |  HCL   | |  JSON  |
	|  Loader   | | Loader | | Loader |
	+-----------+ +--------+ +--------+

🎯 Purpose:
- Manages configuration loading and parsing
- Validates configuration values
- Provides type-safe config access
- Supports multiple config formats

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates configuration values
4. Provides validated config to the command layer

⚡ Key Responsibilities:
- Configuration parsing
- Log level and format validation
- Default value management
- Format abstraction

📝 Design Philosophy:
Configuration covers only how the tool reports what it does. What gets
scrubbed is fixed behavior, not configuration: the target directory
layout, the candidate file pattern, and the cleanup chain rules never
come from a config file. A missing config file is not an error; the
command layer falls back to Default().

🔍 Example:

	cfg, err := config.Load(ctx, ".testscrub.hcl")
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	zerolog.SetGlobalLevel(cfg.Level())
*/
package config
