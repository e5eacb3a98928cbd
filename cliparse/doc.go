// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: SQLite file path or PostgreSQL URL (default: prioritisation-matrix.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - StorageKey: kv key for the state blob (default: prioritisation-matrix-state-v2)
  - Variant: grid or sequential (default: grid)
  - LogLevel: debug, info, warn or error (default: warn)
  - AssumeYes: skip confirmation prompts

# CLI Flags

	-c          YAML config file
	-env        dotenv file (default: .env)
	-d          Database URL
	-t          Database type
	-k          Storage key
	-variant    Comparison flow
	-log-level  Log level
	-y          Answer yes to confirmations

# Environment Variables

	CONFIG_FILE    → -c
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	STORAGE_KEY    → -k
	MATRIX_VARIANT → -variant
	LOG_LEVEL      → -log-level
	ASSUME_YES     → -y

Values from the dotenv file are loaded into the environment first but never
replace variables that are already set.

# Precedence

Defaults, then the YAML file, then environment, then CLI flags.

# YAML File

	database_url: matrix.db
	database_type: sqlite
	variant: sequential
	log_level: debug
*/
package cliparse
