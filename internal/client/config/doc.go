// Package config loads runtime configuration for the jobapp terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   seed file replacing the built-in users, postings and ledger
//	-l string   log level (debug, info, warn, error)
//	-f string   rotating log file
//
// # JSON schema
//
//	{
//	  "seed_file": "seed.json",
//	  "log_level": "info",
//	  "log_file": "jobapp.log"
//	}
//
// Keys missing from the file keep their defaults.
package config
