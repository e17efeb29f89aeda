// Package cli contains the command line interface for denv.
//
// # Usage
//
// Sources are given with repeatable --source flags (or "-" for stdin) and
// feed one of the subcommands:
//
//	denv --source .env list
//	denv --source .env --source .env.local get DATABASE_URL
//	denv --source .env export --format json
//	denv --source .env check
//
// # Configuration
//
// Flag defaults load from a config file written in the same dotenv format
// denv parses (dogfooding the parser as a [kong.ConfigurationLoader]).
// Keys use uppercase with underscores and map to flag names:
//
//	LOG_LEVEL=debug
//	LOG_FORMAT=text
//	BRACELESS=true
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/denv/pprof)
package cli
