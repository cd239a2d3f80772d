// Package logging provides a small leveled logger for the PLS decoder
// service and command-line tools.
//
// Levels, from most to least verbose:
//   - DEBUG: per-request decode details
//   - INFO: startup, configuration and shutdown
//   - WARN: recoverable problems such as invalid configuration values
//   - ERROR: failed operations
//
// The level comes from the LOG_LEVEL environment variable, or DEBUG=true,
// the first time it is needed. [SetLevel] overrides it, which the CLI uses
// for its -v flag.
package logging
