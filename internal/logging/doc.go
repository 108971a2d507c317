// Package logging wires log/slog for the namebank CLI.
//
// Two output formats are supported: a compact console format
// ("TIME LEVEL component: msg key=value") for interactive use and standard
// slog JSON for machine consumption. Construction goes through New or
// NewFromConfig; NewNop supplies a discard logger for tests.
package logging
