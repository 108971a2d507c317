// Package config loads, normalizes, and validates namebank configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: the name database location, the run-history database, and log
// output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, canonical log formats, and clear validation errors.
package config
