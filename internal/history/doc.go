// Package history records name database mutations in a small SQLite database.
//
// Each `namebank expand` or `namebank add` run stores its timestamp, source
// label, and before/after/added counts. The log is append-only and purely
// informational: a recording failure never rolls back a merge that already
// reached disk.
package history
