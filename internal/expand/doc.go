// Package expand runs the one-shot merge that grows the name database:
// load the JSON array, filter candidates to novel identifiers, stable-sort
// the combined set case-insensitively by display name, write the file back,
// and record the run in history. Mutating runs take an exclusive file lock so
// concurrent invocations cannot interleave their read-modify-write cycles.
package expand
