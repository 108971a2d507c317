// Package names holds the name record model, the JSON-backed catalog, and the
// built-in candidate set merged by `namebank expand`.
//
// The catalog is loaded once, extended, sorted, and written back in place.
// Identifiers are the sole deduplication key: a record already in the database
// is never overwritten by a candidate with the same id. Gender and popularity
// values are carried as free strings; the dataset treats them as conventions,
// not enumerations.
package names
