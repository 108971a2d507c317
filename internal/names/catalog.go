package names

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Catalog is the ordered collection of name records loaded from disk.
type Catalog struct {
	records []Record
	ids     map[string]struct{}
}

// NewCatalog builds a catalog from the given records, preserving their order.
func NewCatalog(records []Record) *Catalog {
	c := &Catalog{
		records: append([]Record(nil), records...),
		ids:     make(map[string]struct{}, len(records)),
	}
	for _, r := range c.records {
		c.ids[r.ID] = struct{}{}
	}
	return c
}

// Load reads and parses the JSON array of records at path. A missing,
// unreadable, or malformed file is an error; callers treat it as fatal.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read name database: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse name database %s: %w", path, err)
	}

	return NewCatalog(records), nil
}

// Save serializes the catalog back to path, pretty-printed with two-space
// indentation. The write goes through a temp file and rename so a failure
// cannot truncate the database.
func (c *Catalog) Save(path string) error {
	records := c.records
	if records == nil {
		// An empty catalog still serializes as [], not null.
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal name database: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp database: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace database: %w", err)
	}
	return nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Contains reports whether a record with the given identifier exists.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// Get returns the record with the given identifier.
func (c *Catalog) Get(id string) (Record, bool) {
	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Records returns a copy of the underlying sequence.
func (c *Catalog) Records() []Record {
	return append([]Record(nil), c.records...)
}

// Merge appends the candidates whose identifier is not already present,
// preserving candidate order, and returns how many were added. Existing
// records always win; candidates never overwrite.
func (c *Catalog) Merge(candidates []Record) int {
	added := 0
	for _, candidate := range candidates {
		if _, exists := c.ids[candidate.ID]; exists {
			continue
		}
		c.records = append(c.records, candidate)
		c.ids[candidate.ID] = struct{}{}
		added++
	}
	return added
}

// SortByName stable-sorts the records by display name under Unicode case
// folding. Records whose folded names compare equal keep their current
// relative order.
func (c *Catalog) SortByName() {
	sort.SliceStable(c.records, func(i, j int) bool {
		return FoldName(c.records[i].Name) < FoldName(c.records[j].Name)
	})
}

// FoldName returns the case-insensitive comparison key for a display name.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// Filter describes optional record selection criteria. Empty fields match
// everything.
type Filter struct {
	Gender     string
	Origin     string
	Style      string
	Popularity string
}

// Select returns the records matching every non-empty filter field, in
// catalog order.
func (c *Catalog) Select(f Filter) []Record {
	var out []Record
	for _, r := range c.records {
		if f.Gender != "" && r.Gender != f.Gender {
			continue
		}
		if f.Origin != "" && !r.HasOrigin(f.Origin) {
			continue
		}
		if f.Style != "" && !r.HasStyle(f.Style) {
			continue
		}
		if f.Popularity != "" && r.Popularity != f.Popularity {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Stats summarizes the catalog by gender and popularity tier.
type Stats struct {
	Total        int
	ByGender     map[string]int
	ByPopularity map[string]int
}

// Summarize computes aggregate counts over the catalog.
func (c *Catalog) Summarize() Stats {
	stats := Stats{
		Total:        len(c.records),
		ByGender:     make(map[string]int),
		ByPopularity: make(map[string]int),
	}
	for _, r := range c.records {
		stats.ByGender[strings.TrimSpace(r.Gender)]++
		stats.ByPopularity[strings.TrimSpace(r.Popularity)]++
	}
	return stats
}
